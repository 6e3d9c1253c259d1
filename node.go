package wad

type binSubSector struct {
	NumSegments      uint16
	StartLineSegment uint16
}

// SubSector is a convex region of the map bounded by a run of segs.
type SubSector struct {
	NumSegs  uint16
	FirstSeg uint16
}

// DecodeSubSectors decodes a SSECTORS lump.
func DecodeSubSectors(data []byte) ([]SubSector, error) {
	return decodeArray("SSECTORS", data, func(s binSubSector) (SubSector, error) {
		return SubSector{NumSegs: s.NumSegments, FirstSeg: s.StartLineSegment}, nil
	})
}

type binBBox struct {
	Top    int16
	Bottom int16
	Left   int16
	Right  int16
}

type binNode struct {
	X, Y                 int16
	DX, DY               int16
	BBoxR, BBoxL         binBBox
	ChildNumR, ChildNumL uint16
}

// BoundBox is an axis aligned box in map units.
type BoundBox struct {
	Top, Bottom, Left, Right int16
}

// subSectorBit marks a node child that refers to a subsector.
const subSectorBit = 0x8000

// Child is one side of a BSP node: either another node or, when SubSector
// is set, a leaf subsector.
type Child struct {
	Index     int
	SubSector bool
}

func decodeChild(n uint16) Child {
	if n&subSectorBit != 0 {
		return Child{Index: int(n &^ subSectorBit), SubSector: true}
	}
	return Child{Index: int(n)}
}

// Node is a BSP tree node splitting the map along a partition line.
type Node struct {
	X, Y           int16 // Partition line start
	DX, DY         int16 // Partition line direction
	BBoxR, BBoxL   BoundBox
	ChildR, ChildL Child
}

// Child returns the child for side, 0 for right and 1 for left.
func (n *Node) Child(side int) Child {
	if side == 0 {
		return n.ChildR
	}
	return n.ChildL
}

// BoundBox returns the bounding box for side, 0 for right and 1 for left.
func (n *Node) BoundBox(side int) *BoundBox {
	if side == 0 {
		return &n.BBoxR
	}
	return &n.BBoxL
}

// DecodeNodes decodes a NODES lump.
func DecodeNodes(data []byte) ([]Node, error) {
	return decodeArray("NODES", data, func(n binNode) (Node, error) {
		return Node{
			X:      n.X,
			Y:      n.Y,
			DX:     n.DX,
			DY:     n.DY,
			BBoxR:  BoundBox(n.BBoxR),
			BBoxL:  BoundBox(n.BBoxL),
			ChildR: decodeChild(n.ChildNumR),
			ChildL: decodeChild(n.ChildNumL),
		}, nil
	})
}

// Root returns the root of the level's BSP tree: the last node, or the only
// subsector of a level without nodes.
func (l *Level) Root() (Child, bool) {
	if len(l.Nodes) > 0 {
		return Child{Index: len(l.Nodes) - 1}, true
	}
	if len(l.SubSectors) > 0 {
		return Child{Index: 0, SubSector: true}, true
	}
	return Child{}, false
}
