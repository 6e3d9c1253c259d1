package wad

type binLine struct {
	VertexStart, VertexEnd uint16
	Flags                  uint16
	Type                   int16
	SectorTag              int16
	SideR, SideL           int16
}

// NoSide marks a missing sidedef on a one-sided linedef.
const NoSide = -1

// Linedef is a wall or boundary between two vertexes.
type Linedef struct {
	V1, V2       uint16 // Vertex numbers
	Flags        LineFlags
	Special      int16 // Action triggered by the line, 0 for none
	Tag          int16 // Sectors affected by Special
	SideR, SideL int16 // Sidedef numbers, NoSide when absent
}

// LineFlags are the linedef attribute bits.
type LineFlags uint16

const (
	BlockPlayersAndMonsters LineFlags = 1 << iota
	BlockMonsters
	TwoSided
	UpperTextureUnpegged
	LowerTextureUnpegged
	Secret
	BlocksSound
	NeverMap
	AlwaysMap
)

// Has reports whether all of the bits in f are set.
func (l Linedef) Has(f LineFlags) bool {
	return l.Flags&f == f
}

// Right returns the right (front) sidedef number, if any.
func (l Linedef) Right() (int, bool) {
	return int(l.SideR), l.SideR != NoSide
}

// Left returns the left (back) sidedef number, if any.
func (l Linedef) Left() (int, bool) {
	return int(l.SideL), l.SideL != NoSide
}

// DecodeLinedefs decodes a LINEDEFS lump.
func DecodeLinedefs(data []byte) ([]Linedef, error) {
	return decodeArray("LINEDEFS", data, func(l binLine) (Linedef, error) {
		return Linedef{
			V1:      l.VertexStart,
			V2:      l.VertexEnd,
			Flags:   LineFlags(l.Flags),
			Special: l.Type,
			Tag:     l.SectorTag,
			SideR:   l.SideR,
			SideL:   l.SideL,
		}, nil
	})
}

type binSide struct {
	XOffset       int16
	YOffset       int16
	UpperTexture  String8
	LowerTexture  String8
	MiddleTexture String8
	SectorNum     int16
}

// Sidedef holds the textures drawn on one side of a linedef. An empty
// texture name (or "-") means nothing is drawn.
type Sidedef struct {
	XOffset, YOffset  int16
	UpperTextureName  string
	LowerTextureName  string
	MiddleTextureName string
	SectorNum         int16
}

// DecodeSidedefs decodes a SIDEDEFS lump.
func DecodeSidedefs(data []byte) ([]Sidedef, error) {
	return decodeArray("SIDEDEFS", data, func(s binSide) (Sidedef, error) {
		side := Sidedef{
			XOffset:   s.XOffset,
			YOffset:   s.YOffset,
			SectorNum: s.SectorNum,
		}
		var err error
		if side.UpperTextureName, err = s.UpperTexture.Decode(); err != nil {
			return side, err
		}
		if side.LowerTextureName, err = s.LowerTexture.Decode(); err != nil {
			return side, err
		}
		side.MiddleTextureName, err = s.MiddleTexture.Decode()
		return side, err
	})
}

// Vertex is a point of the map in map units.
type Vertex struct {
	X, Y int16
}

// DecodeVertexes decodes a VERTEXES lump.
func DecodeVertexes(data []byte) ([]Vertex, error) {
	return decodeArray("VERTEXES", data, func(v Vertex) (Vertex, error) {
		return v, nil
	})
}

type binLineSegment struct {
	V1        uint16
	V2        uint16
	Angle     int16 // Full circle is -32768 to 32767.
	LineNum   uint16
	Direction int16 // 0 - same as linedef, 1 - opposite to linedef
	Offset    int16 // Distance along line to start of segment
}

// Seg is the part of a linedef bordering one subsector.
type Seg struct {
	V1, V2  uint16
	Angle   int16 // Binary angle, full circle is -32768 to 32767
	LineNum uint16
	Side    int16 // 0 - same as linedef, 1 - opposite to linedef
	Offset  int16 // Distance along the linedef to the start of the seg
}

// IsSideL reports whether the seg runs opposite to its linedef.
func (s Seg) IsSideL() bool {
	return s.Side != 0
}

// Radians returns the seg's angle in radians.
func (s Seg) Radians() float64 {
	return bamToRadians(s.Angle)
}

// DecodeSegs decodes a SEGS lump.
func DecodeSegs(data []byte) ([]Seg, error) {
	return decodeArray("SEGS", data, func(s binLineSegment) (Seg, error) {
		return Seg{
			V1:      s.V1,
			V2:      s.V2,
			Angle:   s.Angle,
			LineNum: s.LineNum,
			Side:    s.Direction,
			Offset:  s.Offset,
		}, nil
	})
}
