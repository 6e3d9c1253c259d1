package wad

import "github.com/pkg/errors"

// LevelLumpNames are the lumps following a level marker, in the order they
// must appear.
var LevelLumpNames = [10]string{
	"THINGS",
	"LINEDEFS",
	"SIDEDEFS",
	"VERTEXES",
	"SEGS",
	"SSECTORS",
	"NODES",
	"SECTORS",
	"REJECT",
	"BLOCKMAP",
}

const levelBlockLen = len(LevelLumpNames) + 1

// Level is one decoded map. Texture names are copies; the level does not
// reference the archive after decoding.
type Level struct {
	Name       string
	Things     []Thing
	Linedefs   []Linedef
	Sidedefs   []Sidedef
	Vertexes   []Vertex
	Segs       []Seg
	SubSectors []SubSector
	Nodes      []Node
	Sectors    []Sector
	Reject     *Reject
	Blockmap   *Blockmap
}

// IsLevelName reports whether name is a level marker: E1M1 to E2M9 or E3M0
// for Doom, MAP01 to MAP30 for Doom II.
func IsLevelName(name string) bool {
	switch {
	case len(name) == 4 && name[0] == 'E' && name[2] == 'M':
		x, y := name[1], name[3]
		return ('1' <= x && x <= '2' && '1' <= y && y <= '9') || (x == '3' && y == '0')
	case len(name) == 5 && name[:3] == "MAP":
		x, y := name[3], name[4]
		if !isDigit(x) || !isDigit(y) {
			return false
		}
		n := int(x-'0')*10 + int(y-'0')
		return 1 <= n && n <= 30
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLevelLumpName(name string) bool {
	for _, n := range LevelLumpNames {
		if n == name {
			return true
		}
	}
	return false
}

// DecodeLevels finds the level blocks in an ordered lump sequence and decodes
// each of them. Lumps that are neither level markers nor level lumps are
// skipped; what remains must split into blocks of a marker followed by the
// ten level lumps in order.
func DecodeLevels(lumps []Lump) ([]*Level, error) {
	block := make([]Lump, 0, len(lumps))
	for _, lump := range lumps {
		if IsLevelName(lump.Name) || isLevelLumpName(lump.Name) {
			block = append(block, lump)
		}
	}
	if len(block)%levelBlockLen != 0 {
		name := "(none)"
		if len(block) > 0 {
			name = block[0].Name
		}
		return nil, errors.Wrapf(ErrMalformedLevelBlock, "%d level lumps starting at %q do not form blocks of %d",
			len(block), name, levelBlockLen)
	}

	levels := make([]*Level, 0, len(block)/levelBlockLen)
	for i := 0; i < len(block); i += levelBlockLen {
		level, err := DecodeLevel(block[i : i+levelBlockLen])
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	logger.Debug().Int("levels", len(levels)).Msg("decoded levels")
	return levels, nil
}

// DecodeLevel decodes one level block: a marker lump followed by the ten
// level lumps in canonical order.
func DecodeLevel(block []Lump) (*Level, error) {
	if len(block) == 0 {
		return nil, errors.Wrap(ErrMalformedLevelBlock, "empty block")
	}
	name := block[0].Name
	if !IsLevelName(name) {
		return nil, errors.Wrapf(ErrMalformedLevelBlock, "%q is not a level marker", name)
	}
	if len(block) != levelBlockLen {
		return nil, errors.Wrapf(ErrMalformedLevelBlock, "level %q: %d lumps, want %d", name, len(block), levelBlockLen)
	}
	for i, want := range LevelLumpNames {
		if got := block[i+1].Name; got != want {
			return nil, errors.Wrapf(ErrMalformedLevelBlock, "level %q: lump %d is %q, want %q", name, i+1, got, want)
		}
	}
	logger.Debug().Str("level", name).Msg("reading level")

	level := &Level{Name: name}
	var err error
	for _, lump := range block[1:] {
		data := lump.Data
		switch lump.Name {
		case "THINGS":
			level.Things, err = DecodeThings(data)
		case "LINEDEFS":
			level.Linedefs, err = DecodeLinedefs(data)
		case "SIDEDEFS":
			level.Sidedefs, err = DecodeSidedefs(data)
		case "VERTEXES":
			level.Vertexes, err = DecodeVertexes(data)
		case "SEGS":
			level.Segs, err = DecodeSegs(data)
		case "SSECTORS":
			level.SubSectors, err = DecodeSubSectors(data)
		case "NODES":
			level.Nodes, err = DecodeNodes(data)
		case "SECTORS":
			level.Sectors, err = DecodeSectors(data)
		case "REJECT":
			// SECTORS precedes REJECT, so the sector count is known here
			level.Reject = DecodeReject(data, len(level.Sectors))
		case "BLOCKMAP":
			level.Blockmap, err = DecodeBlockmap(data)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "level %q", name)
		}
	}
	return level, nil
}
