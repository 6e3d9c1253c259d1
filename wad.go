// Package wad decodes Doom's data archives, also known as WAD files, and the
// lump formats stored inside them: level geometry, palettes, colormaps,
// flats, pictures and composite textures.
// The file format is documented in The Unofficial DOOM Specs:
// http://www.gamers.org/dhs/helpdocs/dmsp1666.html
//
// Lumps are views into the buffer the archive was parsed from; nothing is
// copied, and decoding happens on demand.
package wad

import (
	"os"
	"sort"

	"github.com/pkg/errors"
)

// Type tells a complete game archive from a patch archive.
type Type int

const (
	IWAD Type = iota // Base game data
	PWAD             // Patch data
)

func (t Type) String() string {
	if t == IWAD {
		return "IWAD"
	}
	return "PWAD"
}

type binHeader struct {
	Magic        [4]byte
	NumLumps     int32
	InfoTableOfs int32
}

type binLumpInfo struct {
	Filepos int32
	Size    int32
	Name    String8
}

const (
	headerSize   = 12
	lumpInfoSize = 16
)

// Lump is a named byte range inside an archive. Data aliases the buffer the
// archive was parsed from.
type Lump struct {
	Name string
	Data []byte
}

// IsVirtual reports whether the lump is a zero-length marker.
func (l Lump) IsVirtual() bool {
	return len(l.Data) == 0
}

// Archive is the ordered lump directory of one WAD, or of several WADs
// merged together.
type Archive struct {
	typ      Type
	lumps    []Lump
	lumpNums map[string]int
}

// Parse reads the header and directory of a WAD held in data. The returned
// archive borrows data, which must not be modified afterwards.
func Parse(data []byte) (*Archive, error) {

	// Read header
	if len(data) < 4 {
		return nil, errors.Wrapf(ErrUnrecognizedMagic, "%d byte file", len(data))
	}
	var header binHeader
	var typ Type
	switch string(data[:4]) {
	case "IWAD":
		typ = IWAD
	case "PWAD":
		typ = PWAD
	default:
		return nil, errors.Wrapf(ErrUnrecognizedMagic, "%q", data[:4])
	}
	if len(data) < headerSize {
		return nil, errors.Wrapf(ErrOutOfBounds, "header: %d byte file", len(data))
	}
	if err := readFixed("header", data, &header); err != nil {
		return nil, err
	}
	if header.NumLumps < 0 || !inBounds(int64(header.InfoTableOfs), int64(header.NumLumps)*lumpInfoSize, len(data)) {
		return nil, errors.Wrapf(ErrOutOfBounds, "directory of %d lumps at %d in %d byte file",
			header.NumLumps, header.InfoTableOfs, len(data))
	}
	logger.Debug().Stringer("type", typ).Int32("lumps", header.NumLumps).Msg("reading directory")

	// Read info tables
	a := &Archive{
		typ:      typ,
		lumps:    make([]Lump, header.NumLumps),
		lumpNums: make(map[string]int, header.NumLumps),
	}
	dir := data[header.InfoTableOfs:]
	for i := range int(header.NumLumps) {
		var info binLumpInfo
		if err := readFixed("directory entry", dir[i*lumpInfoSize:], &info); err != nil {
			return nil, err
		}
		name, err := info.Name.Decode()
		if err != nil {
			return nil, errors.Wrapf(err, "directory entry %d", i)
		}
		if !inBounds(info.Filepos, info.Size, len(data)) {
			return nil, errors.Wrapf(ErrOutOfBounds, "lump %q: %d bytes at %d in %d byte file",
				name, info.Size, info.Filepos, len(data))
		}
		end := int(info.Filepos) + int(info.Size)
		a.lumps[i] = Lump{Name: name, Data: data[info.Filepos:end:end]}
		a.lumpNums[name] = i
	}
	return a, nil
}

// Open reads and parses the WAD files at paths. The first is the base
// archive; the rest are merged into it in order.
func Open(paths ...string) (*Archive, error) {
	if len(paths) == 0 {
		return nil, errors.New("no WAD files given")
	}
	var base *Archive
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		a, err := Parse(data)
		if err != nil {
			return nil, errors.Wrap(err, path)
		}
		logger.Debug().Str("path", path).Stringer("type", a.typ).Int("lumps", a.Len()).Msg("parsed WAD")
		if base == nil {
			base = a
			continue
		}
		base.Merge(a)
	}
	return base, nil
}

// Type returns the archive's type tag. A merged archive keeps the type of
// the base archive.
func (a *Archive) Type() Type {
	return a.typ
}

// Len returns the number of directory entries.
func (a *Archive) Len() int {
	return len(a.lumps)
}

// Lump returns the last lump named name.
func (a *Archive) Lump(name string) (Lump, bool) {
	i, ok := a.lumpNums[name]
	if !ok {
		return Lump{}, false
	}
	return a.lumps[i], true
}

// LumpAt returns the lump at directory position i.
func (a *Archive) LumpAt(i int) (Lump, bool) {
	if i < 0 || i >= len(a.lumps) {
		return Lump{}, false
	}
	return a.lumps[i], true
}

// Lumps returns the directory in order. Earlier entries shadowed by a later
// lump of the same name are still included.
func (a *Archive) Lumps() []Lump {
	lumps := make([]Lump, len(a.lumps))
	copy(lumps, a.lumps)
	return lumps
}

// Merge patches a with the lumps of p. A lump whose name already exists in a
// replaces the content of that lump in place; any other lump is appended.
// The lumps of p keep aliasing p's buffer.
func (a *Archive) Merge(p *Archive) {
	replaced, added := 0, 0
	for _, lump := range p.lumps {
		if i, ok := a.lumpNums[lump.Name]; ok {
			a.lumps[i].Data = lump.Data
			replaced++
			continue
		}
		a.lumpNums[lump.Name] = len(a.lumps)
		a.lumps = append(a.lumps, lump)
		added++
	}
	logger.Debug().Int("replaced", replaced).Int("added", added).Msg("merged WAD")
}

// Merge merges each patch archive into base in order and returns base.
func Merge(base *Archive, patches ...*Archive) *Archive {
	for _, p := range patches {
		base.Merge(p)
	}
	return base
}

// Block returns the non-marker lumps found after the first lump named start
// and before the next lump named end, e.g. F_START and F_END. A missing end
// marker runs the block to the end of the directory.
func (a *Archive) Block(start, end string) []Lump {
	var lumps []Lump
	inside := false
	for _, lump := range a.lumps {
		if !inside {
			inside = lump.Name == start
			continue
		}
		if lump.Name == end {
			break
		}
		if !lump.IsVirtual() {
			lumps = append(lumps, lump)
		}
	}
	return lumps
}

// LevelNames returns a sorted slice of level names found in the archive.
func (a *Archive) LevelNames() []string {
	result := make([]string, 0)
	for name := range a.lumpNums {
		if IsLevelName(name) {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}

// Levels decodes every level block in directory order.
func (a *Archive) Levels() ([]*Level, error) {
	return DecodeLevels(a.lumps)
}

// Level decodes the level whose marker lump is named name.
func (a *Archive) Level(name string) (*Level, error) {
	i, ok := a.lumpNums[name]
	if !ok || !IsLevelName(name) {
		return nil, errors.Wrapf(ErrMissingLump, "level %q", name)
	}
	if i+len(LevelLumpNames) >= len(a.lumps) {
		return nil, errors.Wrapf(ErrMalformedLevelBlock, "level %q: directory ends inside the block", name)
	}
	return DecodeLevel(a.lumps[i : i+len(LevelLumpNames)+1])
}
