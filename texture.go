package wad

import (
	"encoding/binary"
	"strings"

	"github.com/pkg/errors"
)

type binTextureHeader struct {
	TextureName String8
	Masked      int32
	Width       int16
	Height      int16
	Unused      int32 // ColumnDirectory
	NumPatches  int16
}

type binPatch struct {
	XOffset      int16
	YOffset      int16
	PatchNameIdx int16
	StepDir      int16 // Unused
	ColorMap     int16 // Unused
}

// Texture is a wall texture composed of one or more patches.
type Texture struct {
	Name          string
	IsMasked      bool
	Width, Height int
	Patches       []Patch
}

// Patch places a picture, named through PNAMES, inside a texture.
type Patch struct {
	XOffset int // horizontal offset of patch relative to upper-left of texture
	YOffset int // vertical offset of patch relative to upper-left of texture
	Index   int // Index into PNAMES
	StepDir int
	Map     int
}

// PatchResolver looks up a patch picture lump by name. Archive.Lump
// satisfies it.
type PatchResolver func(name string) (Lump, bool)

// DecodeTextures decodes a TEXTURE1 or TEXTURE2 lump.
func DecodeTextures(lump []byte) ([]Texture, error) {

	// Read header
	var count int32
	if err := readFixed("texture count", lump, &count); err != nil {
		return nil, err
	}
	if count < 0 || !inBounds(4, 4*int64(count), len(lump)) {
		return nil, errors.Wrapf(ErrOutOfBounds, "%d texture offsets", count)
	}

	// For each offset...
	var header binTextureHeader
	headerSize := binary.Size(header)
	patchSize := binary.Size(binPatch{})
	textures := make([]Texture, count)
	for i := range int(count) {
		offset := int32(binary.LittleEndian.Uint32(lump[4+4*i:]))
		if !inBounds(int(offset), headerSize, len(lump)) {
			return nil, errors.Wrapf(ErrOutOfBounds, "texture %d at %d", i, offset)
		}
		if err := readFixed("texture header", lump[offset:], &header); err != nil {
			return nil, err
		}
		name, err := header.TextureName.Decode()
		if err != nil {
			return nil, errors.Wrapf(err, "texture %d", i)
		}

		// Add patches to texture
		start := int(offset) + headerSize
		if header.NumPatches < 0 || !inBounds(start, int(header.NumPatches)*patchSize, len(lump)) {
			return nil, errors.Wrapf(ErrTruncatedRecord, "texture %q: %d patches", name, header.NumPatches)
		}
		binPatches, err := decodeArray("texture patches", lump[start:start+int(header.NumPatches)*patchSize],
			func(p binPatch) (Patch, error) {
				return Patch{
					XOffset: int(p.XOffset),
					YOffset: int(p.YOffset),
					Index:   int(p.PatchNameIdx),
					StepDir: int(p.StepDir),
					Map:     int(p.ColorMap),
				}, nil
			})
		if err != nil {
			return nil, errors.Wrapf(err, "texture %q", name)
		}

		textures[i] = Texture{
			Name:     name,
			IsMasked: header.Masked != 0,
			Width:    int(header.Width),
			Height:   int(header.Height),
			Patches:  binPatches,
		}
	}
	return textures, nil
}

// Raster composes the texture from its patches. Patches are drawn in order
// and only where they have pixels, so later patches cover earlier ones
// except through their holes; pixels no patch covers stay Transparent.
func (t *Texture) Raster(names PatchNames, resolve PatchResolver) (*Raster, error) {
	r := NewRaster(t.Width, t.Height)
	for _, p := range t.Patches {
		name, ok := names.Name(p.Index)
		if !ok {
			return nil, errors.Wrapf(ErrMissingLump, "texture %q: patch index %d of %d", t.Name, p.Index, len(names))
		}
		lump, ok := resolve(name)
		if !ok {
			// PNAMES is not always upper case, "w94_1" in DOOM.WAD
			lump, ok = resolve(strings.ToUpper(name))
		}
		if !ok {
			return nil, errors.Wrapf(ErrMissingLump, "texture %q: patch %q", t.Name, name)
		}
		pic, err := DecodePicture(lump.Data)
		if err != nil {
			return nil, errors.Wrapf(err, "texture %q: patch %q", t.Name, name)
		}
		pic.ink(func(x, y int, c byte) {
			r.Set(p.XOffset+x, p.YOffset+y, Pixel(c))
		})
	}
	return r, nil
}

// PatchNames is the PNAMES lump: the names of the pictures textures are
// built from, indexed by Patch.Index.
type PatchNames []string

// Name returns the patch name at index i.
func (p PatchNames) Name(i int) (string, bool) {
	if i < 0 || i >= len(p) {
		return "", false
	}
	return p[i], true
}

// DecodePatchNames decodes a PNAMES lump.
func DecodePatchNames(lump []byte) (PatchNames, error) {

	// Read PNAMES header
	var count int32
	if err := readFixed("PNAMES", lump, &count); err != nil {
		return nil, err
	}
	if count < 0 || !inBounds(4, int64(count)*NameLen, len(lump)) {
		return nil, errors.Wrapf(ErrTruncatedRecord, "PNAMES: %d names in %d bytes", count, len(lump))
	}

	// Read and translate PNAMES body
	names, err := decodeArray("PNAMES", lump[4:4+int(count)*NameLen], String8.Decode)
	if err != nil {
		return nil, err
	}
	return PatchNames(names), nil
}
