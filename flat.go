package wad

import "github.com/pkg/errors"

// A flat is an image that is drawn on the floors and ceilings of sectors.
// Flats are a raw collection of pixel values with no offset or other
// dimension information; each flat is a named lump of 4096 bytes
// representing a 64x64 square, stored row by row.
type Flat struct {
	Name  string
	Index int // Position in the F_START/F_END block, -1 when looked up by name
	Data  []byte
}

const FlatWidth, FlatHeight = 64, 64

// DecodeFlat checks that data is a flat. The flat aliases data.
func DecodeFlat(data []byte) (*Flat, error) {
	if len(data) != FlatWidth*FlatHeight {
		return nil, errors.Wrapf(ErrWrongSize, "flat of %d bytes, want %d", len(data), FlatWidth*FlatHeight)
	}
	return &Flat{Index: -1, Data: data}, nil
}

// At returns the palette index at (x, y).
func (f *Flat) At(x, y int) byte {
	return f.Data[y*FlatWidth+x]
}

// Raster returns the flat as a raster with no transparent pixels.
func (f *Flat) Raster() *Raster {
	r := NewRaster(FlatWidth, FlatHeight)
	for i, b := range f.Data {
		r.Columns[i%FlatWidth][i/FlatWidth] = Pixel(b)
	}
	return r
}
