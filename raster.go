package wad

// Pixel is a palette index, or Transparent where nothing was drawn.
type Pixel int16

// Transparent marks a pixel not covered by any post. It lies outside the
// 0-255 palette range so it can never be mistaken for a color.
const Transparent Pixel = -1

// Column is one vertical strip of a raster, top to bottom.
type Column []Pixel

// Raster is a dense, column-major image of palette indexes.
type Raster struct {
	Width, Height int
	Columns       []Column
}

// NewRaster returns a width x height raster with every pixel transparent.
func NewRaster(width, height int) *Raster {
	r := &Raster{
		Width:   max(width, 0),
		Height:  max(height, 0),
		Columns: make([]Column, max(width, 0)),
	}
	for x := range r.Columns {
		c := make(Column, r.Height)
		for y := range c {
			c[y] = Transparent
		}
		r.Columns[x] = c
	}
	return r
}

// At returns the pixel at (x, y), or Transparent outside the raster.
func (r *Raster) At(x, y int) Pixel {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return Transparent
	}
	return r.Columns[x][y]
}

// Set sets the pixel at (x, y) and reports whether it was inside the raster.
func (r *Raster) Set(x, y int, p Pixel) bool {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return false
	}
	r.Columns[x][y] = p
	return true
}
