package wad

import "image/color"

type RGB struct {
	Red, Green, Blue uint8
}

// PLAYPAL lump. A set of color palettes used to set the main graphics colors.
// The Doom engine can only display 256 simultaneous colors, so it performs
// palette swaps to achieve damage, pickup and radiation suit effects.
type Playpal [14]Palette

// Each palette in PLAYPAL contains 256 three-ubyte colors totaling 768 bytes (RGB).
type Palette [256]RGB

// ColorPalette converts the palette for use with the image packages.
func (p *Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, len(p))
	for i, c := range p {
		cp[i] = color.RGBA{c.Red, c.Green, c.Blue, 0xff}
	}
	return cp
}

// DecodePlaypal decodes a PLAYPAL lump.
func DecodePlaypal(data []byte) (*Playpal, error) {
	var playpal Playpal
	if err := readFixed("PLAYPAL", data, &playpal); err != nil {
		return nil, err
	}
	return &playpal, nil
}

// The COLORMAP lump contains 34 color maps of indices into the PLAYPAL palette
// through which colors can be remapped for sector lighting, distance fading,
// and partial screen color changes (such as the invulnerability effect).
type ColorMaps [34]ColorMap

// Each color map is a table 256 bytes long. It is indexed using a pixel value
// (from 0 to 255) and yields a new, brightness-adjusted pixel value.
type ColorMap [256]byte

// Map remaps p, leaving Transparent untouched.
func (c *ColorMap) Map(p Pixel) Pixel {
	if p == Transparent {
		return p
	}
	return Pixel(c[byte(p)])
}

// DecodeColorMaps decodes a COLORMAP lump.
func DecodeColorMaps(data []byte) (*ColorMaps, error) {
	var colormaps ColorMaps
	if err := readFixed("COLORMAP", data, &colormaps); err != nil {
		return nil, err
	}
	return &colormaps, nil
}
