package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	wad "github.com/stuarthighley/wadcodec"
)

var pngKind string

var pngCmd = &cobra.Command{
	Use:   "png wad_file name...",
	Short: "Write pictures, flats or textures as PNG files",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openArchive(args[0])
		if err != nil {
			return err
		}
		playpal, err := a.Playpal()
		if err != nil {
			return err
		}
		if opts.Palette < 0 || opts.Palette >= len(playpal) {
			return errors.Errorf("palette %d out of range", opts.Palette)
		}
		palette := &playpal[opts.Palette]

		for _, name := range args[1:] {
			name = strings.ToUpper(name)
			r, err := loadRaster(a, name, pngKind)
			if err != nil {
				return err
			}
			if err := writePNG(name, r, palette); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d\n", name, r.Width, r.Height)
		}
		return nil
	},
}

func init() {
	pngCmd.Flags().StringVar(&pngKind, "kind", "auto", "What the names refer to: auto, picture, flat or texture")
}

// loadRaster decodes name as the given kind. In auto mode texture names win,
// then lumps inside F_START/F_END are flats and everything else a picture.
func loadRaster(a *wad.Archive, name, kind string) (*wad.Raster, error) {
	switch kind {
	case "texture":
		return a.TextureRaster(name)
	case "flat":
		flat, err := a.Flat(name)
		if err != nil {
			return nil, err
		}
		return flat.Raster(), nil
	case "picture":
		pic, err := a.Picture(name)
		if err != nil {
			return nil, err
		}
		return pic.Raster(), nil
	case "auto":
	default:
		return nil, errors.Errorf("unknown kind %q", kind)
	}

	if _, err := a.Texture(name); err == nil {
		return a.TextureRaster(name)
	} else if !errors.Is(err, wad.ErrMissingLump) {
		return nil, err
	}
	for _, lump := range a.Block("F_START", "F_END") {
		if lump.Name == name {
			return loadRaster(a, name, "flat")
		}
	}
	return loadRaster(a, name, "picture")
}

// rasterImage converts a raster to an image, leaving transparent pixels
// with zero alpha.
func rasterImage(r *wad.Raster, palette *wad.Palette) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	for x, column := range r.Columns {
		for y, p := range column {
			if p == wad.Transparent {
				continue
			}
			c := palette[byte(p)]
			img.SetNRGBA(x, y, color.NRGBA{c.Red, c.Green, c.Blue, 0xff})
		}
	}
	return img
}

func writePNG(name string, r *wad.Raster, palette *wad.Palette) error {
	f, err := createOut(name + ".png")
	if err != nil {
		return err
	}
	if err := png.Encode(f, rasterImage(r, palette)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
