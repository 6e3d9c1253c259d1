package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	wad "github.com/stuarthighley/wadcodec"
)

var svgWidth, svgHeight int

var svgCmd = &cobra.Command{
	Use:   "svg wad_file map_name",
	Short: "Write a level's linedefs as an SVG map",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openArchive(args[0])
		if err != nil {
			return err
		}
		l, err := a.Level(args[1])
		if err != nil {
			return err
		}
		f, err := createOut(l.Name + ".svg")
		if err != nil {
			return err
		}
		defer f.Close()
		return renderSVG(f, l, svgWidth, svgHeight)
	},
}

func init() {
	svgCmd.Flags().IntVar(&svgWidth, "image_width", 1280, "Width of generated SVG image")
	svgCmd.Flags().IntVar(&svgHeight, "image_height", 1024, "Height of generated SVG image")
}

// renderSVG draws one-sided lines black and two-sided lines grey. Map y grows
// north, so it is negated for SVG.
func renderSVG(w io.Writer, l *wad.Level, width, height int) error {
	minX, minY, maxX, maxY := math.MaxInt, math.MaxInt, math.MinInt, math.MinInt
	for _, v := range l.Vertexes {
		x, y := int(v.X), -int(v.Y)
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	if len(l.Vertexes) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	fmt.Fprintln(w, "<?xml version=\"1.0\" standalone=\"no\"?>")
	fmt.Fprintf(w, "<svg width=\"%d\" height=\"%d\" viewBox=\"%d %d %d %d\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		width, height, minX, minY, maxX-minX, maxY-minY)
	fmt.Fprintf(w, "  <title>%s</title>\n", l.Name)
	fmt.Fprintln(w, "  <g>")
	for i, line := range l.Linedefs {
		if int(line.V1) >= len(l.Vertexes) || int(line.V2) >= len(l.Vertexes) {
			return errors.Wrapf(wad.ErrOutOfBounds, "linedef %d: vertexes %d and %d of %d", i, line.V1, line.V2, len(l.Vertexes))
		}
		v1, v2 := l.Vertexes[line.V1], l.Vertexes[line.V2]
		stroke := "black"
		if line.Has(wad.TwoSided) {
			stroke = "grey"
		}
		fmt.Fprintf(w, "    <line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\" stroke-width=\"2\"/>\n",
			v1.X, -int(v1.Y), v2.X, -int(v2.Y), stroke)
	}
	fmt.Fprintln(w, "  </g>")
	_, err := fmt.Fprintln(w, "</svg>")
	return err
}
