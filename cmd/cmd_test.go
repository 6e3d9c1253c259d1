package cmd

import (
	"bytes"
	"encoding/binary"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	wad "github.com/stuarthighley/wadcodec"
)

func TestRasterImage(t *testing.T) {
	var palette wad.Palette
	palette[3] = wad.RGB{Red: 10, Green: 20, Blue: 30}

	r := wad.NewRaster(2, 1)
	r.Set(0, 0, 3)
	img := rasterImage(r, &palette)

	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 1 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{10, 20, 30, 0xff}) {
		t.Errorf("pixel (0,0) = %v", got)
	}
	if got := img.NRGBAAt(1, 0); got.A != 0 {
		t.Errorf("transparent pixel = %v", got)
	}
}

func TestRenderSVG(t *testing.T) {
	l := &wad.Level{
		Name:     "E1M1",
		Vertexes: []wad.Vertex{{X: 0, Y: 0}, {X: 64, Y: 0}, {X: 64, Y: 128}},
		Linedefs: []wad.Linedef{
			{V1: 0, V2: 1, SideR: 0, SideL: wad.NoSide},
			{V1: 1, V2: 2, Flags: wad.TwoSided, SideR: 1, SideL: 2},
		},
	}
	var buf bytes.Buffer
	if err := renderSVG(&buf, l, 640, 480); err != nil {
		t.Fatalf("renderSVG: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`<svg width="640" height="480" viewBox="0 -128 64 128"`,
		`<title>E1M1</title>`,
		`<line x1="0" y1="0" x2="64" y2="0" stroke="black"`,
		`<line x1="64" y1="0" x2="64" y2="-128" stroke="grey"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output is missing %q:\n%s", want, out)
		}
	}

	l.Linedefs = append(l.Linedefs, wad.Linedef{V1: 0, V2: 9})
	if err := renderSVG(&bytes.Buffer{}, l, 640, 480); err == nil {
		t.Error("renderSVG accepted a linedef with a missing vertex")
	}
}

func TestSoundBuffer(t *testing.T) {
	buf := soundBuffer(&wad.Sound{SampleRate: 11025, Samples: []byte{0x80, 0xff, 0x00}})
	if buf.Format.SampleRate != 11025 || buf.Format.NumChannels != 1 || buf.SourceBitDepth != 8 {
		t.Errorf("format = %+v, depth %d", buf.Format, buf.SourceBitDepth)
	}
	if want := []int{0x80, 0xff, 0x00}; len(buf.Data) != 3 || buf.Data[0] != want[0] || buf.Data[1] != want[1] || buf.Data[2] != want[2] {
		t.Errorf("data = %v, want %v", buf.Data, want)
	}
}

// writeWAD writes a one-lump PWAD to a temporary file.
func writeWAD(t *testing.T, name string, data []byte) string {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("PWAD")
	binary.Write(&buf, binary.LittleEndian, []int32{1, int32(12 + len(data))})
	buf.Write(data)
	binary.Write(&buf, binary.LittleEndian, []int32{12, int32(len(data))})
	var n [8]byte
	copy(n[:], name)
	buf.Write(n[:])

	path := filepath.Join(t.TempDir(), "test.wad")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLumpsCommand(t *testing.T) {
	path := writeWAD(t, "DEMO1", []byte{1, 2, 3})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"lumps", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("lumps: %v", err)
	}
	if got := out.String(); !strings.Contains(got, "PWAD, 1 lumps") || !strings.Contains(got, "DEMO1") {
		t.Errorf("output = %q", got)
	}
}
