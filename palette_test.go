package wad

import (
	"errors"
	"image/color"
	"testing"
)

func TestDecodePlaypal(t *testing.T) {
	data := make([]byte, 14*256*3)
	copy(data[3*1:], []byte{0x1f, 0x17, 0x0b})
	copy(data[768*13+3*255:], []byte{1, 2, 3})

	playpal, err := DecodePlaypal(data)
	if err != nil {
		t.Fatalf("DecodePlaypal: %v", err)
	}
	if got := playpal[0][1]; got != (RGB{0x1f, 0x17, 0x0b}) {
		t.Errorf("palette 0 color 1 = %v", got)
	}
	if got := playpal[13][255]; got != (RGB{1, 2, 3}) {
		t.Errorf("palette 13 color 255 = %v", got)
	}

	cp := playpal[0].ColorPalette()
	if len(cp) != 256 || cp[1] != (color.RGBA{0x1f, 0x17, 0x0b, 0xff}) {
		t.Errorf("ColorPalette()[1] = %v", cp[1])
	}

	if _, err := DecodePlaypal(data[:100]); !errors.Is(err, ErrTruncatedRecord) {
		t.Errorf("short PLAYPAL error = %v, want ErrTruncatedRecord", err)
	}
}

func TestDecodeColorMaps(t *testing.T) {
	data := make([]byte, 34*256)
	data[256*32+7] = 0xb0
	maps, err := DecodeColorMaps(data)
	if err != nil {
		t.Fatalf("DecodeColorMaps: %v", err)
	}
	if got := maps[32].Map(7); got != 0xb0 {
		t.Errorf("Map(7) = %d, want 176", got)
	}
	if got := maps[32].Map(Transparent); got != Transparent {
		t.Errorf("Map(Transparent) = %d", got)
	}
	if _, err := DecodeColorMaps(data[:256]); !errors.Is(err, ErrTruncatedRecord) {
		t.Errorf("short COLORMAP error = %v, want ErrTruncatedRecord", err)
	}
}

func TestDecodeFlat(t *testing.T) {
	data := make([]byte, FlatWidth*FlatHeight)
	data[3*FlatWidth+5] = 99

	flat, err := DecodeFlat(data)
	if err != nil {
		t.Fatalf("DecodeFlat: %v", err)
	}
	if flat.At(5, 3) != 99 {
		t.Errorf("At(5, 3) = %d", flat.At(5, 3))
	}
	r := flat.Raster()
	if r.At(5, 3) != 99 || r.At(3, 5) != 0 {
		t.Errorf("raster (5,3) = %d, (3,5) = %d", r.At(5, 3), r.At(3, 5))
	}

	for _, n := range []int{0, 4095, 4097} {
		if _, err := DecodeFlat(make([]byte, n)); !errors.Is(err, ErrWrongSize) {
			t.Errorf("flat of %d bytes: error = %v, want ErrWrongSize", n, err)
		}
	}
}
