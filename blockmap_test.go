package wad

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecodeBlockmap(t *testing.T) {
	// 2x2 blocks; the header and offset table take 16 bytes, lists start at
	// byte 16. Blocks 2 and 3 share one list.
	data := le(
		int16(-776), int16(-4872), int16(2), int16(2),
		[]uint16{16, 24, 28, 28},
		[]uint16{0, 3, 5, 0xffff},
		[]uint16{0, 0xffff},
		[]uint16{0, 7, 0xffff},
	)
	bm, err := DecodeBlockmap(data)
	if err != nil {
		t.Fatalf("DecodeBlockmap: %v", err)
	}
	if bm.OriginX != -776 || bm.OriginY != -4872 || bm.NumColumns != 2 || bm.NumRows != 2 {
		t.Errorf("header = %+v", bm)
	}

	tests := []struct {
		x, y int
		want []uint16
	}{
		{0, 0, []uint16{3, 5}},
		{1, 0, []uint16{}},
		{0, 1, []uint16{7}},
		{1, 1, []uint16{7}},
	}
	for _, tt := range tests {
		b := bm.Block(tt.x, tt.y)
		if b == nil {
			t.Fatalf("Block(%d, %d) = nil", tt.x, tt.y)
		}
		if !reflect.DeepEqual(b.LineNums, tt.want) {
			t.Errorf("Block(%d, %d) = %v, want %v", tt.x, tt.y, b.LineNums, tt.want)
		}
	}
	if bm.Block(2, 0) != nil || bm.Block(0, -1) != nil {
		t.Error("Block outside the grid is not nil")
	}
}

func TestDecodeBlockmapSingleBlock(t *testing.T) {
	// The list sits right after the offset table, at byte 10
	bm, err := DecodeBlockmap(le(int16(0), int16(0), int16(1), int16(1), uint16(10), []int16{0, 3, -1}))
	if err != nil {
		t.Fatalf("DecodeBlockmap: %v", err)
	}
	if got := bm.Block(0, 0).LineNums; !reflect.DeepEqual(got, []uint16{3}) {
		t.Errorf("Block(0, 0) = %v, want [3]", got)
	}
}

func TestDecodeBlockmapEmpty(t *testing.T) {
	bm, err := DecodeBlockmap(nil)
	if err != nil {
		t.Fatalf("DecodeBlockmap(nil): %v", err)
	}
	if bm.NumColumns != 0 || bm.NumRows != 0 || len(bm.Blocks) != 0 {
		t.Errorf("empty blockmap = %+v", bm)
	}
}

func TestDecodeBlockmapErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short header", []byte{1, 2, 3}, ErrTruncatedRecord},
		{"negative size", le(int16(0), int16(0), int16(-1), int16(1)), ErrMalformedLevelBlock},
		{"short table", le(int16(0), int16(0), int16(2), int16(1), uint16(6)), ErrTruncatedRecord},
		{"offset past end", le(int16(0), int16(0), int16(1), int16(1), uint16(200)), ErrOutOfBounds},
		{"offset at last byte", le(int16(0), int16(0), int16(1), int16(1), uint16(9)), ErrOutOfBounds},
		{"no leading zero", le(int16(0), int16(0), int16(1), int16(1), uint16(10), []uint16{4, 0xffff}), ErrMalformedLevelBlock},
		{"no terminator", le(int16(0), int16(0), int16(1), int16(1), uint16(10), []uint16{0, 4, 5}), ErrTruncatedRecord},
	}
	for _, tt := range tests {
		if _, err := DecodeBlockmap(tt.data); !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}
}
