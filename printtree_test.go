package wad

import (
	"errors"
	"strings"
	"testing"
)

func TestPrintTree(t *testing.T) {
	tests := []struct {
		name  string
		level *Level
		want  string
	}{
		{
			name:  "empty level",
			level: &Level{},
			want:  "- null\n",
		},
		{
			name:  "single subsector",
			level: &Level{SubSectors: []SubSector{{NumSegs: 4, FirstSeg: 0}}},
			want:  "- subsector 0: 4 segs from 0\n",
		},
		{
			name: "two nodes",
			level: &Level{
				SubSectors: []SubSector{{NumSegs: 4, FirstSeg: 0}, {NumSegs: 3, FirstSeg: 4}, {NumSegs: 5, FirstSeg: 7}},
				Nodes: []Node{
					{X: 64, Y: 0, DX: 0, DY: 128, ChildR: Child{Index: 0, SubSector: true}, ChildL: Child{Index: 1, SubSector: true}},
					{X: 0, Y: 0, DX: 128, DY: 0, ChildR: Child{Index: 0}, ChildL: Child{Index: 2, SubSector: true}},
				},
			},
			want: strings.Join([]string{
				"- node 1: (0,0) + (128,0)",
				"   - node 0: (64,0) + (0,128)",
				"      - subsector 0: 4 segs from 0",
				"      - subsector 1: 3 segs from 4",
				"   - subsector 2: 5 segs from 7",
				"",
			}, "\n"),
		},
	}

	for _, tt := range tests {
		var sb strings.Builder
		if err := PrintTree(&sb, tt.level); err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if sb.String() != tt.want {
			t.Errorf("%s: got\n%s\nwant\n%s", tt.name, sb.String(), tt.want)
		}
	}
}

func TestPrintTreeErrors(t *testing.T) {
	tests := []struct {
		name  string
		level *Level
	}{
		{"bad subsector", &Level{Nodes: []Node{{ChildR: Child{Index: 9, SubSector: true}}}}},
		{"bad node", &Level{Nodes: []Node{{ChildR: Child{Index: 4}}}}},
		{"cycle", &Level{Nodes: []Node{{ChildR: Child{Index: 0}}}}},
	}
	for _, tt := range tests {
		if err := PrintTree(&strings.Builder{}, tt.level); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("%s: error = %v, want ErrOutOfBounds", tt.name, err)
		}
	}
}
