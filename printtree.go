package wad

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// PrintTree prints the level's BSP tree, right child before left.
func PrintTree(w io.Writer, l *Level) error {
	root, ok := l.Root()
	if !ok {
		_, err := fmt.Fprintln(w, "- null")
		return err
	}

	var printRecursive func(Child, string, int) error
	printRecursive = func(c Child, prefix string, depth int) error {
		if c.SubSector {
			if c.Index >= len(l.SubSectors) {
				return errors.Wrapf(ErrOutOfBounds, "subsector %d of %d", c.Index, len(l.SubSectors))
			}
			s := l.SubSectors[c.Index]
			_, err := fmt.Fprintf(w, "%s- subsector %d: %d segs from %d\n", prefix, c.Index, s.NumSegs, s.FirstSeg)
			return err
		}
		if c.Index >= len(l.Nodes) || depth > len(l.Nodes) {
			return errors.Wrapf(ErrOutOfBounds, "node %d of %d at depth %d", c.Index, len(l.Nodes), depth)
		}
		n := &l.Nodes[c.Index]
		if _, err := fmt.Fprintf(w, "%s- node %d: (%d,%d) + (%d,%d)\n", prefix, c.Index, n.X, n.Y, n.DX, n.DY); err != nil {
			return err
		}
		if err := printRecursive(n.ChildR, prefix+"   ", depth+1); err != nil {
			return err
		}
		return printRecursive(n.ChildL, prefix+"   ", depth+1)
	}

	return printRecursive(root, "", 0)
}
