package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	wad "github.com/stuarthighley/wadcodec"
)

var levelsCmd = &cobra.Command{
	Use:   "levels wad_file",
	Short: "Decode every level and print its record counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openArchive(args[0])
		if err != nil {
			return err
		}
		levels, err := a.Levels()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, l := range levels {
			fmt.Fprintf(out, "%-5s things=%d linedefs=%d sidedefs=%d vertexes=%d segs=%d ssectors=%d nodes=%d sectors=%d blocks=%d\n",
				l.Name, len(l.Things), len(l.Linedefs), len(l.Sidedefs), len(l.Vertexes), len(l.Segs),
				len(l.SubSectors), len(l.Nodes), len(l.Sectors), len(l.Blockmap.Blocks))
		}
		return nil
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree wad_file map_name",
	Short: "Print the BSP tree of a level",
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
		return wad.PrintTree(cmd.OutOrStdout(), l)
	},
}
