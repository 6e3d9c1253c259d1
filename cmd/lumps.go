package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lumpsCmd = &cobra.Command{
	Use:   "lumps wad_file",
	Short: "List the lump directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openArchive(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s, %d lumps\n", a.Type(), a.Len())
		for i, lump := range a.Lumps() {
			fmt.Fprintf(out, "%5d %-8s %8d\n", i, lump.Name, len(lump.Data))
		}
		return nil
	},
}
