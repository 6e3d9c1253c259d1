package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var endoomCmd = &cobra.Command{
	Use:   "endoom wad_file",
	Short: "Print the ENDOOM exit screen as text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openArchive(args[0])
		if err != nil {
			return err
		}
		e, err := a.Endoom()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), e.Text())
		return err
	},
}
