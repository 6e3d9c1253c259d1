package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	wad "github.com/stuarthighley/wadcodec"
)

type options struct {
	PWads   []string
	OutDir  string
	Palette int
	Verbose bool
}

var opts = &options{}

var rootCmd = &cobra.Command{
	Use:   "wadtool",
	Short: "wadtool inspects and extracts Doom and Doom2 WAD files",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if opts.Verbose {
			level = zerolog.DebugLevel
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
		wad.SetLogger(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringArrayVar(&opts.PWads, "pwad", nil, "Patch WAD merged over the base WAD, may be repeated")
	rootCmd.PersistentFlags().StringVar(&opts.OutDir, "out", "out", "Directory extracted files are written to")
	rootCmd.PersistentFlags().IntVar(&opts.Palette, "palette", 0, "PLAYPAL palette used for images, 0 to 13")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log decoding progress")

	rootCmd.AddCommand(lumpsCmd, levelsCmd, treeCmd, svgCmd, pngCmd, soundCmd, endoomCmd)
}

// openArchive parses the base WAD and merges the --pwad overrides into it.
func openArchive(base string) (*wad.Archive, error) {
	return wad.Open(append([]string{base}, opts.PWads...)...)
}

// createOut creates the output directory and the named file inside it.
func createOut(name string) (*os.File, error) {
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, err
	}
	return os.Create(filepath.Join(opts.OutDir, name))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
