package cmd

import (
	"fmt"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/cobra"

	wad "github.com/stuarthighley/wadcodec"
)

var soundCmd = &cobra.Command{
	Use:   "sound wad_file name...",
	Short: "Write DMX sound lumps as WAV files",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openArchive(args[0])
		if err != nil {
			return err
		}
		for _, name := range args[1:] {
			name = strings.ToUpper(name)
			s, err := a.Sound(name)
			if err != nil {
				return err
			}
			if err := writeWAV(name, s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d samples at %d Hz\n", name, len(s.Samples), s.SampleRate)
		}
		return nil
	},
}

// soundBuffer converts DMX samples, 8-bit unsigned mono, to an audio buffer.
func soundBuffer(s *wad.Sound) *audio.IntBuffer {
	buf := &audio.IntBuffer{
		SourceBitDepth: 8,
		Format:         &audio.Format{NumChannels: 1, SampleRate: s.SampleRate},
		Data:           make([]int, len(s.Samples)),
	}
	for i, b := range s.Samples {
		buf.Data[i] = int(b)
	}
	return buf
}

func writeWAV(name string, s *wad.Sound) error {
	f, err := createOut(name + ".wav")
	if err != nil {
		return err
	}
	buf := soundBuffer(s)
	enc := wav.NewEncoder(f, buf.Format.SampleRate, buf.SourceBitDepth, 1, 1)
	if err := enc.Write(buf); err != nil {
		f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
