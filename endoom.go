package wad

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

const EndoomWidth, EndoomHeight = 80, 25

// ENDOOM consists of 4000 bytes representing an 80x25 text block exactly as
// stored in VGA video memory. Every character is stored as two bytes: the
// first byte is the character in code page 437; the second byte gives color
// information.
type Endoom [EndoomWidth * EndoomHeight * 2]byte

// TextAttr is the color byte of an ENDOOM cell. Bits 0-3 give the
// foreground color, 4-6 give the background color, and bit 7 is a 'blink'
// flag. The colors are standard DOS text-mode colors.
type TextAttr byte

func (a TextAttr) Foreground() int { return int(a & 0x0f) }
func (a TextAttr) Background() int { return int(a>>4) & 0x07 }
func (a TextAttr) Blink() bool     { return a&0x80 != 0 }

// DecodeEndoom decodes an ENDOOM lump.
func DecodeEndoom(data []byte) (*Endoom, error) {
	var e Endoom
	if len(data) != len(e) {
		return nil, errors.Wrapf(ErrWrongSize, "ENDOOM of %d bytes, want %d", len(data), len(e))
	}
	copy(e[:], data)
	return &e, nil
}

// Cell returns the raw character and attribute at column x, row y.
func (e *Endoom) Cell(x, y int) (byte, TextAttr) {
	i := 2 * (y*EndoomWidth + x)
	return e[i], TextAttr(e[i+1])
}

// Text returns the screen as 25 lines of UTF-8 text.
func (e *Endoom) Text() string {
	var sb strings.Builder
	row := make([]byte, EndoomWidth)
	for y := range EndoomHeight {
		for x := range EndoomWidth {
			row[x], _ = e.Cell(x, y)
		}
		for i, c := range row {
			if c == 0 {
				row[i] = ' '
			}
		}
		// Every byte maps to a rune in code page 437, so this cannot fail
		line, _ := charmap.CodePage437.NewDecoder().Bytes(row)
		sb.Write(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
