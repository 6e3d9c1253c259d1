package wad

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// decodeArray decodes data as a tightly packed array of fixed-size
// little-endian B records and converts each one with conv.
func decodeArray[B, T any](kind string, data []byte, conv func(B) (T, error)) ([]T, error) {
	var zero B
	size := binary.Size(zero)
	if len(data)%size != 0 {
		return nil, errors.Wrapf(ErrTruncatedRecord, "%s: %d bytes is not a multiple of %d", kind, len(data), size)
	}

	// Read lump
	count := len(data) / size
	raw := make([]B, count)
	if count > 0 {
		if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, raw); err != nil {
			return nil, errors.Wrap(err, kind)
		}
	}

	// Translate to canonical
	out := make([]T, count)
	for i, r := range raw {
		t, err := conv(r)
		if err != nil {
			return nil, errors.Wrapf(err, "%s record %d", kind, i)
		}
		out[i] = t
	}
	return out, nil
}

// readFixed decodes a single fixed-size value from the start of data. Extra
// trailing bytes are ignored.
func readFixed[T any](kind string, data []byte, v *T) error {
	if size := binary.Size(v); len(data) < size {
		return errors.Wrapf(ErrTruncatedRecord, "%s: need %d bytes, have %d", kind, size, len(data))
	}
	return errors.Wrap(binary.Read(bytes.NewReader(data), binary.LittleEndian, v), kind)
}

// inBounds reports whether [off, off+n) lies inside a buffer of length limit.
func inBounds[T constraints.Integer](off, n T, limit int) bool {
	o, l := int64(off), int64(n)
	return o >= 0 && l >= 0 && o+l <= int64(limit)
}

// degreesToRadians converts an angle in degrees to radians.
func degreesToRadians[T constraints.Integer | constraints.Float](n T) float64 {
	return float64(n) * (math.Pi / 180)
}

const halfScale = 1 << 15

// bamToRadians converts a binary angle measurement, where the full circle is
// -32768 to 32767, into radians in [0, 2π).
func bamToRadians[T constraints.Signed](n T) float64 {
	r := float64(n) * math.Pi / halfScale
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}
