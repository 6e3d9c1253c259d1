package wad

import (
	"bytes"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// NameLen is the fixed width of every name field in a WAD.
const NameLen = 8

// WAD eight-character string type. Null-terminated for short strings.
type String8 [NameLen]byte

// String converts String8 to string without validating it.
func (s String8) String() string {
	i := bytes.IndexByte(s[:], 0)
	if i == -1 {
		i = len(s)
	}
	return string(s[0:i])
}

// Decode returns the validated name held in s.
func (s String8) Decode() (string, error) {
	return DecodeName(s[:])
}

// EncodeName packs name into an 8-byte field, truncating longer names and
// padding shorter ones with zeros.
func EncodeName(name string) String8 {
	var s String8
	copy(s[:], name)
	return s
}

// DecodeName decodes an 8-byte name field. The name ends at the first zero
// byte, or spans all eight bytes when there is none.
func DecodeName(b []byte) (string, error) {
	if len(b) < NameLen {
		return "", errors.Wrapf(ErrTruncatedRecord, "name field of %d bytes", len(b))
	}
	b = b[:NameLen]
	if i := bytes.IndexByte(b, 0); i != -1 {
		b = b[:i]
	}
	if !utf8.Valid(b) {
		return "", errors.Wrapf(ErrInvalidEncoding, "name %q", b)
	}
	return string(b), nil
}
