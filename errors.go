package wad

import "github.com/pkg/errors"

// Error kinds returned by the decoders. They are always wrapped with the name
// of the lump, level or texture that failed, so test for them with errors.Is.
var (
	ErrUnrecognizedMagic   = errors.New("unrecognized magic")
	ErrOutOfBounds         = errors.New("out of bounds")
	ErrInvalidEncoding     = errors.New("invalid name encoding")
	ErrTruncatedRecord     = errors.New("truncated record")
	ErrWrongSize           = errors.New("wrong size")
	ErrMalformedLevelBlock = errors.New("malformed level block")
	ErrMissingLump         = errors.New("missing lump")
)
