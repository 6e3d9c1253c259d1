package wad

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger installs the logger used by the package. Logging is discarded
// until this is called.
func SetLogger(l zerolog.Logger) {
	logger = l
}
