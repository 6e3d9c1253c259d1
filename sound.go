package wad

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

type binSoundHeader struct {
	Format     uint16
	SampleRate uint16
	Bytes      uint32 // Samples plus 32 pad bytes
}

const (
	dmxFormat = 3
	dmxPad    = 16
)

// Sound lumps in the WAD file are stored in the DMX format; which consists
// of a short header followed by raw 8-bit, monaural (PCM) unsigned data,
// typically at a sampling rate of 11025 Hz, although some sounds use
// 22050 Hz. Each sample is one byte (8 bits).
type Sound struct {
	SampleRate int
	Samples    []byte // Aliases the lump
}

// DecodeSound decodes a DMX sound lump.
func DecodeSound(data []byte) (*Sound, error) {
	var header binSoundHeader
	if err := readFixed("sound header", data, &header); err != nil {
		return nil, err
	}
	if header.Format != dmxFormat {
		return nil, errors.Wrapf(ErrUnrecognizedMagic, "sound format %d", header.Format)
	}
	if header.Bytes < 2*dmxPad {
		return nil, errors.Wrapf(ErrTruncatedRecord, "sound of %d bytes", header.Bytes)
	}
	start := binary.Size(header)
	if !inBounds(int64(start), int64(header.Bytes), len(data)) {
		return nil, errors.Wrapf(ErrOutOfBounds, "%d sound bytes in %d byte lump", header.Bytes, len(data))
	}
	samples := data[start+dmxPad : start+int(header.Bytes)-dmxPad]
	return &Sound{SampleRate: int(header.SampleRate), Samples: samples}, nil
}
