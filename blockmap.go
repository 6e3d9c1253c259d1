package wad

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

type binBlockMapHeader struct {
	OriginX, OriginY int16
	Columns, Rows    int16
}

const blockListEnd = 0xffff

// Blockmap is level data created from axis aligned bounding box of the map,
// a rectangular array of 128x128 unit blocks listing the linedefs crossing
// each one. Used to speed up collision detection by spatial subdivision in 2D.
type Blockmap struct {
	OriginX, OriginY    int16
	NumColumns, NumRows int
	Blocks              []Block
}

type Block struct {
	LineNums []uint16
}

// Block returns a pointer to the specified block from the block map
func (b *Blockmap) Block(x, y int) *Block {
	if x < 0 || y < 0 || x >= b.NumColumns || y >= b.NumRows {
		return nil
	}
	return &b.Blocks[y*b.NumColumns+x]
}

// DecodeBlockmap decodes a BLOCKMAP lump. An empty lump yields an empty
// blockmap.
func DecodeBlockmap(data []byte) (*Blockmap, error) {
	if len(data) == 0 {
		return &Blockmap{}, nil
	}

	// Read header
	var header binBlockMapHeader
	if err := readFixed("BLOCKMAP", data, &header); err != nil {
		return nil, err
	}
	if header.Columns < 0 || header.Rows < 0 {
		return nil, errors.Wrapf(ErrMalformedLevelBlock, "BLOCKMAP: %dx%d blocks", header.Columns, header.Rows)
	}
	blockMap := &Blockmap{
		OriginX:    header.OriginX,
		OriginY:    header.OriginY,
		NumColumns: int(header.Columns),
		NumRows:    int(header.Rows),
	}

	// Read offsets - byte offsets from the start of the lump
	numBlocks := blockMap.NumColumns * blockMap.NumRows
	table := data[binary.Size(header):]
	if len(table) < 2*numBlocks {
		return nil, errors.Wrapf(ErrTruncatedRecord, "BLOCKMAP: offset table of %d blocks", numBlocks)
	}

	// Populate block lists
	blockMap.Blocks = make([]Block, numBlocks)
	for i := range numBlocks {
		pos := int(binary.LittleEndian.Uint16(table[2*i:]))
		if pos+2 > len(data) {
			return nil, errors.Wrapf(ErrOutOfBounds, "BLOCKMAP: block %d list at byte %d", i, pos)
		}
		if first := binary.LittleEndian.Uint16(data[pos:]); first != 0 {
			return nil, errors.Wrapf(ErrMalformedLevelBlock, "BLOCKMAP: block %d list starts with %d", i, first)
		}
		lineNums := make([]uint16, 0)
		for pos += 2; ; pos += 2 {
			if pos+2 > len(data) {
				return nil, errors.Wrapf(ErrTruncatedRecord, "BLOCKMAP: block %d list is not terminated", i)
			}
			n := binary.LittleEndian.Uint16(data[pos:])
			if n == blockListEnd {
				break
			}
			lineNums = append(lineNums, n)
		}
		blockMap.Blocks[i] = Block{LineNums: lineNums}
	}
	logger.Debug().Int("blocks", len(blockMap.Blocks)).Msg("read blockmap")

	return blockMap, nil
}
