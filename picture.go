package wad

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

type binPatchImageHeader struct {
	Width, Height, LeftOffset, TopOffset int16
}

const postEnd = 0xff

// The doom picture (image) format. Sometimes called a patch, but this code
// considers a patch to be a parent entity that makes up part of a texture,
// and points to a picture.
type Picture struct {
	Width, Height         int
	LeftOffset, TopOffset int // Allows soulspheres, weapons and keys to float
	Posts                 [][]Post
}

// Post is a vertical run of opaque pixels in a picture column. Pixels
// aliases the lump data.
type Post struct {
	TopDelta int // Row of the first pixel
	Pixels   []byte
}

// DecodePicture decodes a lump in picture format.
func DecodePicture(lump []byte) (*Picture, error) {

	// Read patch lump header
	var header binPatchImageHeader
	if err := readFixed("picture header", lump, &header); err != nil {
		return nil, err
	}
	if header.Width < 0 || header.Height < 0 {
		return nil, errors.Wrapf(ErrOutOfBounds, "picture size %dx%d", header.Width, header.Height)
	}
	pic := &Picture{
		Width:      int(header.Width),
		Height:     int(header.Height),
		LeftOffset: int(header.LeftOffset),
		TopOffset:  int(header.TopOffset),
		Posts:      make([][]Post, header.Width),
	}

	// Read column offsets
	offsets := lump[binary.Size(header):]
	if len(offsets) < 4*pic.Width {
		return nil, errors.Wrapf(ErrTruncatedRecord, "picture: offsets of %d columns", pic.Width)
	}

	// For each column offset, collect its posts
	for x := range pic.Width {
		offset := int64(binary.LittleEndian.Uint32(offsets[4*x:]))
		if offset >= int64(len(lump)) {
			return nil, errors.Wrapf(ErrOutOfBounds, "picture column %d at %d", x, offset)
		}
		posts, err := decodePosts(lump, int(offset))
		if err != nil {
			return nil, errors.Wrapf(err, "picture column %d", x)
		}
		pic.Posts[x] = posts
	}
	return pic, nil
}

func decodePosts(lump []byte, offset int) ([]Post, error) {
	posts := make([]Post, 0)
	for {
		if offset >= len(lump) {
			return nil, errors.Wrap(ErrOutOfBounds, "column is not terminated")
		}
		topDelta := int(lump[offset])
		if topDelta == postEnd {
			return posts, nil
		}
		// topdelta, length, padding, pixels, padding
		if offset+3 > len(lump) {
			return nil, errors.Wrapf(ErrOutOfBounds, "post header at %d", offset)
		}
		numPixels := int(lump[offset+1])
		start := offset + 3
		if start+numPixels+1 > len(lump) {
			return nil, errors.Wrapf(ErrOutOfBounds, "post of %d pixels at %d", numPixels, offset)
		}
		posts = append(posts, Post{TopDelta: topDelta, Pixels: lump[start : start+numPixels]})
		offset = start + numPixels + 1
	}
}

// ink calls fn for every pixel covered by a post, skipping rows below the
// picture's height.
func (p *Picture) ink(fn func(x, y int, c byte)) {
	for x, posts := range p.Posts {
		for _, post := range posts {
			for i, c := range post.Pixels {
				y := post.TopDelta + i
				if y >= p.Height {
					break
				}
				fn(x, y, c)
			}
		}
	}
}

// Raster expands the picture's posts into a dense raster. Rows not covered
// by any post stay Transparent.
func (p *Picture) Raster() *Raster {
	r := NewRaster(p.Width, p.Height)
	p.ink(func(x, y int, c byte) {
		r.Columns[x][y] = Pixel(c)
	})
	return r
}
