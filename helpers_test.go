package wad

import (
	"bytes"
	"encoding/binary"
)

type testLump struct {
	name string
	data []byte
}

// buildWAD lays out lump data after the header, followed by the directory.
func buildWAD(magic string, lumps ...testLump) []byte {
	var body bytes.Buffer
	dir := make([]binLumpInfo, len(lumps))
	for i, l := range lumps {
		dir[i] = binLumpInfo{
			Filepos: int32(headerSize + body.Len()),
			Size:    int32(len(l.data)),
			Name:    EncodeName(l.name),
		}
		body.Write(l.data)
	}

	var buf bytes.Buffer
	buf.WriteString(magic)
	binary.Write(&buf, binary.LittleEndian, int32(len(lumps)))
	binary.Write(&buf, binary.LittleEndian, int32(headerSize+body.Len()))
	buf.Write(body.Bytes())
	binary.Write(&buf, binary.LittleEndian, dir)
	return buf.Bytes()
}

// le encodes values little-endian, one after another.
func le(values ...any) []byte {
	var buf bytes.Buffer
	for _, v := range values {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			panic(err)
		}
	}
	return buf.Bytes()
}

// levelBlock returns a marker followed by the ten level lumps, with data
// taken from the map by lump name.
func levelBlock(name string, data map[string][]byte) []testLump {
	lumps := []testLump{{name: name}}
	for _, n := range LevelLumpNames {
		lumps = append(lumps, testLump{name: n, data: data[n]})
	}
	return lumps
}

type testPost struct {
	top    byte
	pixels []byte
}

// buildPicture encodes a picture lump with one post list per column.
func buildPicture(width, height int, columns [][]testPost) []byte {
	var posts bytes.Buffer
	offsets := make([]uint32, width)
	start := 8 + 4*width
	for x := range width {
		offsets[x] = uint32(start + posts.Len())
		if x < len(columns) {
			for _, p := range columns[x] {
				posts.WriteByte(p.top)
				posts.WriteByte(byte(len(p.pixels)))
				posts.WriteByte(0)
				posts.Write(p.pixels)
				posts.WriteByte(0)
			}
		}
		posts.WriteByte(postEnd)
	}
	return append(le(int16(width), int16(height), int16(0), int16(0), offsets), posts.Bytes()...)
}

// solidPicture is a fully opaque picture filled with c.
func solidPicture(width, height int, c byte) []byte {
	columns := make([][]testPost, width)
	for x := range columns {
		columns[x] = []testPost{{top: 0, pixels: bytes.Repeat([]byte{c}, height)}}
	}
	return buildPicture(width, height, columns)
}

type testTexture struct {
	name          string
	width, height int16
	patches       []binPatch
}

// buildTextures encodes a TEXTURE1 lump.
func buildTextures(textures ...testTexture) []byte {
	var body bytes.Buffer
	offsets := make([]int32, len(textures))
	start := 4 + 4*len(textures)
	for i, t := range textures {
		offsets[i] = int32(start + body.Len())
		body.Write(le(binTextureHeader{
			TextureName: EncodeName(t.name),
			Width:       t.width,
			Height:      t.height,
			NumPatches:  int16(len(t.patches)),
		}, t.patches))
	}
	return append(le(int32(len(textures)), offsets), body.Bytes()...)
}

// buildPatchNames encodes a PNAMES lump.
func buildPatchNames(names ...string) []byte {
	encoded := make([]String8, len(names))
	for i, n := range names {
		encoded[i] = EncodeName(n)
	}
	return le(int32(len(names)), encoded)
}
