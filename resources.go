package wad

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// lump returns the named lump or an ErrMissingLump error.
func (a *Archive) lump(name string) (Lump, error) {
	lump, ok := a.Lump(name)
	if !ok {
		return Lump{}, errors.Wrapf(ErrMissingLump, "%q", name)
	}
	return lump, nil
}

// Playpal decodes the PLAYPAL lump.
func (a *Archive) Playpal() (*Playpal, error) {
	lump, err := a.lump("PLAYPAL")
	if err != nil {
		return nil, err
	}
	return DecodePlaypal(lump.Data)
}

// ColorMaps decodes the COLORMAP lump.
func (a *Archive) ColorMaps() (*ColorMaps, error) {
	lump, err := a.lump("COLORMAP")
	if err != nil {
		return nil, err
	}
	return DecodeColorMaps(lump.Data)
}

// Endoom decodes the ENDOOM lump.
func (a *Archive) Endoom() (*Endoom, error) {
	lump, err := a.lump("ENDOOM")
	if err != nil {
		return nil, err
	}
	return DecodeEndoom(lump.Data)
}

// PatchNames decodes the PNAMES lump.
func (a *Archive) PatchNames() (PatchNames, error) {
	lump, err := a.lump("PNAMES")
	if err != nil {
		return nil, err
	}
	return DecodePatchNames(lump.Data)
}

// Textures decodes TEXTURE1 to TEXTURE9, in that order, skipping absent
// lumps. At least one must exist.
func (a *Archive) Textures() ([]Texture, error) {
	textures := make([]Texture, 0)
	found := false
	for i := 1; i < 10; i++ {
		name := fmt.Sprintf("TEXTURE%v", i)
		lump, ok := a.Lump(name)
		if !ok {
			continue
		}
		found = true
		t, err := DecodeTextures(lump.Data)
		if err != nil {
			return nil, errors.Wrap(err, name)
		}
		logger.Debug().Str("lump", name).Int("textures", len(t)).Msg("read textures")
		textures = append(textures, t...)
	}
	if !found {
		return nil, errors.Wrap(ErrMissingLump, "TEXTURE1")
	}
	return textures, nil
}

// Texture returns the texture named name, ignoring case.
func (a *Archive) Texture(name string) (*Texture, error) {
	textures, err := a.Textures()
	if err != nil {
		return nil, err
	}
	for i := range textures {
		if strings.EqualFold(textures[i].Name, name) {
			return &textures[i], nil
		}
	}
	return nil, errors.Wrapf(ErrMissingLump, "texture %q", name)
}

// TextureRaster composes the named texture from the archive's patches.
func (a *Archive) TextureRaster(name string) (*Raster, error) {
	t, err := a.Texture(name)
	if err != nil {
		return nil, err
	}
	names, err := a.PatchNames()
	if err != nil {
		return nil, err
	}
	return t.Raster(names, a.Lump)
}

// Picture decodes the named picture lump.
func (a *Archive) Picture(name string) (*Picture, error) {
	lump, err := a.lump(name)
	if err != nil {
		return nil, err
	}
	pic, err := DecodePicture(lump.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "picture %q", name)
	}
	return pic, nil
}

// Flat decodes the named flat lump.
func (a *Archive) Flat(name string) (*Flat, error) {
	lump, err := a.lump(name)
	if err != nil {
		return nil, err
	}
	flat, err := DecodeFlat(lump.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "flat %q", name)
	}
	flat.Name = name
	return flat, nil
}

// Flats decodes every flat between F_START and F_END. Nested marker lumps
// such as F1_START are skipped.
func (a *Archive) Flats() ([]*Flat, error) {
	if _, ok := a.Lump("F_START"); !ok {
		return nil, errors.Wrap(ErrMissingLump, "F_START")
	}
	flats := make([]*Flat, 0)
	for _, lump := range a.Block("F_START", "F_END") {
		flat, err := DecodeFlat(lump.Data)
		if err != nil {
			return nil, errors.Wrapf(err, "flat %q", lump.Name)
		}
		flat.Name = lump.Name
		flat.Index = len(flats)
		flats = append(flats, flat)
	}
	logger.Debug().Int("flats", len(flats)).Msg("read flats")
	return flats, nil
}

// Sound decodes the named DMX sound lump.
func (a *Archive) Sound(name string) (*Sound, error) {
	lump, err := a.lump(name)
	if err != nil {
		return nil, err
	}
	sound, err := DecodeSound(lump.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "sound %q", name)
	}
	return sound, nil
}
