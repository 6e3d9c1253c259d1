package wad

import "github.com/pkg/errors"

// Sprites are pictures with a special naming convention so they can be
// recognized by R_InitSprites. The base name is NNNNFx or NNNNFxFx, with x
// indicating the rotation, x = 0, 1-8. A sprite is a picture that is assumed
// to represent a 3D object and may have multiple rotations pre drawn.
// Horizontal flipping is used to save space, thus NNNNF2F8 defines a
// mirrored picture. Some sprites will only have one picture used for all
// views: NNNNF0
type Sprite []SpriteFrame

// SpriteFrame holds the pictures of one frame for the eight rotations.
type SpriteFrame [8]SpriteFrameDir

type SpriteFrameDir struct {
	Name      string // Lump name, empty if the rotation is missing
	Picture   *Picture
	IsFlipped bool
}

// maxSpriteFrames is the number of frame letters, A to ].
const maxSpriteFrames = 29

// Sprites decodes every picture between S_START and S_END and groups them by
// their four letter sprite name.
func (a *Archive) Sprites() (map[string]*Sprite, error) {
	if _, ok := a.Lump("S_START"); !ok {
		return nil, errors.Wrap(ErrMissingLump, "S_START")
	}
	sprites := make(map[string]*Sprite)

	// For each sprite picture lump
	for _, lump := range a.Block("S_START", "S_END") {
		if len(lump.Name) != 6 && len(lump.Name) != 8 {
			logger.Debug().Str("lump", lump.Name).Msg("skipping sprite with bad name")
			continue
		}
		picture, err := DecodePicture(lump.Data)
		if err != nil {
			return nil, errors.Wrapf(err, "sprite %q", lump.Name)
		}

		spriteName := lump.Name[:4]
		sprite, ok := sprites[spriteName]
		if !ok {
			sprite = new(Sprite)
			sprites[spriteName] = sprite
		}
		if !sprite.install(lump.Name, lump.Name[4], lump.Name[5], picture, false) {
			logger.Debug().Str("lump", lump.Name).Msg("skipping sprite with bad frame")
			continue
		}
		if len(lump.Name) == 8 && !sprite.install(lump.Name, lump.Name[6], lump.Name[7], picture, true) {
			logger.Debug().Str("lump", lump.Name).Msg("skipping bad mirrored frame")
		}
	}
	logger.Debug().Int("sprites", len(sprites)).Msg("read sprites")
	return sprites, nil
}

// install places picture at the given frame letter and rotation digit,
// growing the sprite as needed. Rotation '0' fills all eight directions.
func (s *Sprite) install(name string, frameChar, rotationChar byte, picture *Picture, flipped bool) bool {
	frame := int(frameChar) - 'A'
	rotation := int(rotationChar) - '0'
	if frame < 0 || frame >= maxSpriteFrames || rotation < 0 || rotation > 8 {
		return false
	}

	// Grow sprite slice to fit this frame
	for len(*s) <= frame {
		*s = append(*s, SpriteFrame{})
	}
	sf := &(*s)[frame]
	dir := SpriteFrameDir{Name: name, Picture: picture, IsFlipped: flipped}
	if rotation == 0 {
		for i := range sf {
			sf[i] = dir
		}
		return true
	}
	sf[rotation-1] = dir
	return true
}
