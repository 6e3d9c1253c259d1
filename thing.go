package wad

type binThing struct {
	X       int16
	Y       int16
	Angle   int16
	Type    int16
	Options uint16
}

// Thing is a spawn point for a player, monster, item or decoration.
type Thing struct {
	X, Y    int16
	Angle   int16 // Degrees, 0 is east
	Type    int16
	Options ThingOptions
}

// ThingOptions are the spawn flags of a thing.
type ThingOptions uint16

const (
	Skill1and2 ThingOptions = 1 << iota
	Skill3
	Skill4and5
	Ambush
	MultiplayerOnly
)

// Has reports whether all of the options in o are set.
func (t Thing) Has(o ThingOptions) bool {
	return t.Options&o == o
}

// Radians returns the facing angle in radians.
func (t Thing) Radians() float64 {
	return degreesToRadians(t.Angle)
}

// DecodeThings decodes a THINGS lump.
func DecodeThings(data []byte) ([]Thing, error) {
	return decodeArray("THINGS", data, func(t binThing) (Thing, error) {
		return Thing{
			X:       t.X,
			Y:       t.Y,
			Angle:   t.Angle,
			Type:    t.Type,
			Options: ThingOptions(t.Options),
		}, nil
	})
}
