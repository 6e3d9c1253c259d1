package wad

type binSector struct {
	FloorHeight    int16
	CeilingHeight  int16
	FloorTexture   String8
	CeilingTexture String8
	LightLevel     int16
	Type           int16
	TagNum         int16
}

// Sector is an area of the map with a single floor and ceiling.
type Sector struct {
	FloorHeight        int16
	CeilingHeight      int16
	FloorTextureName   string
	CeilingTextureName string
	LightLevel         int16
	Type               SectorType
	TagNum             int16
}

type SectorType int16

const (
	TypeNormal          SectorType = iota
	TypeBlinkRandom                // 1  Light  Blink random
	TypeBlink05                    // 2  Light  Blink 0.5 second
	TypeBlink10                    // 3  Light  Blink 1.0 second
	TypeDamage20Blink05            // 4  Both   20% damage per second; light blink 0.5 second
	TypeDamage10                   // 5	 Damage 10% damage per second
	TypeUnused1                    // 6  Unused
	TypeDamage5                    // 7	 Damage 5% damage per second
	TypeOscillate                  // 8	 Light  Oscillates
	TypeSecret                     // 9	 Secret Player entering this sector gets credit for finding a secret
	TypeDoor30                     // 10 Door   30 seconds after level start, ceiling closes like a door
	TypeEnd                        // 11 End    20% damage ps. Level ends when player health drops below 11% & touching floor
	TypeBlink10Sync                // 12 Light  Blink 1.0 second, synchronized
	TypeBlink05Sync                // 13 Light  Blink 0.5 second, synchronized
	TypeDoor300                    // 14 Door   300 seconds after level start, ceiling opens like a door
	TypeUnused2                    // 15 Unused
	TypeDamage20                   // 16 Damage 20% damage per second
	TypeFlickerRandom              // 17 Light  Flickers randomly
)

// SkyFlatName is the ceiling flat that shows the sky instead.
const SkyFlatName = "F_SKY1"

// DecodeSectors decodes a SECTORS lump.
func DecodeSectors(data []byte) ([]Sector, error) {
	return decodeArray("SECTORS", data, func(s binSector) (Sector, error) {
		sector := Sector{
			FloorHeight:   s.FloorHeight,
			CeilingHeight: s.CeilingHeight,
			LightLevel:    s.LightLevel,
			Type:          SectorType(s.Type),
			TagNum:        s.TagNum,
		}
		var err error
		if sector.FloorTextureName, err = s.FloorTexture.Decode(); err != nil {
			return sector, err
		}
		sector.CeilingTextureName, err = s.CeilingTexture.Decode()
		return sector, err
	})
}

// Reject is the sector-to-sector visibility table of a level. A set bit
// means a monster in one sector can never see a player in the other.
type Reject struct {
	NumSectors int
	data       []byte
}

// DecodeReject wraps a REJECT lump for a level with numSectors sectors.
// Bits missing from a short lump read as clear, as the engine pads it.
func DecodeReject(data []byte, numSectors int) *Reject {
	return &Reject{NumSectors: numSectors, data: data}
}

// Rejected reports whether sight checks from sector from to sector to can
// be skipped.
func (r *Reject) Rejected(from, to int) bool {
	if from < 0 || to < 0 || from >= r.NumSectors || to >= r.NumSectors {
		return false
	}
	bit := from*r.NumSectors + to
	i := bit / 8
	if i >= len(r.data) {
		return false
	}
	return r.data[i]&(1<<(bit%8)) != 0
}
