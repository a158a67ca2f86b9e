package hexcodec

// Plane selects which byte of a row a token line holds.
type Plane uint8

const (
	// Low covers columns 0-7.
	Low Plane = iota
	// High covers columns 8-15 of a wide glyph.
	High
)

// PlaneWidth is the number of columns one token encodes.
const PlaneWidth = 8

// Offset returns the first grid column of p.
func (p Plane) Offset() int { return int(p) * PlaneWidth }

func (p Plane) String() string {
	switch p {
	case Low:
		return "low"
	case High:
		return "high"
	default:
		return "unknown"
	}
}
