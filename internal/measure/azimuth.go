package measure

import "math"

// Azimuth is a compass bearing in degrees. It is not range checked; Cardinal
// wraps it onto [0, 360).
type Azimuth float64

func (a Azimuth) Format(precision int) string {
	return formatFloat(float64(a), precision) + "°"
}

func (a Azimuth) String() string { return a.Format(DefaultPrecision) }

// CardinalDirection is one of the eight principal compass points.
type CardinalDirection uint8

const (
	North CardinalDirection = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
)

var cardinalNames = [...]struct {
	name   string
	symbol string
}{
	North:     {"North", "N"},
	Northeast: {"Northeast", "NE"},
	East:      {"East", "E"},
	Southeast: {"Southeast", "SE"},
	South:     {"South", "S"},
	Southwest: {"Southwest", "SW"},
	West:      {"West", "W"},
	Northwest: {"Northwest", "NW"},
}

func (d CardinalDirection) String() string { return cardinalNames[d].name }

// Symbol returns the abbreviation, e.g. "SW".
func (d CardinalDirection) Symbol() string { return cardinalNames[d].symbol }

// cardinalBounds holds the inclusive upper bound of each 45° bucket.
var cardinalBounds = [...]struct {
	upper float64
	dir   CardinalDirection
}{
	{22.5, North},
	{67.5, Northeast},
	{112.5, East},
	{157.5, Southeast},
	{202.5, South},
	{247.5, Southwest},
	{292.5, West},
	{337.5, Northwest},
}

// Cardinal buckets the bearing into a compass point. Bucket edges belong to
// the lower point (22.5° is North) and everything past 337.5° wraps to North.
func (a Azimuth) Cardinal() CardinalDirection {
	deg := math.Mod(float64(a), 360)
	if deg < 0 {
		deg += 360
	}
	for _, b := range cardinalBounds {
		if deg <= b.upper {
			return b.dir
		}
	}
	return North
}
