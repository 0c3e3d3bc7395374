package measure

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinates is a WGS-84 latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// String prints both axes with five decimals, e.g. "52.52000°, 13.40500°".
func (c Coordinates) String() string {
	return fmt.Sprintf("%.5f°, %.5f°", c.Lat, c.Lon)
}

// ParseCoordinates reads "lat,lon".
func ParseCoordinates(s string) (Coordinates, error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinates{}, fmt.Errorf("coordinates %q: expected lat,lon", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("coordinates %q: latitude: %w", s, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("coordinates %q: longitude: %w", s, err)
	}
	if lat < -90 || lat > 90 {
		return Coordinates{}, fmt.Errorf("coordinates %q: latitude out of range", s)
	}
	if lon < -180 || lon > 180 {
		return Coordinates{}, fmt.Errorf("coordinates %q: longitude out of range", s)
	}
	return Coordinates{Lat: lat, Lon: lon}, nil
}
