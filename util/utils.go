package util

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/twpayne/go-polyline"
)

const earthRadiusMeters = 6371000.0

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Coordinate represents a latitude/longitude pair.
type Coordinate struct {
	Lat float64
	Lon float64
}

// HaversineMeters returns the great-circle distance between two points in meters.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// DecodePolyLines decodes a Google encoded polyline (precision 1e5) into
// coordinate pairs. Clients batch buffered GPS fixes in this format.
func DecodePolyLines(shape string) ([]Coordinate, error) {
	decoded, _, err := polyline.DecodeCoords([]byte(shape))
	if err != nil {
		log.Println("error decoding polyline: ", err)
		return nil, fmt.Errorf("failed to decode polyline %w", err)
	}
	coords := make([]Coordinate, 0, len(decoded))
	for _, pair := range decoded {
		if len(pair) != 2 {
			return nil, fmt.Errorf("malformed coordinate pair in polyline")
		}
		coords = append(coords, Coordinate{Lat: pair[0], Lon: pair[1]})
	}
	return coords, nil
}
