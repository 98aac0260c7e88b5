package application

import "fmt"

// Coordinates is the monitored geographic point, fixed at configuration time.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func NewCoordinates(lat, long float64) (Coordinates, error) {
	if lat < -90 || lat > 90 {
		return Coordinates{}, fmt.Errorf("latitude %v is out of range [-90, 90]", lat)
	}
	if long < -180 || long > 180 {
		return Coordinates{}, fmt.Errorf("longitude %v is out of range [-180, 180]", long)
	}

	return Coordinates{Latitude: lat, Longitude: long}, nil
}
