package domain

import "katering/internal/errors"

// Coordinate is a latitude/longitude pair. Both parts are required together;
// a partial pair never makes it past NewCoordinate.
type Coordinate struct {
	Lat float64
	Lng float64
}

func NewCoordinate(lat, lng float64) (Coordinate, error) {
	if lat < -90 || lat > 90 {
		return Coordinate{}, errors.NewValidationError("latitude out of range", errors.ValidationDetail{
			Field:   "lat",
			Message: "latitude must be between -90 and 90",
		})
	}
	if lng < -180 || lng > 180 {
		return Coordinate{}, errors.NewValidationError("longitude out of range", errors.ValidationDetail{
			Field:   "lng",
			Message: "longitude must be between -180 and 180",
		})
	}
	return Coordinate{Lat: lat, Lng: lng}, nil
}
