package dto

import (
	"katering/internal/domain"
	apperrors "katering/internal/errors"
)

type CoordinateDTO struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// ToDomain validates the "both or neither" rule for coordinate pairs. The
// field name is only used to point error details at the right request field.
func (c *CoordinateDTO) ToDomain(field string) (*domain.Coordinate, error) {
	if c == nil {
		return nil, nil
	}
	if c.Lat == nil || c.Lng == nil {
		return nil, apperrors.NewValidationError("koordinat tidak lengkap", apperrors.ValidationDetail{
			Field:   field,
			Message: "both lat and lng are required",
		})
	}
	coord, err := domain.NewCoordinate(*c.Lat, *c.Lng)
	if err != nil {
		return nil, err
	}
	return &coord, nil
}

type CalculateOngkirRequest struct {
	JarakKM     *float64       `json:"jarak_km,omitempty"`
	Origin      *CoordinateDTO `json:"origin,omitempty"`
	Destination *CoordinateDTO `json:"destination,omitempty"`
}

type CalculateOngkirResponse struct {
	JarakKM     float64 `json:"jarak_km"`
	JarakMeter  float64 `json:"jarak_meter"`
	DurasiDetik int64   `json:"durasi_detik"`
	Provider    string  `json:"provider"`
	Ongkir      int64   `json:"ongkir"`
	Deskripsi   string  `json:"deskripsi"`
}

type CityDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Province string `json:"province"`
}

type OngkirInfoResponse struct {
	APIName     string `json:"api_name"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
}
