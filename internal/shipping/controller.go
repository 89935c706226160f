package shipping

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"katering/internal/api"
	"katering/internal/domain"
	"katering/internal/dto"
	apperrors "katering/internal/errors"
)

type Controller struct {
	resolver *Resolver
	fees     FeeCalculator
	history  *HistoryRecorder
	logger   *zap.Logger
}

func NewController(resolver *Resolver, fees FeeCalculator, history *HistoryRecorder, logger *zap.Logger) *Controller {
	return &Controller{
		resolver: resolver,
		fees:     fees,
		history:  history,
		logger:   logger,
	}
}

func (c *Controller) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateOngkirRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	input, err := BuildDistanceInput(req.JarakKM, req.Origin, req.Destination)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	result, err := c.resolver.Resolve(r.Context(), input)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	ongkir := c.fees.Fee(result.KM)

	c.history.Record(domain.OngkirHistory{
		Origin:      input.Origin,
		Destination: input.Destination,
		JarakMeter:  result.Meters,
		JarakKM:     result.KM,
		DurasiDetik: result.DurationSeconds,
		Ongkir:      ongkir,
		Provider:    string(result.Provider),
	})

	api.WriteJSON(w, c.logger, http.StatusOK, dto.CalculateOngkirResponse{
		JarakKM:     result.KM,
		JarakMeter:  result.Meters,
		DurasiDetik: result.DurationSeconds,
		Provider:    string(result.Provider),
		Ongkir:      ongkir,
		Deskripsi:   fmt.Sprintf("Tarif Rp %d/km, dibulatkan ke atas", c.fees.TariffPerKM()),
	})
}

func (c *Controller) HandleCities(w http.ResponseWriter, r *http.Request) {
	cities := []dto.CityDTO{
		{ID: 1, Name: "Bandung", Province: "Jawa Barat"},
		{ID: 2, Name: "Jakarta", Province: "DKI Jakarta"},
		{ID: 3, Name: "Surabaya", Province: "Jawa Timur"},
		{ID: 4, Name: "Cimahi", Province: "Jawa Barat"},
		{ID: 5, Name: "Bekasi", Province: "Jawa Barat"},
	}

	api.WriteJSON(w, c.logger, http.StatusOK, map[string][]dto.CityDTO{"cities": cities})
}

func (c *Controller) HandleInfo(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, c.logger, http.StatusOK, dto.OngkirInfoResponse{
		APIName:     "Katering Ongkir API",
		Description: "Menghitung ongkos kirim catering berdasarkan jarak atau koordinat tujuan",
		Usage:       "POST /api/ongkir/calculate dengan jarak_km atau destination {lat,lng}",
	})
}

// BuildDistanceInput validates the request variant once, at the boundary.
// Shared with the pesanan module so both entry points apply identical rules.
func BuildDistanceInput(jarakKM *float64, originDTO, destinationDTO *dto.CoordinateDTO) (DistanceInput, error) {
	origin, err := originDTO.ToDomain("origin")
	if err != nil {
		return DistanceInput{}, err
	}

	destination, err := destinationDTO.ToDomain("destination")
	if err != nil {
		return DistanceInput{}, err
	}

	return DistanceInput{
		DirectKM:    jarakKM,
		Origin:      origin,
		Destination: destination,
	}, nil
}
