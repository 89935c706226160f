package shipping

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"katering/internal/config"
	"katering/internal/domain"
	apperrors "katering/internal/errors"
)

type Provider string

const (
	ProviderDirectInput Provider = "direct-input"
	ProviderRoutingAPI  Provider = "routing-api"
)

// DistanceInput is the validated variant input for distance resolution:
// either a direct distance in kilometers, or a destination coordinate with
// an optional origin.
type DistanceInput struct {
	DirectKM    *float64
	Origin      *domain.Coordinate
	Destination *domain.Coordinate
}

type DistanceResult struct {
	Meters          float64
	KM              float64
	DurationSeconds int64
	Provider        Provider
}

// RouteClient performs one synchronous routing round trip. No retries happen
// at this level; failures surface to the caller immediately.
type RouteClient interface {
	Route(ctx context.Context, origin, destination domain.Coordinate) (meters float64, durationSec float64, err error)
}

type Resolver struct {
	cfg    config.ShippingConfig
	client RouteClient
	logger *zap.Logger
}

func NewResolver(cfg config.ShippingConfig, client RouteClient, logger *zap.Logger) *Resolver {
	return &Resolver{
		cfg:    cfg,
		client: client,
		logger: logger,
	}
}

// Resolve turns a DistanceInput into a concrete distance. Direct input wins
// over coordinates. Kilometers are rounded to 3 decimal places, durations to
// whole seconds.
func (r *Resolver) Resolve(ctx context.Context, input DistanceInput) (*DistanceResult, error) {
	if input.DirectKM != nil {
		km := *input.DirectKM
		if km <= 0 {
			return nil, apperrors.NewValidationError("jarak tidak valid", apperrors.ValidationDetail{
				Field:   "jarak_km",
				Message: "distance must be greater than zero",
			})
		}
		return &DistanceResult{
			Meters:   km * 1000,
			KM:       roundKM(km),
			Provider: ProviderDirectInput,
		}, nil
	}

	if input.Destination == nil {
		return nil, apperrors.NewValidationError("jarak atau tujuan wajib diisi", apperrors.ValidationDetail{
			Field:   "destination",
			Message: "either jarak_km or a destination coordinate is required",
		})
	}

	origin, err := r.resolveOrigin(input)
	if err != nil {
		return nil, err
	}

	if r.cfg.ProviderAPIKey == "" {
		return nil, apperrors.NewNotConfiguredError("routing provider api key is not configured")
	}

	meters, durationSec, err := r.client.Route(ctx, origin, *input.Destination)
	if err != nil {
		return nil, err
	}

	result := &DistanceResult{
		Meters:          meters,
		KM:              roundKM(meters / 1000),
		DurationSeconds: int64(decimal.NewFromFloat(durationSec).Round(0).IntPart()),
		Provider:        ProviderRoutingAPI,
	}

	r.logger.Debug("distance resolved via routing api",
		zap.Float64("meters", result.Meters),
		zap.Float64("km", result.KM),
		zap.Int64("durationSeconds", result.DurationSeconds),
	)

	return result, nil
}

func (r *Resolver) resolveOrigin(input DistanceInput) (domain.Coordinate, error) {
	if input.Origin != nil {
		return *input.Origin, nil
	}
	if r.cfg.HasDefaultOrigin {
		return domain.Coordinate{Lat: r.cfg.DefaultOriginLat, Lng: r.cfg.DefaultOriginLng}, nil
	}
	return domain.Coordinate{}, apperrors.NewValidationError("titik asal tidak diketahui", apperrors.ValidationDetail{
		Field:   "origin",
		Message: "no origin supplied and no default origin configured",
	})
}

func roundKM(km float64) float64 {
	f, _ := decimal.NewFromFloat(km).Round(3).Float64()
	return f
}
