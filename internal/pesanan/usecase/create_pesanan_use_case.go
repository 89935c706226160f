package usecase

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"katering/internal/domain"
	"katering/internal/dto"
	apperrors "katering/internal/errors"
	"katering/internal/pesanan/pricing"
	"katering/internal/shipping"
)

type DistanceResolver interface {
	Resolve(ctx context.Context, input shipping.DistanceInput) (*shipping.DistanceResult, error)
}

type FeeCalculator interface {
	Fee(km float64) int64
}

type PesananWriter interface {
	CreatePesanan(ctx context.Context, header domain.Pesanan, items []domain.DetailPesanan) (uint, error)
}

type HistoryRecorder interface {
	Record(record domain.OngkirHistory)
}

// CreatePesananUseCase composes the order-creation workflow: boundary
// validation, distance resolution, fee computation, pricing, then the atomic
// write. The routing call happens before the transaction opens so the store
// never waits on the network.
type CreatePesananUseCase struct {
	resolver DistanceResolver
	fees     FeeCalculator
	writer   PesananWriter
	history  HistoryRecorder
	logger   *zap.Logger
}

func NewCreatePesananUseCase(
	resolver DistanceResolver,
	fees FeeCalculator,
	writer PesananWriter,
	history HistoryRecorder,
	logger *zap.Logger,
) *CreatePesananUseCase {
	return &CreatePesananUseCase{
		resolver: resolver,
		fees:     fees,
		writer:   writer,
		history:  history,
		logger:   logger,
	}
}

func (uc *CreatePesananUseCase) Create(ctx context.Context, req dto.CreatePesananRequest) (*dto.CreatePesananResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	input, err := shipping.BuildDistanceInput(req.JarakKM, req.Origin, req.Destination)
	if err != nil {
		return nil, err
	}

	distance, err := uc.resolver.Resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	ongkir := uc.fees.Fee(distance.KM)

	items := lo.Map(req.Items, func(item dto.PesananItemRequest, _ int) pricing.Item {
		return pricing.Item{
			MenuID:      item.MenuID,
			Jumlah:      item.Jumlah,
			HargaSatuan: item.HargaSatuan,
		}
	})

	priced, err := pricing.PriceOrder(items, ongkir)
	if err != nil {
		return nil, err
	}

	km := distance.KM
	header := domain.Pesanan{
		UserID:           req.UserID,
		TanggalPesan:     req.TanggalPesan,
		WaktuPengiriman:  req.WaktuPengiriman,
		AlamatPengiriman: req.AlamatPengiriman,
		JarakKM:          &km,
		Ongkir:           ongkir,
		TotalHarga:       priced.TotalHarga,
		Catatan:          req.Catatan,
		Status:           domain.StatusPending,
	}

	details := lo.Map(priced.Items, func(item pricing.PricedItem, _ int) domain.DetailPesanan {
		return domain.DetailPesanan{
			MenuID:      item.MenuID,
			Jumlah:      item.Jumlah,
			HargaSatuan: item.HargaSatuan,
			Subtotal:    item.Subtotal,
		}
	})

	pesananID, err := uc.writer.CreatePesanan(ctx, header, details)
	if err != nil {
		return nil, err
	}

	uc.history.Record(domain.OngkirHistory{
		PesananID:   &pesananID,
		Origin:      input.Origin,
		Destination: input.Destination,
		JarakMeter:  distance.Meters,
		JarakKM:     distance.KM,
		DurasiDetik: distance.DurationSeconds,
		Ongkir:      ongkir,
		Provider:    string(distance.Provider),
	})

	return &dto.CreatePesananResponse{
		Message:    "Pesanan berhasil dibuat",
		PesananID:  pesananID,
		TotalHarga: priced.TotalHarga,
	}, nil
}

func validateCreateRequest(req dto.CreatePesananRequest) error {
	var details []apperrors.ValidationDetail

	if req.UserID == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if req.TanggalPesan == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "tanggal_pesan",
			Message: "tanggal_pesan is required",
		})
	}
	if req.WaktuPengiriman == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "waktu_pengiriman",
			Message: "waktu_pengiriman is required",
		})
	}
	if req.AlamatPengiriman == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "alamat_pengiriman",
			Message: "alamat_pengiriman is required",
		})
	}
	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}
