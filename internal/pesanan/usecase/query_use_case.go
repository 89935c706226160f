package usecase

import (
	"context"

	"github.com/samber/lo"

	"katering/internal/dto"
	"katering/internal/pesanan/repository"
)

type PesananQueries interface {
	FindByIDWithCustomer(ctx context.Context, id uint) (*repository.PesananSummary, error)
	FindByUser(ctx context.Context, userID uint) ([]repository.PesananSummary, error)
	FindAll(ctx context.Context) ([]repository.PesananSummary, error)
	Statistics(ctx context.Context) (*repository.Statistics, error)
}

type DetailQueries interface {
	FindByPesananID(ctx context.Context, pesananID uint) ([]repository.DetailWithMenu, error)
}

type QueryUseCase struct {
	pesanan PesananQueries
	details DetailQueries
}

func NewQueryUseCase(pesanan PesananQueries, details DetailQueries) *QueryUseCase {
	return &QueryUseCase{pesanan: pesanan, details: details}
}

func (uc *QueryUseCase) ListByUser(ctx context.Context, userID uint) (*dto.PesananListResponse, error) {
	rows, err := uc.pesanan.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.PesananListResponse{Pesanan: mapSummaries(rows)}, nil
}

func (uc *QueryUseCase) ListAll(ctx context.Context) (*dto.PesananListResponse, error) {
	rows, err := uc.pesanan.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.PesananListResponse{Pesanan: mapSummaries(rows)}, nil
}

func (uc *QueryUseCase) Detail(ctx context.Context, pesananID uint) (*dto.PesananDetailResponse, error) {
	header, err := uc.pesanan.FindByIDWithCustomer(ctx, pesananID)
	if err != nil {
		return nil, err
	}

	items, err := uc.details.FindByPesananID(ctx, pesananID)
	if err != nil {
		return nil, err
	}

	detail := lo.Map(items, func(d repository.DetailWithMenu, _ int) dto.DetailPesananDTO {
		return dto.DetailPesananDTO{
			ID:          d.ID,
			PesananID:   d.PesananID,
			MenuID:      d.MenuID,
			Jumlah:      d.Jumlah,
			HargaSatuan: d.HargaSatuan,
			Subtotal:    d.Subtotal,
			NamaMenu:    d.NamaMenu,
			Kategori:    d.Kategori,
		}
	})

	return &dto.PesananDetailResponse{
		Pesanan: mapSummary(*header),
		Detail:  detail,
	}, nil
}

func (uc *QueryUseCase) Statistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	stats, err := uc.pesanan.Statistics(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatisticsResponse{
		TotalPesanan:    stats.TotalPesanan,
		PesananPending:  stats.PesananPending,
		TotalPendapatan: stats.TotalPendapatan,
		PesananHariIni:  stats.PesananHariIni,
	}, nil
}

func mapSummaries(rows []repository.PesananSummary) []dto.PesananDTO {
	return lo.Map(rows, func(s repository.PesananSummary, _ int) dto.PesananDTO {
		return mapSummary(s)
	})
}

func mapSummary(s repository.PesananSummary) dto.PesananDTO {
	return dto.PesananDTO{
		ID:               s.ID,
		UserID:           s.UserID,
		TanggalPesan:     s.TanggalPesan,
		WaktuPengiriman:  s.WaktuPengiriman,
		AlamatPengiriman: s.AlamatPengiriman,
		JarakKM:          s.JarakKM,
		Ongkir:           s.Ongkir,
		TotalHarga:       s.TotalHarga,
		Catatan:          s.Catatan,
		Status:           string(s.Status),
		CreatedAt:        s.CreatedAt,
		JumlahItem:       s.JumlahItem,
		NamaCustomer:     s.NamaCustomer,
		NoTelepon:        s.NoTelepon,
		Email:            s.Email,
	}
}
