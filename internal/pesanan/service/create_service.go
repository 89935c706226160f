package service

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"katering/internal/domain"
	apperrors "katering/internal/errors"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type PesananRepository interface {
	InsertTx(ctx context.Context, tx *sql.Tx, p domain.Pesanan) (uint, error)
}

type DetailPesananRepository interface {
	InsertTx(ctx context.Context, tx *sql.Tx, item domain.DetailPesanan) (uint, error)
}

// CreateService owns the atomic write of one order: header row plus all line
// items in a single transaction. Distance resolution and pricing happen
// before this point, so no network call runs while the transaction is open.
type CreateService struct {
	db          TransactionManager
	pesananRepo PesananRepository
	detailRepo  DetailPesananRepository
	logger      *zap.Logger
}

func NewCreateService(
	db TransactionManager,
	pesananRepo PesananRepository,
	detailRepo DetailPesananRepository,
	logger *zap.Logger,
) *CreateService {
	return &CreateService{
		db:          db,
		pesananRepo: pesananRepo,
		detailRepo:  detailRepo,
		logger:      logger,
	}
}

// CreatePesanan inserts the header, then every item in input order. Any
// failure rolls the whole transaction back; partial writes are never
// observable.
func (s *CreateService) CreatePesanan(ctx context.Context, header domain.Pesanan, items []domain.DetailPesanan) (uint, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return 0, apperrors.NewInternalError("failed to begin transaction", err)
	}
	// Rollback on every exit path; after a successful commit it returns
	// ErrTxDone, which is not a failure.
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			s.logger.Error("rollback failed", zap.Error(err))
		}
	}()

	pesananID, err := s.pesananRepo.InsertTx(ctx, tx, header)
	if err != nil {
		s.logger.Error("failed to insert pesanan header", zap.Uint("userId", header.UserID), zap.Error(err))
		return 0, err
	}

	for _, item := range items {
		item.PesananID = pesananID
		if _, err := s.detailRepo.InsertTx(ctx, tx, item); err != nil {
			s.logger.Error("failed to insert detail pesanan",
				zap.Uint("pesananId", pesananID),
				zap.Uint("menuId", item.MenuID),
				zap.Error(err),
			)
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.Uint("pesananId", pesananID), zap.Error(err))
		return 0, apperrors.NewInternalError("failed to commit transaction", err)
	}

	s.logger.Info("pesanan created",
		zap.Uint("pesananId", pesananID),
		zap.Uint("userId", header.UserID),
		zap.Int("itemCount", len(items)),
		zap.Int64("totalHarga", header.TotalHarga),
	)

	return pesananID, nil
}
