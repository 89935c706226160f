package usecase

import (
	"context"

	"go.uber.org/zap"

	"katering/internal/auth"
	"katering/internal/domain"
	apperrors "katering/internal/errors"
)

type PesananReader interface {
	FindByID(ctx context.Context, id uint) (*domain.Pesanan, error)
}

type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id uint, status domain.PesananStatus) error
}

// UpdateStatusUseCase guards and applies order status changes. The
// "completed" target is customer-confirmed delivery: only the owning client,
// identified by a verified bearer token, may set it. Other targets carry no
// extra authorization here; staff-only rules live in routing middleware.
type UpdateStatusUseCase struct {
	reader  PesananReader
	updater StatusUpdater
	logger  *zap.Logger
}

func NewUpdateStatusUseCase(reader PesananReader, updater StatusUpdater, logger *zap.Logger) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		reader:  reader,
		updater: updater,
		logger:  logger,
	}
}

func (uc *UpdateStatusUseCase) UpdateStatus(ctx context.Context, pesananID uint, target domain.PesananStatus, claims *auth.Claims) error {
	if !target.Valid() {
		return apperrors.NewValidationError("Status tidak valid", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of pending, processing, shipped, completed, cancelled",
		})
	}

	pesanan, err := uc.reader.FindByID(ctx, pesananID)
	if err != nil {
		return err
	}

	if target == domain.StatusCompleted {
		if claims == nil {
			return apperrors.NewUnauthorizedError("Token tidak ditemukan")
		}
		if claims.Role != domain.RoleClient || claims.UserID != pesanan.UserID {
			return apperrors.NewForbiddenError("Hanya pemilik pesanan yang dapat menyelesaikan pesanan")
		}
	}

	if !domain.CanTransition(pesanan.Status, target) {
		return apperrors.NewValidationError("Status tidak valid", apperrors.ValidationDetail{
			Field:   "status",
			Message: "transition not allowed",
		})
	}

	if err := uc.updater.UpdateStatus(ctx, pesananID, target); err != nil {
		return err
	}

	uc.logger.Info("pesanan status updated",
		zap.Uint("pesananId", pesananID),
		zap.String("from", string(pesanan.Status)),
		zap.String("to", string(target)),
	)

	return nil
}
