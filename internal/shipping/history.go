package shipping

import (
	"context"
	"time"

	"go.uber.org/zap"

	"katering/internal/domain"
)

type HistoryRepository interface {
	Insert(ctx context.Context, record domain.OngkirHistory) error
}

// HistoryRecorder appends calculation results to the audit log without ever
// blocking or failing the calculation that produced them. Each Record spawns
// a short-lived task; write failures flow through an error channel that is
// drained into the log.
type HistoryRecorder struct {
	repo   HistoryRepository
	logger *zap.Logger
	errs   chan error
}

func NewHistoryRecorder(repo HistoryRepository, logger *zap.Logger) *HistoryRecorder {
	r := &HistoryRecorder{
		repo:   repo,
		logger: logger,
		errs:   make(chan error, 16),
	}
	go r.drain()
	return r
}

func (r *HistoryRecorder) Record(record domain.OngkirHistory) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := r.repo.Insert(ctx, record); err != nil {
			select {
			case r.errs <- err:
			default:
				// channel full, drop; the write already failed and the log
				// is best-effort
			}
		}
	}()
}

func (r *HistoryRecorder) drain() {
	for err := range r.errs {
		r.logger.Warn("ongkir history write failed", zap.Error(err))
	}
}
