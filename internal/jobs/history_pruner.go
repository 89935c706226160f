package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"katering/internal/config"
)

type HistoryStore interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// HistoryPruner deletes ongkir_history rows older than the configured
// retention on a cron schedule.
type HistoryPruner struct {
	store     HistoryStore
	retention time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewHistoryPruner(store HistoryStore, cfg config.HistoryConfig, logger *zap.Logger) *HistoryPruner {
	return &HistoryPruner{
		store:     store,
		retention: time.Duration(cfg.RetentionDays) * 24 * time.Hour,
		schedule:  cfg.PruneSchedule,
		cron:      cron.New(),
		logger:    logger,
	}
}

func (p *HistoryPruner) Start() error {
	if _, err := p.cron.AddFunc(p.schedule, p.prune); err != nil {
		return err
	}
	p.cron.Start()
	p.logger.Info("history pruner started",
		zap.String("schedule", p.schedule),
		zap.Duration("retention", p.retention),
	)
	return nil
}

// Stop waits for an in-flight prune to finish.
func (p *HistoryPruner) Stop() {
	<-p.cron.Stop().Done()
}

func (p *HistoryPruner) prune() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-p.retention)
	deleted, err := p.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		p.logger.Error("history prune failed", zap.Error(err))
		return
	}

	p.logger.Info("history pruned",
		zap.Int64("deleted", deleted),
		zap.Time("cutoff", cutoff),
	)
}
