package shipping

import (
	"database/sql"

	"go.uber.org/zap"

	"katering/internal/config"
	"katering/internal/shipping/repository"
	"katering/internal/shipping/routing"
)

// Module bundles the shipping components so both the HTTP layer and the
// pesanan workflow can share one resolver, fee calculator and history log.
type Module struct {
	Resolver   *Resolver
	Fees       FeeCalculator
	History    *HistoryRecorder
	Controller *Controller
}

func NewModule(db *sql.DB, cfg config.ShippingConfig, logger *zap.Logger) *Module {
	client := routing.NewClient(cfg)
	resolver := NewResolver(cfg, client, logger)
	fees := NewFeeCalculator(cfg)
	historyRepo := repository.NewMySQLHistoryRepository(db)
	history := NewHistoryRecorder(historyRepo, logger)

	return &Module{
		Resolver:   resolver,
		Fees:       fees,
		History:    history,
		Controller: NewController(resolver, fees, history, logger),
	}
}
