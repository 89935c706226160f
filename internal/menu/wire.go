package menu

import (
	"database/sql"

	"go.uber.org/zap"

	"katering/internal/config"
	"katering/internal/menu/repository"
)

type Module struct {
	Controller *Controller
	Uploader   *Uploader
}

func NewModule(db *sql.DB, cfg config.UploadConfig, logger *zap.Logger) *Module {
	uploader := NewUploader(cfg)
	repo := repository.NewMySQLMenuRepository(db)

	return &Module{
		Controller: NewController(repo, uploader, logger),
		Uploader:   uploader,
	}
}
