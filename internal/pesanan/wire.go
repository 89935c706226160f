package pesanan

import (
	"database/sql"

	"go.uber.org/zap"

	"katering/internal/pesanan/controller"
	"katering/internal/pesanan/repository"
	"katering/internal/pesanan/service"
	"katering/internal/pesanan/usecase"
	"katering/internal/shipping"
)

func NewModule(db *sql.DB, shippingModule *shipping.Module, logger *zap.Logger) *controller.Controller {
	pesananRepo := repository.NewMySQLPesananRepository(db)
	detailRepo := repository.NewMySQLDetailPesananRepository(db)

	createSvc := service.NewCreateService(db, pesananRepo, detailRepo, logger)

	createUC := usecase.NewCreatePesananUseCase(
		shippingModule.Resolver,
		shippingModule.Fees,
		createSvc,
		shippingModule.History,
		logger,
	)
	statusUC := usecase.NewUpdateStatusUseCase(pesananRepo, pesananRepo, logger)
	queryUC := usecase.NewQueryUseCase(pesananRepo, detailRepo)

	return controller.NewController(createUC, statusUC, queryUC, logger)
}
