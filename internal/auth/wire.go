package auth

import (
	"database/sql"

	"go.uber.org/zap"

	"katering/internal/auth/controller"
	"katering/internal/auth/repository"
	"katering/internal/auth/service"
	"katering/internal/config"
)

// Module bundles the pieces the router and other modules need: the HTTP
// controller plus the middleware guarding protected routes.
type Module struct {
	Controller *controller.Controller
	Middleware *Middleware
	Tokens     *TokenManager
}

func NewModule(db *sql.DB, cfg config.AuthConfig, logger *zap.Logger) *Module {
	tokens := NewTokenManager(cfg)
	users := repository.NewMySQLUserRepository(db)
	svc := service.NewAuthService(users, tokens, cfg.BcryptCost, logger)

	return &Module{
		Controller: controller.NewController(svc, logger),
		Middleware: NewMiddleware(tokens, logger),
		Tokens:     tokens,
	}
}
