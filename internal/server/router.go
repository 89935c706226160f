package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"katering/internal/api"
	"katering/internal/auth"
	"katering/internal/menu"
	"katering/internal/metrics"
	pesanancontroller "katering/internal/pesanan/controller"
	"katering/internal/shipping"
)

type RouterDeps struct {
	Auth     *auth.Module
	Menu     *menu.Module
	Pesanan  *pesanancontroller.Controller
	Shipping *shipping.Module
	Metrics  *metrics.ServerMetrics
	Logger   *zap.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(deps.Metrics.Middleware)
	r.Use(requestLogger(deps.Logger))

	r.Get("/", handleIndex(deps.Logger))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	uploadsDir := http.Dir(deps.Menu.Uploader.Dir())
	r.Handle("/uploads/menu/*", http.StripPrefix("/uploads/menu/", http.FileServer(uploadsDir)))

	mw := deps.Auth.Middleware

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", deps.Auth.Controller.HandleRegister)
		r.Post("/login", deps.Auth.Controller.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireAdmin)
			r.Get("/users", deps.Auth.Controller.HandleListAll)
			r.Get("/users/pending", deps.Auth.Controller.HandleListPending)
			r.Patch("/users/{id}/status", deps.Auth.Controller.HandleUpdateStatus)
			r.Patch("/users/{id}/role", deps.Auth.Controller.HandleUpdateRole)
			r.Post("/admin", deps.Auth.Controller.HandleCreateAdmin)
		})
	})

	r.Route("/api/menu", func(r chi.Router) {
		r.Get("/", deps.Menu.Controller.HandleList)
		r.Get("/{id}", deps.Menu.Controller.HandleGet)

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireAdmin)
			r.Post("/", deps.Menu.Controller.HandleCreate)
			r.Put("/{id}", deps.Menu.Controller.HandleUpdate)
			r.Delete("/{id}", deps.Menu.Controller.HandleDelete)
		})
	})

	r.Route("/api/pesanan", func(r chi.Router) {
		r.Post("/", deps.Pesanan.HandleCreate)
		r.Get("/user/{user_id}", deps.Pesanan.HandleListByUser)
		r.Get("/{id}", deps.Pesanan.HandleDetail)

		// claims are optional here: only the completed target needs them
		r.With(mw.OptionalAuth).Patch("/{id}/status", deps.Pesanan.HandleUpdateStatus)

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireAdmin)
			r.Get("/", deps.Pesanan.HandleListAll)
			r.Get("/statistics", deps.Pesanan.HandleStatistics)
		})
	})

	r.Route("/api/ongkir", func(r chi.Router) {
		r.Post("/calculate", deps.Shipping.Controller.HandleCalculate)
		r.Get("/cities", deps.Shipping.Controller.HandleCities)
		r.Get("/info", deps.Shipping.Controller.HandleInfo)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("elapsed", time.Since(start)),
			)
		})
	}
}

func handleIndex(logger *zap.Logger) http.HandlerFunc {
	index := map[string]interface{}{
		"name": "Katering API",
		"endpoints": map[string]string{
			"auth":    "/api/auth",
			"menu":    "/api/menu",
			"pesanan": "/api/pesanan",
			"ongkir":  "/api/ongkir",
			"metrics": "/metrics",
		},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		api.WriteJSON(w, logger, http.StatusOK, index)
	}
}
