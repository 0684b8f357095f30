package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/infrastructure/http/handlers"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	AuthHandler      *handlers.AuthHandler
	ContractsHandler *handlers.ContractsHandler
	TemplatesHandler *handlers.TemplatesHandler
	HealthHandler    *handlers.HealthHandler
	RequireJWT       func(http.Handler) http.Handler // JWT auth for owner routes
	Log              zerolog.Logger
	Secure           func(http.Handler) http.Handler
	CORS             func(http.Handler) http.Handler
	IPRateLimit      func(http.Handler) http.Handler
	UserRateLimit    func(http.Handler) http.Handler
	Metrics          bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	r.Use(chimid.AllowContentType("application/json"))
	r.Use(chimid.SetHeader("Content-Type", "application/json"))
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/refresh", cfg.AuthHandler.Refresh)
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	r.Route("/contracts", func(r chi.Router) {
		// Signing is public: parties are not account holders, they
		// identify themselves by the email named in the contract.
		r.Post("/{id}/sign", cfg.ContractsHandler.Sign)

		r.Group(func(r chi.Router) {
			if cfg.RequireJWT != nil {
				r.Use(cfg.RequireJWT)
			}
			if cfg.UserRateLimit != nil {
				r.Use(cfg.UserRateLimit)
			}
			r.Post("/", cfg.ContractsHandler.Create)
			r.Get("/", cfg.ContractsHandler.List)
			r.Get("/stats", cfg.ContractsHandler.Stats)
			r.Get("/{id}", cfg.ContractsHandler.Get)
			r.Put("/{id}", cfg.ContractsHandler.Update)
			r.Delete("/{id}", cfg.ContractsHandler.Delete)
			r.Post("/{id}/generate-content", cfg.ContractsHandler.GenerateContent)
			r.Post("/{id}/send", cfg.ContractsHandler.SendForSignature)
			r.Post("/{id}/cancel", cfg.ContractsHandler.Cancel)
		})
	})

	if cfg.TemplatesHandler != nil {
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", cfg.TemplatesHandler.List)
			r.Get("/{id}", cfg.TemplatesHandler.Get)
		})
	}

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
