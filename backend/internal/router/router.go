package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_mw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/boardkit-dev/boardkit/backend/internal/setup"
	mw "github.com/boardkit-dev/boardkit/shared/middleware"
	"github.com/boardkit-dev/boardkit/shared/middleware/metrics"
)

// New builds the chi router with all routes and middleware.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chi_mw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureCookies))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			// credential endpoints are brute-forceable, keep them slow per IP
			r.Use(mw.RateLimit(mw.NewRateLimiter(1, 3), mw.GetIP))
			r.Post("/signup", h.Signup)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMw.NeedAuth())
			r.Use(mw.RateLimit(mw.NewRateLimiter(deps.Config.Public.RateRPS, deps.Config.Public.RateBurst), mw.GetAccountIdentity))

			r.Get("/boards", h.GetBoards)
			r.Post("/boards", h.CreateBoard)
			r.Get("/boards/{board}", h.GetBoard)
			r.Post("/boards/{board}/mutations", h.Mutate)
		})
	})

	return r
}
