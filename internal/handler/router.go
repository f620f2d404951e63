package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/istanbulev/stationfinder/internal/metrics"
)

// Handlers groups the endpoints served by NewRouter
type Handlers struct {
	Stations *StationsHandler
	Nearest  *NearestHandler
	Refresh  *RefreshHandler
	Health   *HealthHandler
}

func NewRouter(h Handlers, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(AccessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", Adapt("/health", h.Health.HandleRequest))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/stations", Adapt(stationsRoute, h.Stations.HandleRequest))
		r.Post("/stations/refresh", Adapt(refreshRoute, h.Refresh.HandleRequest))
		r.Get("/nearest", Adapt(nearestRoute, h.Nearest.HandleRequest))
	})

	return r
}
