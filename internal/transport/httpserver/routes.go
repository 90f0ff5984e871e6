package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"table-reservations-go/internal/config"
	"table-reservations-go/internal/transport/httpserver/handler"
	"table-reservations-go/internal/transport/httpserver/middleware"
	"table-reservations-go/pkg/logger"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         86400,
	}))

	r.Get("/", handlers.Root)
	r.Get("/api/health", handlers.Health)

	r.Route("/tables", func(r chi.Router) {
		r.Get("/", handlers.ListTables)
		r.Post("/", handlers.CreateTable)
		r.Get("/available", handlers.ListAvailableTables)
		r.Get("/{id}", handlers.GetTable)
		r.Patch("/{id}", handlers.ToggleTable)
		r.Delete("/{id}", handlers.DeleteTable)
	})

	r.Route("/reservations", func(r chi.Router) {
		r.Get("/", handlers.ListReservations)
		r.Post("/", handlers.CreateReservation)
		r.Get("/{id}", handlers.GetReservation)
		r.Put("/{id}", handlers.UpdateReservation)
		r.Delete("/{id}", handlers.DeleteReservation)
	})

	return r
}
