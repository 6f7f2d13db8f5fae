// internal/wire/wire.go
package wire

import (
	"net/http"

	"popcorn-palace/internal/adaptor"
	"popcorn-palace/internal/usecase"
	"popcorn-palace/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(service *usecase.Service, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireMovie(r, handler.Movie)
	wireShowtime(r, handler.Showtime)
	wireBooking(r, handler.Booking)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
