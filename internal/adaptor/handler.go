package adaptor

import (
	"net/http"

	"popcorn-palace/internal/usecase"
	"popcorn-palace/pkg/apperror"
	"popcorn-palace/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie    *MovieHandler
	Showtime *ShowtimeHandler
	Booking  *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:    NewMovieHandler(service.Movie, log),
		Showtime: NewShowtimeHandler(service.Showtime, log),
		Booking:  NewBookingHandler(service.Booking, log),
	}
}

// respondError logs the failure and renders the error body. Client faults
// log at warn, everything else at error.
func respondError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error, operation string) {
	appErr, ok := apperror.From(err)
	if ok && appErr.Status < http.StatusInternalServerError {
		log.Warn("Request failed",
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("error_code", appErr.Code),
		)
	} else {
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation),
		)
	}

	utils.WriteError(w, r, err)
}
