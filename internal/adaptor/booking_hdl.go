package adaptor

import (
	"encoding/json"
	"net/http"

	"popcorn-palace/internal/dto/request"
	"popcorn-palace/internal/usecase"
	"popcorn-palace/pkg/apperror"
	"popcorn-palace/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// BookTicket handles POST /bookings
func (h *BookingHandler) BookTicket(w http.ResponseWriter, r *http.Request) {
	var req request.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.log, apperror.Malformed(err), "book ticket")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Book ticket validation failed", zap.Any("errors", validationErrors))
		utils.WriteValidationError(w, r, validationErrors)
		return
	}

	booking, err := h.service.BookTicket(r.Context(), &req)
	if err != nil {
		respondError(w, r, h.log, err, "book ticket")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, booking)
}
