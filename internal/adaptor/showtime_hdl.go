package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"popcorn-palace/internal/dto/request"
	"popcorn-palace/internal/usecase"
	"popcorn-palace/pkg/apperror"
	"popcorn-palace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// GetShowtime handles GET /showtime/{showtimeId}
func (h *ShowtimeHandler) GetShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := h.parseShowtimeID(r)
	if err != nil {
		respondError(w, r, h.log, err, "get showtime")
		return
	}

	showtime, err := h.service.GetShowtime(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, "get showtime")
		return
	}

	utils.WriteJSON(w, http.StatusOK, showtime)
}

// AddShowtime handles POST /showtime
func (h *ShowtimeHandler) AddShowtime(w http.ResponseWriter, r *http.Request) {
	var req request.ShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.log, apperror.Malformed(err), "add showtime")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Add showtime validation failed", zap.Any("errors", validationErrors))
		utils.WriteValidationError(w, r, validationErrors)
		return
	}

	showtime, err := h.service.AddShowtime(r.Context(), &req)
	if err != nil {
		respondError(w, r, h.log, err, "add showtime")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, showtime)
}

// UpdateShowtime handles POST /showtime/update/{showtimeId}
func (h *ShowtimeHandler) UpdateShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := h.parseShowtimeID(r)
	if err != nil {
		respondError(w, r, h.log, err, "update showtime")
		return
	}

	var req request.ShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.log, apperror.Malformed(err), "update showtime")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Update showtime validation failed", zap.Any("errors", validationErrors))
		utils.WriteValidationError(w, r, validationErrors)
		return
	}

	if err := h.service.UpdateShowtime(r.Context(), id, &req); err != nil {
		respondError(w, r, h.log, err, "update showtime")
		return
	}

	utils.WriteJSON(w, http.StatusOK, nil)
}

// DeleteShowtime handles DELETE /showtime/{showtimeId}
func (h *ShowtimeHandler) DeleteShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := h.parseShowtimeID(r)
	if err != nil {
		respondError(w, r, h.log, err, "delete showtime")
		return
	}

	if err := h.service.DeleteShowtime(r.Context(), id); err != nil {
		respondError(w, r, h.log, err, "delete showtime")
		return
	}

	utils.WriteJSON(w, http.StatusOK, nil)
}

func (h *ShowtimeHandler) parseShowtimeID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "showtimeId")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.TypeMismatch("showtimeId", raw, "int64")
	}

	if id <= 0 {
		return 0, apperror.InvalidField("showtimeId", "must be a positive number")
	}

	return id, nil
}
