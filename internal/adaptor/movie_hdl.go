package adaptor

import (
	"encoding/json"
	"net/http"

	"popcorn-palace/internal/data/entity"
	"popcorn-palace/internal/dto/request"
	"popcorn-palace/internal/usecase"
	"popcorn-palace/pkg/apperror"
	"popcorn-palace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// ListMovies handles GET /movies/all
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.ListMovies(r.Context())
	if err != nil {
		respondError(w, r, h.log, err, "list movies")
		return
	}

	if movies == nil {
		movies = []*entity.Movie{}
	}

	utils.WriteJSON(w, http.StatusOK, movies)
}

// AddMovie handles POST /movies
func (h *MovieHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.log, apperror.Malformed(err), "add movie")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Add movie validation failed", zap.Any("errors", validationErrors))
		utils.WriteValidationError(w, r, validationErrors)
		return
	}

	movie, err := h.service.AddMovie(r.Context(), &req)
	if err != nil {
		respondError(w, r, h.log, err, "add movie")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, movie)
}

// UpdateMovie handles POST /movies/update/{title}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	if title == "" {
		respondError(w, r, h.log, apperror.InvalidField("title", "must not be empty"), "update movie")
		return
	}

	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, h.log, apperror.Malformed(err), "update movie")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Update movie validation failed", zap.Any("errors", validationErrors))
		utils.WriteValidationError(w, r, validationErrors)
		return
	}

	if err := h.service.UpdateMovie(r.Context(), title, &req); err != nil {
		respondError(w, r, h.log, err, "update movie")
		return
	}

	utils.WriteJSON(w, http.StatusOK, nil)
}

// DeleteMovie handles DELETE /movies/{title}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	if title == "" {
		respondError(w, r, h.log, apperror.InvalidField("title", "must not be empty"), "delete movie")
		return
	}

	if err := h.service.DeleteMovie(r.Context(), title); err != nil {
		respondError(w, r, h.log, err, "delete movie")
		return
	}

	utils.WriteJSON(w, http.StatusOK, nil)
}
