package adaptor

import (
	"net/http"

	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieScreeningHandler struct {
	service usecase.MovieScreeningService
	log     *zap.Logger
}

func NewMovieScreeningHandler(service usecase.MovieScreeningService, log *zap.Logger) *MovieScreeningHandler {
	return &MovieScreeningHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie_screening")),
	}
}

// GetMovieScreenings handles GET /api/screenings
func (h *MovieScreeningHandler) GetMovieScreenings(w http.ResponseWriter, r *http.Request) {
	movieScreenings, err := h.service.GetMovieScreenings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get movie screenings")
		return
	}
	utils.ResponseSuccess(w, "success", movieScreenings)
}

// GetMovieScreeningByID handles GET /api/screenings/{id}
func (h *MovieScreeningHandler) GetMovieScreeningByID(w http.ResponseWriter, r *http.Request) {
	movieScreening, err := h.service.GetMovieScreeningByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get movie screening")
		return
	}
	utils.ResponseSuccess(w, "success", movieScreening)
}

// CreateMovieScreening handles POST /api/screenings
func (h *MovieScreeningHandler) CreateMovieScreening(w http.ResponseWriter, r *http.Request) {
	var req request.MovieScreeningRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	movieScreening, err := h.service.CreateMovieScreening(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie screening")
		return
	}
	utils.ResponseCreated(w, "Movie screening created", movieScreening)
}

// UpdateMovieScreening handles PUT /api/screenings/{id}
func (h *MovieScreeningHandler) UpdateMovieScreening(w http.ResponseWriter, r *http.Request) {
	var req request.MovieScreeningRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	movieScreening, err := h.service.UpdateMovieScreening(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie screening")
		return
	}
	utils.ResponseSuccess(w, "Movie screening updated", movieScreening)
}

// DeleteMovieScreening handles DELETE /api/screenings/{id}
func (h *MovieScreeningHandler) DeleteMovieScreening(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMovieScreening(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete movie screening")
		return
	}
	utils.ResponseNoContent(w)
}
