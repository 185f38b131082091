package adaptor

import (
	"net/http"

	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CinemaHallHandler struct {
	service usecase.CinemaHallService
	log     *zap.Logger
}

func NewCinemaHallHandler(service usecase.CinemaHallService, log *zap.Logger) *CinemaHallHandler {
	return &CinemaHallHandler{
		service: service,
		log:     log.With(zap.String("handler", "cinema_hall")),
	}
}

// GetCinemaHalls handles GET /api/cinema-halls
func (h *CinemaHallHandler) GetCinemaHalls(w http.ResponseWriter, r *http.Request) {
	cinemaHalls, err := h.service.GetCinemaHalls(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get cinema halls")
		return
	}
	utils.ResponseSuccess(w, "success", cinemaHalls)
}

// GetCinemaHallByID handles GET /api/cinema-halls/{id}
func (h *CinemaHallHandler) GetCinemaHallByID(w http.ResponseWriter, r *http.Request) {
	cinemaHall, err := h.service.GetCinemaHallByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get cinema hall")
		return
	}
	utils.ResponseSuccess(w, "success", cinemaHall)
}

// CreateCinemaHall handles POST /api/cinema-halls
func (h *CinemaHallHandler) CreateCinemaHall(w http.ResponseWriter, r *http.Request) {
	var req request.CinemaHallRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	cinemaHall, err := h.service.CreateCinemaHall(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create cinema hall")
		return
	}
	utils.ResponseCreated(w, "Cinema hall created", cinemaHall)
}

// UpdateCinemaHall handles PUT /api/cinema-halls/{id}
func (h *CinemaHallHandler) UpdateCinemaHall(w http.ResponseWriter, r *http.Request) {
	var req request.CinemaHallRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	cinemaHall, err := h.service.UpdateCinemaHall(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update cinema hall")
		return
	}
	utils.ResponseSuccess(w, "Cinema hall updated", cinemaHall)
}

// DeleteCinemaHall handles DELETE /api/cinema-halls/{id}
func (h *CinemaHallHandler) DeleteCinemaHall(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCinemaHall(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete cinema hall")
		return
	}
	utils.ResponseNoContent(w)
}
