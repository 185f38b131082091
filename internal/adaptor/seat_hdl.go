package adaptor

import (
	"net/http"

	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SeatHandler struct {
	service usecase.SeatService
	log     *zap.Logger
}

func NewSeatHandler(service usecase.SeatService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		service: service,
		log:     log.With(zap.String("handler", "seat")),
	}
}

// GetSeats handles GET /api/seats
func (h *SeatHandler) GetSeats(w http.ResponseWriter, r *http.Request) {
	seats, err := h.service.GetSeats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get seats")
		return
	}
	utils.ResponseSuccess(w, "success", seats)
}

// GetSeatByID handles GET /api/seats/{id}
func (h *SeatHandler) GetSeatByID(w http.ResponseWriter, r *http.Request) {
	seat, err := h.service.GetSeatByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get seat")
		return
	}
	utils.ResponseSuccess(w, "success", seat)
}

// CreateSeat handles POST /api/seats
func (h *SeatHandler) CreateSeat(w http.ResponseWriter, r *http.Request) {
	var req request.SeatRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	seat, err := h.service.CreateSeat(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create seat")
		return
	}
	utils.ResponseCreated(w, "Seat created", seat)
}

// UpdateSeat handles PUT /api/seats/{id}
func (h *SeatHandler) UpdateSeat(w http.ResponseWriter, r *http.Request) {
	var req request.SeatRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	seat, err := h.service.UpdateSeat(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update seat")
		return
	}
	utils.ResponseSuccess(w, "Seat updated", seat)
}

// DeleteSeat handles DELETE /api/seats/{id}
func (h *SeatHandler) DeleteSeat(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSeat(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete seat")
		return
	}
	utils.ResponseNoContent(w)
}
