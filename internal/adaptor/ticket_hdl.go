package adaptor

import (
	"net/http"

	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// GetTickets handles GET /api/tickets
func (h *TicketHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.service.GetTickets(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get tickets")
		return
	}
	utils.ResponseSuccess(w, "success", tickets)
}

// GetTicketByID handles GET /api/tickets/{id}
func (h *TicketHandler) GetTicketByID(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.service.GetTicketByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get ticket")
		return
	}
	utils.ResponseSuccess(w, "success", ticket)
}

// CreateTicket handles POST /api/tickets
func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req request.TicketRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	ticket, err := h.service.CreateTicket(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create ticket")
		return
	}
	utils.ResponseCreated(w, "Ticket created", ticket)
}

// UpdateTicket handles PUT /api/tickets/{id}
func (h *TicketHandler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	var req request.TicketRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	ticket, err := h.service.UpdateTicket(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update ticket")
		return
	}
	utils.ResponseSuccess(w, "Ticket updated", ticket)
}

// DeleteTicket handles DELETE /api/tickets/{id}
func (h *TicketHandler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTicket(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete ticket")
		return
	}
	utils.ResponseNoContent(w)
}
