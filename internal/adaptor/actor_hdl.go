package adaptor

import (
	"net/http"

	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ActorHandler struct {
	service usecase.ActorService
	log     *zap.Logger
}

func NewActorHandler(service usecase.ActorService, log *zap.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		log:     log.With(zap.String("handler", "actor")),
	}
}

// GetActors handles GET /api/actors
func (h *ActorHandler) GetActors(w http.ResponseWriter, r *http.Request) {
	actors, err := h.service.GetActors(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get actors")
		return
	}
	utils.ResponseSuccess(w, "success", actors)
}

// GetActorByID handles GET /api/actors/{id}
func (h *ActorHandler) GetActorByID(w http.ResponseWriter, r *http.Request) {
	actor, err := h.service.GetActorByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get actor")
		return
	}
	utils.ResponseSuccess(w, "success", actor)
}

// CreateActor handles POST /api/actors
func (h *ActorHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	actor, err := h.service.CreateActor(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create actor")
		return
	}
	utils.ResponseCreated(w, "Actor created", actor)
}

// UpdateActor handles PUT /api/actors/{id}
func (h *ActorHandler) UpdateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	actor, err := h.service.UpdateActor(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update actor")
		return
	}
	utils.ResponseSuccess(w, "Actor updated", actor)
}

// DeleteActor handles DELETE /api/actors/{id}
func (h *ActorHandler) DeleteActor(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteActor(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete actor")
		return
	}
	utils.ResponseNoContent(w)
}
