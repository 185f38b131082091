package adaptor

import (
	"errors"
	"net/http"

	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Genre          *GenreHandler
	Actor          *ActorHandler
	Movie          *MovieHandler
	CinemaHall     *CinemaHallHandler
	Seat           *SeatHandler
	MovieScreening *MovieScreeningHandler
	Ticket         *TicketHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Genre:          NewGenreHandler(service.Genre, log),
		Actor:          NewActorHandler(service.Actor, log),
		Movie:          NewMovieHandler(service.Movie, log),
		CinemaHall:     NewCinemaHallHandler(service.CinemaHall, log),
		Seat:           NewSeatHandler(service.Seat, log),
		MovieScreening: NewMovieScreeningHandler(service.MovieScreening, log),
		Ticket:         NewTicketHandler(service.Ticket, log),
	}
}

// decodeErrorSetter is implemented by requests that report decode errors
// together with their validation errors.
type decodeErrorSetter interface {
	SetDecodeErrors(utils.FieldErrors)
}

// decodeRequest writes a 400 and returns false when the body is not usable.
// Field errors are left on dst when it can carry them.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	errs := utils.DecodeJSON(r, dst)
	if errs == nil {
		return true
	}
	if setter, ok := dst.(decodeErrorSetter); ok && !errs.Has(utils.NonFieldErrors) {
		setter.SetDecodeErrors(errs)
		return true
	}
	utils.ResponseValidation(w, errs)
	return false
}

// handleServiceError maps service errors to responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError
	var refErr *usecase.ReferentialIntegrityError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed",
			zap.Any("errors", validationErr.Fields),
			zap.String("operation", operation))
		utils.ResponseValidation(w, validationErr.Fields)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, "Not found.")

	case errors.As(err, &refErr):
		log.Warn(operation+" failed - still referenced",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, refErr.Error(), map[string]string{"relation": refErr.Relation})

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
