package usecase

import (
	"context"
	"time"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"

	"go.uber.org/zap"
)

type ActorService interface {
	GetActors(ctx context.Context) ([]response.ActorResponse, error)
	GetActorByID(ctx context.Context, actorID string) (*response.ActorResponse, error)
	CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)
	UpdateActor(ctx context.Context, actorID string, req *request.ActorRequest) (*response.ActorResponse, error)
	DeleteActor(ctx context.Context, actorID string) error
}

type actorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewActorService(repo *repository.Repository, log *zap.Logger) ActorService {
	return &actorService{
		repo: repo,
		log:  log.With(zap.String("service", "actor")),
	}
}

func (s *actorService) GetActors(ctx context.Context) ([]response.ActorResponse, error) {
	actors, err := s.repo.Actor.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.ActorResponse, len(actors))
	for i, actor := range actors {
		if resp[i], err = response.ActorToResponse(actor); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (s *actorService) GetActorByID(ctx context.Context, actorID string) (*response.ActorResponse, error) {
	id, err := parseID("actor", actorID)
	if err != nil {
		return nil, err
	}

	actor, err := s.repo.Actor.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, notFound("actor", actorID)
	}

	resp, err := response.ActorToResponse(actor)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *actorService) CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	var actor *entity.Actor
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := validate(ctx, tx, req); err != nil {
			return err
		}

		actor = &entity.Actor{
			Base:        entity.NewBase(),
			Name:        *req.Name,
			Age:         *req.Age,
			Nationality: *req.Nationality,
		}
		return tx.Actor.Create(ctx, actor)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Actor created",
		zap.String("actor_id", actor.ID.String()),
		zap.String("name", actor.Name),
	)

	resp, err := response.ActorToResponse(actor)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *actorService) UpdateActor(ctx context.Context, actorID string, req *request.ActorRequest) (*response.ActorResponse, error) {
	id, err := parseID("actor", actorID)
	if err != nil {
		return nil, err
	}

	var actor *entity.Actor
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		found, err := tx.Actor.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if found == nil {
			return notFound("actor", actorID)
		}
		if err := validate(ctx, tx, req); err != nil {
			return err
		}

		found.Name = *req.Name
		found.Age = *req.Age
		found.Nationality = *req.Nationality
		found.UpdatedAt = time.Now().UTC()
		actor = found
		return tx.Actor.Update(ctx, actor)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Actor updated", zap.String("actor_id", actorID))

	resp, err := response.ActorToResponse(actor)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *actorService) DeleteActor(ctx context.Context, actorID string) error {
	id, err := parseID("actor", actorID)
	if err != nil {
		return err
	}
	return s.repo.Deleter.Delete(ctx, entity.TableActors, id)
}
