package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-tickets/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ActorRepository interface {
	Create(ctx context.Context, actor *entity.Actor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error)
	FindAll(ctx context.Context) ([]*entity.Actor, error)
	Update(ctx context.Context, actor *entity.Actor) error
}

type actorRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewActorRepository(db *gorm.DB, log *zap.Logger) ActorRepository {
	return &actorRepository{
		db:  db,
		log: log.With(zap.String("repository", "actor")),
	}
}

func (r *actorRepository) Create(ctx context.Context, actor *entity.Actor) error {
	if err := r.db.WithContext(ctx).Create(actor).Error; err != nil {
		r.log.Error("Failed to create actor",
			zap.Error(err),
			zap.String("name", actor.Name),
		)
		return fmt.Errorf("create actor %s: %w", actor.Name, err)
	}
	return nil
}

func (r *actorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error) {
	var actor entity.Actor
	err := r.db.WithContext(ctx).First(&actor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find actor by ID",
			zap.Error(err),
			zap.String("actor_id", id.String()),
		)
		return nil, fmt.Errorf("find actor by id: %w", err)
	}

	return &actor, nil
}

func (r *actorRepository) FindAll(ctx context.Context) ([]*entity.Actor, error) {
	var actors []*entity.Actor
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&actors).Error; err != nil {
		r.log.Error("Failed to list actors", zap.Error(err))
		return nil, fmt.Errorf("list actors: %w", err)
	}
	return actors, nil
}

func (r *actorRepository) Update(ctx context.Context, actor *entity.Actor) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Actor{}).
		Where("id = ?", actor.ID).
		Updates(map[string]any{
			"name":        actor.Name,
			"age":         actor.Age,
			"nationality": actor.Nationality,
			"updated_at":  actor.UpdatedAt,
		})
	if result.Error != nil {
		r.log.Error("Failed to update actor",
			zap.Error(result.Error),
			zap.String("actor_id", actor.ID.String()),
		)
		return fmt.Errorf("update actor %s: %w", actor.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update actor %s: %w", actor.ID, ErrNotFound)
	}
	return nil
}
