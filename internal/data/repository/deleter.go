package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	lockUpdate = "UPDATE"
	lockShare  = "SHARE"
)

// Deleter removes a row and applies the registry's rules to everything
// referencing it, all in one transaction. Every protect rule reachable
// through cascades is checked before anything is written, so a refused
// delete changes nothing.
type Deleter interface {
	Delete(ctx context.Context, table string, id uuid.UUID) error
}

type deleter struct {
	db       *gorm.DB
	registry *Registry
	log      *zap.Logger
}

func NewDeleter(db *gorm.DB, registry *Registry, log *zap.Logger) Deleter {
	return &deleter{
		db:       db,
		registry: registry,
		log:      log.With(zap.String("repository", "deleter")),
	}
}

func (d *deleter) Delete(ctx context.Context, table string, id uuid.UUID) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := lockRow(tx, table, id, lockUpdate)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("delete %s %s: %w", table, id, ErrNotFound)
		}

		if err := d.check(tx, table, id); err != nil {
			return err
		}
		return d.remove(tx, table, id)
	})

	var refErr *ReferentialIntegrityError
	switch {
	case err == nil:
		d.log.Info("Row deleted", zap.String("table", table), zap.String("id", id.String()))
		return nil
	case errors.Is(err, ErrNotFound):
		return err
	case errors.As(err, &refErr):
		d.log.Info("Delete refused",
			zap.String("table", table),
			zap.String("id", id.String()),
			zap.String("relation", refErr.Relation),
		)
		return err
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		d.log.Warn("Delete rejected by foreign key constraint",
			zap.Error(err),
			zap.String("table", table),
			zap.String("id", id.String()),
		)
		return &ReferentialIntegrityError{Table: table, ID: id, Relation: "foreign key constraint"}
	default:
		d.log.Error("Failed to delete row",
			zap.Error(err),
			zap.String("table", table),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete %s %s: %w", table, id, err)
	}
}

// check walks protect and cascade rules without writing.
func (d *deleter) check(tx *gorm.DB, table string, id uuid.UUID) error {
	for _, rel := range d.registry.Incoming(table) {
		switch rel.OnDelete {
		case Protect:
			var n int64
			if err := tx.Table(rel.Source).Where(rel.Column+" = ?", id).Count(&n).Error; err != nil {
				return fmt.Errorf("count %s: %w", rel.Name(), err)
			}
			if n > 0 {
				return &ReferentialIntegrityError{Table: table, ID: id, Relation: rel.Name()}
			}
		case Cascade:
			children, err := referencingIDs(tx, rel, id)
			if err != nil {
				return err
			}
			for _, child := range children {
				if err := d.check(tx, rel.Source, child); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// remove applies cascade, set-null and detach rules, then deletes the row.
func (d *deleter) remove(tx *gorm.DB, table string, id uuid.UUID) error {
	for _, rel := range d.registry.Incoming(table) {
		switch rel.OnDelete {
		case Cascade:
			children, err := referencingIDs(tx, rel, id)
			if err != nil {
				return err
			}
			for _, child := range children {
				if err := d.remove(tx, rel.Source, child); err != nil {
					return err
				}
			}
		case SetNull:
			query := fmt.Sprintf("UPDATE %s SET %s = NULL WHERE %s = ?", rel.Source, rel.Column, rel.Column)
			if err := tx.Exec(query, id).Error; err != nil {
				return fmt.Errorf("clear %s: %w", rel.Name(), err)
			}
		case Detach:
			query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", rel.Source, rel.Column)
			if err := tx.Exec(query, id).Error; err != nil {
				return fmt.Errorf("detach %s: %w", rel.Name(), err)
			}
		}
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", table)
	if err := tx.Exec(query, id).Error; err != nil {
		return fmt.Errorf("delete %s %s: %w", table, id, err)
	}
	return nil
}

// referencingIDs returns the ids of rows referencing id through rel, locked for update.
func referencingIDs(tx *gorm.DB, rel Relation, id uuid.UUID) ([]uuid.UUID, error) {
	rows, err := tx.Table(rel.Source).
		Select("id").
		Where(rel.Column+" = ?", id).
		Clauses(clause.Locking{Strength: lockUpdate}).
		Rows()
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", rel.Name(), err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var child uuid.UUID
		if err := rows.Scan(&child); err != nil {
			return nil, fmt.Errorf("scan %s: %w", rel.Name(), err)
		}
		ids = append(ids, child)
	}
	return ids, rows.Err()
}

// lockRow reports whether table has a row with id, locking it when found.
func lockRow(tx *gorm.DB, table string, id uuid.UUID, strength string) (bool, error) {
	rows, err := tx.Table(table).
		Select("id").
		Where("id = ?", id).
		Clauses(clause.Locking{Strength: strength}).
		Rows()
	if err != nil {
		return false, fmt.Errorf("lock %s %s: %w", table, id, err)
	}
	defer rows.Close()

	found := rows.Next()
	return found, rows.Err()
}
