package repository

import (
	"sort"

	"cinema-tickets/internal/data/entity"
)

// OnDelete is what happens to a referencing row when its target is deleted.
type OnDelete int

const (
	// Protect refuses the delete while any row references the target.
	Protect OnDelete = iota
	// Cascade deletes the referencing rows first.
	Cascade
	// SetNull clears the referencing column.
	SetNull
	// Detach removes association rows and leaves the other side alone.
	Detach
)

func (o OnDelete) String() string {
	switch o {
	case Protect:
		return "protect"
	case Cascade:
		return "cascade"
	case SetNull:
		return "set_null"
	case Detach:
		return "detach"
	default:
		return "unknown"
	}
}

// Relation is a column in Source holding ids of rows in Target.
type Relation struct {
	Source   string
	Column   string
	Target   string
	OnDelete OnDelete
}

// Name identifies the relation as "table.column".
func (r Relation) Name() string {
	return r.Source + "." + r.Column
}

// Relations is the delete behavior of every reference in the schema.
var Relations = []Relation{
	{Source: entity.TableSeats, Column: "hall_id", Target: entity.TableCinemaHalls, OnDelete: Protect},
	{Source: entity.TableMovieScreenings, Column: "hall_id", Target: entity.TableCinemaHalls, OnDelete: Protect},
	{Source: entity.TableMovieScreenings, Column: "movie_id", Target: entity.TableMovies, OnDelete: Protect},
	{Source: entity.TableTickets, Column: "movie_screening_id", Target: entity.TableMovieScreenings, OnDelete: Cascade},
	{Source: entity.TableTickets, Column: "seat_id", Target: entity.TableSeats, OnDelete: SetNull},
	{Source: entity.TableMovieGenres, Column: "movie_id", Target: entity.TableMovies, OnDelete: Detach},
	{Source: entity.TableMovieGenres, Column: "genre_id", Target: entity.TableGenres, OnDelete: Detach},
	{Source: entity.TableMovieActors, Column: "movie_id", Target: entity.TableMovies, OnDelete: Detach},
	{Source: entity.TableMovieActors, Column: "actor_id", Target: entity.TableActors, OnDelete: Detach},
}

// Registry indexes relations by the table they point at.
type Registry struct {
	relations []Relation
	byTarget  map[string][]Relation
}

func NewRegistry(relations ...Relation) *Registry {
	r := &Registry{
		relations: []Relation{},
		byTarget:  make(map[string][]Relation),
	}
	for _, rel := range relations {
		r.Register(rel)
	}
	return r
}

// DefaultRegistry holds Relations.
func DefaultRegistry() *Registry {
	return NewRegistry(Relations...)
}

// Register adds a relation, keeping each target's list ordered by OnDelete.
func (r *Registry) Register(rel Relation) {
	r.relations = append(r.relations, rel)
	incoming := append(r.byTarget[rel.Target], rel)
	sort.SliceStable(incoming, func(i, j int) bool {
		return incoming[i].OnDelete < incoming[j].OnDelete
	})
	r.byTarget[rel.Target] = incoming
}

// Incoming returns the relations pointing at table, protect rules first.
func (r *Registry) Incoming(table string) []Relation {
	return r.byTarget[table]
}

// AllRelations returns every registered relation.
func (r *Registry) AllRelations() []Relation {
	return r.relations
}
