package usecase

import (
	"fmt"
	"sort"
	"testing"

	"cinema-tickets/internal/dto/request"
	"cinema-tickets/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieService_CreateWithLinks(t *testing.T) {
	w, _ := newWorld(t)

	animation := w.genre("Animation")
	family := w.genre("Family")
	owen := w.actor("Owen Wilson")

	movie := w.movie("Cars",
		[]string{animation.ID.String(), family.ID.String(), animation.ID.String()},
		[]string{owen.ID.String()},
	)
	assert.Equal(t, "Cars", movie.Title)
	assert.Equal(t, 117, movie.Duration)
	assert.Equal(t, []uuid.UUID{animation.ID, family.ID}, movie.Genres)
	assert.Equal(t, []uuid.UUID{owen.ID}, movie.Actors)

	got, err := w.svc.Movie.GetMovieByID(w.ctx, movie.ID.String())
	require.NoError(t, err)
	assert.Equal(t, *movie, *got)

	all, err := w.svc.Movie.GetMovies(w.ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, *movie, all[0])
}

func TestMovieService_GetReturnsWhatCreateReturned(t *testing.T) {
	w, _ := newWorld(t)

	var genres, actors []string
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		genres = append(genres, w.genre(name).ID.String())
		actors = append(actors, w.actor(name).ID.String())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(genres)))
	sort.Strings(actors)
	actors[0], actors[5] = actors[5], actors[0]

	created := w.movie("Cars", genres, actors)

	got, err := w.svc.Movie.GetMovieByID(w.ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	all, err := w.svc.Movie.GetMovies(w.ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, *created, all[0])

	updated, err := w.svc.Movie.UpdateMovie(w.ctx, created.ID.String(), &request.MovieRequest{
		Title:    ptr("Cars"),
		Duration: ptr(117),
		Genres:   []string{genres[3], genres[0]},
		Actors:   actors,
	})
	require.NoError(t, err)

	got, err = w.svc.Movie.GetMovieByID(w.ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)
	assert.Equal(t, []uuid.UUID{uuid.MustParse(genres[3]), uuid.MustParse(genres[0])}, got.Genres)
}

func TestMovieService_EmptyLinksAreLists(t *testing.T) {
	w, _ := newWorld(t)

	movie := w.movie("Cars", nil, nil)
	assert.NotNil(t, movie.Genres)
	assert.NotNil(t, movie.Actors)

	all, err := w.svc.Movie.GetMovies(w.ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.NotNil(t, all[0].Genres)
	assert.NotNil(t, all[0].Actors)
}

func TestMovieService_Validation(t *testing.T) {
	w, _ := newWorld(t)

	genre := w.genre("Drama")
	missing := uuid.NewString()

	_, err := w.svc.Movie.CreateMovie(w.ctx, &request.MovieRequest{
		Title:    ptr("Cars"),
		Duration: ptr(117),
		Genres:   []string{genre.ID.String(), missing},
		Actors:   []string{"nope"},
	})
	assert.Equal(t, utils.FieldErrors{
		"genres": {fmt.Sprintf(MsgMissingReference, missing)},
		"actors": {utils.MsgUUID},
	}, requireFieldErrors(t, err))

	_, err = w.svc.Movie.CreateMovie(w.ctx, &request.MovieRequest{Duration: ptr(2147483648)})
	assert.Equal(t, utils.FieldErrors{
		"title":    {utils.MsgRequired},
		"duration": {"must be less than or equal to 2147483647"},
	}, requireFieldErrors(t, err))

	all, err := w.svc.Movie.GetMovies(w.ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMovieService_UpdateReplacesLinks(t *testing.T) {
	w, _ := newWorld(t)

	drama := w.genre("Drama")
	comedy := w.genre("Comedy")
	actor := w.actor("Owen Wilson")
	movie := w.movie("Cars", []string{drama.ID.String()}, []string{actor.ID.String()})

	updated, err := w.svc.Movie.UpdateMovie(w.ctx, movie.ID.String(), &request.MovieRequest{
		Title:    ptr("Cars 2"),
		Duration: ptr(106),
		Genres:   []string{comedy.ID.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, "Cars 2", updated.Title)
	assert.Equal(t, []uuid.UUID{comedy.ID}, updated.Genres)
	assert.Empty(t, updated.Actors)

	got, err := w.svc.Movie.GetMovieByID(w.ctx, movie.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 106, got.Duration)
	assert.Equal(t, []uuid.UUID{comedy.ID}, got.Genres)
	assert.Empty(t, got.Actors)
}

func TestMovieService_FailedUpdateChangesNothing(t *testing.T) {
	w, _ := newWorld(t)

	drama := w.genre("Drama")
	movie := w.movie("Cars", []string{drama.ID.String()}, nil)

	_, err := w.svc.Movie.UpdateMovie(w.ctx, movie.ID.String(), &request.MovieRequest{
		Title:    ptr("Cars 2"),
		Duration: ptr(106),
		Genres:   []string{uuid.NewString()},
	})
	requireFieldErrors(t, err)

	got, err := w.svc.Movie.GetMovieByID(w.ctx, movie.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Cars", got.Title)
	assert.Equal(t, []uuid.UUID{drama.ID}, got.Genres)
}

func TestMovieService_Delete(t *testing.T) {
	w, _ := newWorld(t)

	genre := w.genre("Animation")
	hall := w.hall("Blue")
	screened := w.movie("Cars", []string{genre.ID.String()}, nil)
	w.screening(screened.ID.String(), hall.ID.String())

	err := w.svc.Movie.DeleteMovie(w.ctx, screened.ID.String())
	var refErr *ReferentialIntegrityError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "movie_screenings.movie_id", refErr.Relation)

	_, err = w.svc.Movie.GetMovieByID(w.ctx, screened.ID.String())
	require.NoError(t, err)

	unscreened := w.movie("Planes", []string{genre.ID.String()}, nil)
	require.NoError(t, w.svc.Movie.DeleteMovie(w.ctx, unscreened.ID.String()))

	_, err = w.svc.Movie.GetMovieByID(w.ctx, unscreened.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = w.svc.Genre.GetGenreByID(w.ctx, genre.ID.String())
	assert.NoError(t, err)
}
