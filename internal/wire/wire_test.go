package wire

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinema-tickets/internal/data/repository"
	"cinema-tickets/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

type client struct {
	t      *testing.T
	router http.Handler
}

func newClient(t *testing.T) *client {
	t.Helper()

	db, err := database.OpenSQLite(":memory:", false, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })

	app := Wiring(repository.NewRepository(db, zap.NewNop()), zap.NewNop())
	return &client{t: t, router: app.Router}
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	return rec
}

// create posts body and returns the new row's id.
func (c *client) create(path, body string) string {
	c.t.Helper()
	rec := c.do(http.MethodPost, path, body)
	require.Equal(c.t, http.StatusCreated, rec.Code, rec.Body.String())

	var data struct {
		ID string `json:"id"`
	}
	require.NoError(c.t, json.Unmarshal(decode(c.t, rec).Data, &data))
	return data.ID
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestGenreEndpoints(t *testing.T) {
	c := newClient(t)

	rec := c.do(http.MethodPost, "/api/genres", `{"name":"Drama"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Status)
	assert.Equal(t, "Genre created", env.Message)

	var genre map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &genre))
	assert.Equal(t, "Drama", genre["name"])
	assert.Equal(t, false, genre["is_for_adults"])
	id := genre["id"].(string)

	rec = c.do(http.MethodGet, "/api/genres/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%q,"name":"Drama","is_for_adults":false}`, id), string(decode(t, rec).Data))

	rec = c.do(http.MethodPut, "/api/genres/"+id, `{"name":"Horror","is_for_adults":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	env = decode(t, rec)
	assert.Equal(t, "Genre updated", env.Message)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%q,"name":"Horror","is_for_adults":true}`, id), string(env.Data))

	rec = c.do(http.MethodGet, "/api/genres", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`[{"id":%q,"name":"Horror","is_for_adults":true}]`, id), string(decode(t, rec).Data))

	rec = c.do(http.MethodDelete, "/api/genres/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = c.do(http.MethodGet, "/api/genres/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found.", decode(t, rec).Message)
}

func TestEmptyListIsArray(t *testing.T) {
	c := newClient(t)

	for _, path := range []string{"/api/genres", "/api/actors", "/api/movies", "/api/cinema-halls", "/api/seats", "/api/screenings", "/api/tickets"} {
		rec := c.do(http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `[]`, string(decode(t, rec).Data), path)
	}
}

func TestTrailingSlash(t *testing.T) {
	c := newClient(t)

	id := c.create("/api/cinema-halls/", `{"name":"Blue"}`)

	rec := c.do(http.MethodGet, "/api/cinema-halls/"+id+"/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestValidationBody(t *testing.T) {
	c := newClient(t)

	rec := c.do(http.MethodPost, "/api/genres", `{"name":"`+strings.Repeat("x", 51)+`"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"name":["exceeds maximum length"]}`, rec.Body.String())

	rec = c.do(http.MethodPost, "/api/actors", ``)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"name":["This field is required."],
		"age":["This field is required."],
		"nationality":["This field is required."]
	}`, rec.Body.String())

	rec = c.do(http.MethodPost, "/api/actors", `{"name":"A","age":"old","nationality":"B"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"age":["A valid integer is required."]}`, rec.Body.String())

	rec = c.do(http.MethodPost, "/api/cinema-halls", `{"name":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"non_field_errors"`)
}

func TestValidationBodyListsEveryField(t *testing.T) {
	c := newClient(t)

	rec := c.do(http.MethodPost, "/api/actors", `{"name":"","age":"abc","nationality":"`+strings.Repeat("x", 60)+`"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"name":["This field may not be blank."],
		"age":["A valid integer is required."],
		"nationality":["exceeds maximum length"]
	}`, rec.Body.String())

	missing := "0b9c8f1e-6f8a-4d7b-9a3e-5c2d1e0f4a6b"
	rec = c.do(http.MethodPost, "/api/seats", `{"row":"first","hall":"`+missing+`"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"row":["A valid integer is required."],
		"number":["This field is required."],
		"hall":["Invalid pk \"`+missing+`\" - object does not exist."]
	}`, rec.Body.String())

	rec = c.do(http.MethodGet, "/api/actors", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

func TestTrailingDataRejected(t *testing.T) {
	c := newClient(t)

	rec := c.do(http.MethodPost, "/api/genres", `{"name":"Drama"} garbage`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"non_field_errors":["JSON parse error - unexpected data after the JSON object"]}`, rec.Body.String())

	rec = c.do(http.MethodGet, "/api/genres", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

func TestUppercaseReference(t *testing.T) {
	c := newClient(t)

	hall := c.create("/api/cinema-halls", `{"name":"Blue"}`)
	seat := c.create("/api/seats", `{"row":1,"number":2,"hall":"`+strings.ToUpper(hall)+`"}`)

	rec := c.do(http.MethodGet, "/api/seats/"+strings.ToUpper(seat), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Equal(t, hall, data["hall"])
	assert.Equal(t, seat, data["id"])
}

func TestMissingReference(t *testing.T) {
	c := newClient(t)

	missing := "0b9c8f1e-6f8a-4d7b-9a3e-5c2d1e0f4a6b"
	rec := c.do(http.MethodPost, "/api/seats", `{"row":1,"number":2,"hall":"`+missing+`"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"hall":["Invalid pk \"`+missing+`\" - object does not exist."]}`, rec.Body.String())
}

func TestUnknownIDs(t *testing.T) {
	c := newClient(t)

	for _, id := range []string{"0b9c8f1e-6f8a-4d7b-9a3e-5c2d1e0f4a6b", "123"} {
		assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/movies/"+id, "").Code)
		assert.Equal(t, http.StatusNotFound, c.do(http.MethodPut, "/api/movies/"+id, `{}`).Code)
		assert.Equal(t, http.StatusNotFound, c.do(http.MethodDelete, "/api/movies/"+id, "").Code)
	}
}

func TestDeleteRules(t *testing.T) {
	c := newClient(t)

	genre := c.create("/api/genres", `{"name":"Animation"}`)
	actor := c.create("/api/actors", `{"name":"Owen Wilson","age":55,"nationality":"American"}`)
	movie := c.create("/api/movies", fmt.Sprintf(`{"title":"Cars","duration":117,"genres":[%q],"actors":[%q]}`, genre, actor))
	hall := c.create("/api/cinema-halls", `{"name":"Blue"}`)
	seat := c.create("/api/seats", fmt.Sprintf(`{"row":1,"number":1,"hall":%q}`, hall))
	screening := c.create("/api/screenings", fmt.Sprintf(`{"movie":%q,"date":"2024-05-01T18:00:00Z","hall":%q}`, movie, hall))
	seated := c.create("/api/tickets", fmt.Sprintf(`{"movie_screening":%q,"seat":%q,"price":10}`, screening, seat))
	c.create("/api/tickets", fmt.Sprintf(`{"movie_screening":%q,"price":8}`, screening))

	// protected
	rec := c.do(http.MethodDelete, "/api/cinema-halls/"+hall, "")
	require.Equal(t, http.StatusConflict, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Status)
	assert.JSONEq(t, `{"relation":"seats.hall_id"}`, string(env.Errors))

	rec = c.do(http.MethodDelete, "/api/movies/"+movie, "")
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"relation":"movie_screenings.movie_id"}`, string(decode(t, rec).Errors))

	// set null
	require.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, "/api/seats/"+seat, "").Code)
	rec = c.do(http.MethodGet, "/api/tickets/"+seated, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%q,"movie_screening":%q,"seat":null,"price":10}`, seated, screening), string(decode(t, rec).Data))

	// cascade
	require.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, "/api/screenings/"+screening, "").Code)
	rec = c.do(http.MethodGet, "/api/tickets", "")
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))

	// detach
	require.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, "/api/genres/"+genre, "").Code)
	rec = c.do(http.MethodGet, "/api/movies/"+movie, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%q,"title":"Cars","duration":117,"genres":[],"actors":[%q]}`, movie, actor), string(decode(t, rec).Data))

	require.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, "/api/movies/"+movie, "").Code)
	require.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, "/api/cinema-halls/"+hall, "").Code)
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/actors/"+actor, "").Code)
}

func TestScreeningDateIsUTC(t *testing.T) {
	c := newClient(t)

	movie := c.create("/api/movies", `{"title":"Cars","duration":117}`)
	hall := c.create("/api/cinema-halls", `{"name":"Blue"}`)
	screening := c.create("/api/screenings", fmt.Sprintf(`{"movie":%q,"date":"2024-05-01T20:00:00+02:00","hall":%q}`, movie, hall))

	rec := c.do(http.MethodGet, "/api/screenings/"+screening, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Equal(t, "2024-05-01T18:00:00Z", data["date"])
}

func TestScreeningDateKeepsFraction(t *testing.T) {
	c := newClient(t)

	movie := c.create("/api/movies", `{"title":"Cars","duration":117}`)
	hall := c.create("/api/cinema-halls", `{"name":"Blue"}`)
	rec := c.do(http.MethodPost, "/api/screenings", fmt.Sprintf(`{"movie":%q,"date":"2024-05-01T20:00:00.123456789+02:00","hall":%q}`, movie, hall))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &created))
	assert.Equal(t, "2024-05-01T18:00:00.123456Z", created["date"])

	rec = c.do(http.MethodGet, fmt.Sprintf("/api/screenings/%s", created["id"]), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, created, got)
}

func TestHealth(t *testing.T) {
	c := newClient(t)

	rec := c.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
