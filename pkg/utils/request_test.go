package utils

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Name   *string  `json:"name"`
	Age    *int     `json:"age"`
	Adults *bool    `json:"is_for_adults"`
	Genres []string `json:"genres"`
}

func decode(t *testing.T, body string) (decodeTarget, FieldErrors) {
	t.Helper()
	var dst decodeTarget
	r := httptest.NewRequest("POST", "/", strings.NewReader(body))
	return dst, DecodeJSON(r, &dst)
}

func TestDecodeJSON(t *testing.T) {
	var dst decodeTarget
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Drama","age":3,"genres":["a"]}`))

	require.Nil(t, DecodeJSON(r, &dst))
	require.NotNil(t, dst.Name)
	assert.Equal(t, "Drama", *dst.Name)
	assert.Equal(t, 3, *dst.Age)
	assert.Nil(t, dst.Adults)
	assert.Equal(t, []string{"a"}, dst.Genres)
}

func TestDecodeJSON_EmptyBody(t *testing.T) {
	dst, errs := decode(t, "")
	assert.Nil(t, errs)
	assert.Nil(t, dst.Name)
}

func TestDecodeJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want FieldErrors
	}{
		{"integer", `{"age":"old"}`, FieldErrors{"age": {"A valid integer is required."}}},
		{"boolean", `{"is_for_adults":"yes"}`, FieldErrors{"is_for_adults": {"Must be a valid boolean."}}},
		{"string", `{"name":5}`, FieldErrors{"name": {"Not a valid string."}}},
		{"list", `{"genres":"a"}`, FieldErrors{"genres": {"Expected a list of items."}}},
		{"not an object", `["a"]`, FieldErrors{NonFieldErrors: {"Invalid data. Expected an object."}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := decode(t, tt.body)
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	_, errs := decode(t, `{"name":`)

	require.Len(t, errs[NonFieldErrors], 1)
	assert.True(t, strings.HasPrefix(errs[NonFieldErrors][0], "JSON parse error - "))
}

func TestDecodeJSON_ReportsEveryMistypedField(t *testing.T) {
	dst, errs := decode(t, `{"name":"Drama","age":"old","is_for_adults":"yes","genres":"a"}`)

	assert.Equal(t, FieldErrors{
		"age":           {"A valid integer is required."},
		"is_for_adults": {"Must be a valid boolean."},
		"genres":        {"Expected a list of items."},
	}, errs)
	require.NotNil(t, dst.Name)
	assert.Equal(t, "Drama", *dst.Name)
	assert.Nil(t, dst.Age)
}

func TestDecodeJSON_MixedCaseKey(t *testing.T) {
	_, errs := decode(t, `{"AGE":"old"}`)
	assert.Equal(t, FieldErrors{"age": {"A valid integer is required."}}, errs)
}

func TestDecodeJSON_TrailingData(t *testing.T) {
	for _, body := range []string{`{"name":"x"} garbage`, `{"name":"x"}{"name":"y"}`} {
		dst, errs := decode(t, body)
		assert.Equal(t, FieldErrors{NonFieldErrors: {"JSON parse error - unexpected data after the JSON object"}}, errs, body)
		assert.Nil(t, dst.Name, body)
	}

	_, errs := decode(t, "{\"name\":\"x\"}\n  ")
	assert.Nil(t, errs)
}
