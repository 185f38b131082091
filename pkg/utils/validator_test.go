package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  *string  `json:"name" validate:"required,notblank,max=5"`
	Code  *string  `json:"code" validate:"omitempty,min=3"`
	Count *int     `json:"count" validate:"required,min=1,max=10"`
	Ref   *string  `json:"ref" validate:"omitempty,uuid"`
	When  *string  `json:"when" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Tags  []string `json:"tags" validate:"dive,uuid"`
}

func ptr[T any](v T) *T { return &v }

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(sample{
		Name:  ptr("Cars"),
		Count: ptr(3),
		Ref:   ptr("8d7e2c7a-0f6e-4a53-9a56-0a1c3f2b9e11"),
		When:  ptr("2024-05-01T18:00:00+02:00"),
		Tags:  []string{"8d7e2c7a-0f6e-4a53-9a56-0a1c3f2b9e11"},
	})
	assert.Nil(t, errs)
}

func TestValidateStruct_UUIDIgnoresCase(t *testing.T) {
	errs := ValidateStruct(sample{
		Name:  ptr("Cars"),
		Count: ptr(3),
		Ref:   ptr("8D7E2C7A-0F6E-4A53-9A56-0A1C3F2B9E11"),
		Tags:  []string{"8d7e2c7a-0F6E-4a53-9A56-0a1c3f2b9e11"},
	})
	assert.Nil(t, errs)

	errs = ValidateStruct(sample{Name: ptr("Cars"), Count: ptr(3), Ref: ptr("8D7E2C7A-0F6E-4A53-9A56-0A1C3F2B9E1Z")})
	assert.Equal(t, FieldErrors{"ref": {MsgUUID}}, errs)
}

func TestValidateStruct_Messages(t *testing.T) {
	tests := []struct {
		name  string
		input sample
		field string
		want  string
	}{
		{"missing", sample{Count: ptr(1)}, "name", MsgRequired},
		{"blank", sample{Name: ptr("   "), Count: ptr(1)}, "name", MsgBlank},
		{"too long", sample{Name: ptr("abcdef"), Count: ptr(1)}, "name", MsgMaxLength},
		{"too short", sample{Name: ptr("a"), Code: ptr("ab"), Count: ptr(1)}, "code", "must be at least 3 characters"},
		{"too small", sample{Name: ptr("a"), Count: ptr(0)}, "count", "must be greater than or equal to 1"},
		{"too large", sample{Name: ptr("a"), Count: ptr(11)}, "count", "must be less than or equal to 10"},
		{"bad uuid", sample{Name: ptr("a"), Count: ptr(1), Ref: ptr("nope")}, "ref", MsgUUID},
		{"bad date", sample{Name: ptr("a"), Count: ptr(1), When: ptr("01/05/2024")}, "when", MsgTimestamp},
		{"bad list item", sample{Name: ptr("a"), Count: ptr(1), Tags: []string{"x"}}, "tags", MsgUUID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(tt.input)
			assert.Equal(t, FieldErrors{tt.field: {tt.want}}, errs)
		})
	}
}

func TestValidateStruct_CollectsEveryField(t *testing.T) {
	errs := ValidateStruct(sample{Name: ptr(strings.Repeat("x", 6))})

	assert.Equal(t, FieldErrors{
		"name":  {MsgMaxLength},
		"count": {MsgRequired},
	}, errs)
}

func TestFieldErrors(t *testing.T) {
	errs := make(FieldErrors)
	errs.Add("b", "second")
	errs.Add("a", "first")
	errs.Merge(FieldErrors{"a": {"again"}})

	assert.True(t, errs.Has("a"))
	assert.False(t, errs.Has("c"))
	assert.Equal(t, "a: first, again; b: second", errs.Error())
}
