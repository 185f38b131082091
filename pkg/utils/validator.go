package utils

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	MsgRequired  = "This field is required."
	MsgBlank     = "This field may not be blank."
	MsgMaxLength = "exceeds maximum length"
	MsgUUID      = "must be a valid UUID"
	MsgTimestamp = "must be an RFC 3339 timestamp"
)

// NonFieldErrors is the key used for problems not tied to a single field.
const NonFieldErrors = "non_field_errors"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})

	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}

	// The built-in uuid tag only matches lowercase hex. Accept every form
	// uuid.Parse does, so ids are case-insensitive.
	if err := v.RegisterValidation("uuid", func(fl validator.FieldLevel) bool {
		_, err := uuid.Parse(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}

	return v
}

// FieldErrors maps a field name to every reason its value was rejected.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e FieldErrors) Merge(other FieldErrors) {
	for field, msgs := range other {
		e[field] = append(e[field], msgs...)
	}
}

func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, strings.Join(e[field], ", ")))
	}
	return strings.Join(msgs, "; ")
}

// ValidateStruct runs the validate tags of data and collects every failure.
// It returns nil when data is valid.
func ValidateStruct(data any) FieldErrors {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errs := make(FieldErrors)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs.Add(NonFieldErrors, err.Error())
		return errs
	}

	for _, fe := range validationErrors {
		errs.Add(fieldName(fe.Field()), getSimpleErrorMessage(fe))
	}
	return errs
}

// fieldName drops the element index validator appends for list items.
func fieldName(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i]
	}
	return field
}

func getSimpleErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return MsgRequired
	case "notblank":
		return MsgBlank
	case "max":
		if err.Kind() == reflect.String {
			return MsgMaxLength
		}
		return fmt.Sprintf("must be less than or equal to %s", err.Param())
	case "min":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", err.Param())
	case "uuid", "uuid4":
		return MsgUUID
	case "datetime":
		return MsgTimestamp
	default:
		return fmt.Sprintf("failed %s validation", err.Tag())
	}
}
