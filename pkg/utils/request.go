package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
)

// DecodeJSON decodes the request body into dst, which must point to a struct.
// An empty body decodes as an empty object so that missing fields surface as
// validation errors.
//
// A value of the wrong JSON type is reported under its field and the field is
// left unset; decoding carries on with the other fields. Problems with the
// body as a whole are reported under NonFieldErrors.
func DecodeJSON(r *http.Request, dst any) FieldErrors {
	dec := json.NewDecoder(r.Body)

	var obj map[string]json.RawMessage
	if err := dec.Decode(&obj); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nonFieldError("Invalid data. Expected an object.")
		}
		return nonFieldError("JSON parse error - " + err.Error())
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nonFieldError("JSON parse error - unexpected data after the JSON object")
	}

	errs := make(FieldErrors)
	target := reflect.ValueOf(dst).Elem()
	for {
		body, err := json.Marshal(obj)
		if err != nil {
			return nonFieldError("JSON parse error - " + err.Error())
		}

		target.Set(reflect.Zero(target.Type()))
		err = json.Unmarshal(body, dst)
		if err == nil {
			break
		}

		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return nonFieldError("JSON parse error - " + err.Error())
		}
		field := strings.SplitN(typeErr.Field, ".", 2)[0]
		key, ok := objectKey(obj, field)
		if !ok {
			return nonFieldError("JSON parse error - " + err.Error())
		}
		errs.Add(field, typeMismatchMessage(typeErr.Type))
		delete(obj, key)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// objectKey finds the key encoding/json matched to field, which it does
// case-insensitively.
func objectKey(obj map[string]json.RawMessage, field string) (string, bool) {
	if _, ok := obj[field]; ok {
		return field, true
	}
	for key := range obj {
		if strings.EqualFold(key, field) {
			return key, true
		}
	}
	return "", false
}

func nonFieldError(msg string) FieldErrors {
	return FieldErrors{NonFieldErrors: {msg}}
}

func typeMismatchMessage(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.Bool:
		return "Must be a valid boolean."
	case reflect.String:
		return "Not a valid string."
	case reflect.Slice, reflect.Array:
		return "Expected a list of items."
	default:
		return "Invalid value."
	}
}
