package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Validation error types reported in FieldError.Type.
const (
	TypeMissing          = "missing"
	TypeStringType       = "string_type"
	TypeIntParsing       = "int_parsing"
	TypeGreaterThanEqual = "greater_than_equal"
	TypeLessThanEqual    = "less_than_equal"
	TypeJSONInvalid      = "json_invalid"
	TypeObjectType       = "model_attributes_type"
)

// FieldError describes one input that failed validation. Loc is the path to
// the offending value, e.g. ["body", "job"] or ["query", "size"].
type FieldError struct {
	Type  string `json:"type"`
	Loc   []any  `json:"loc"`
	Msg   string `json:"msg"`
	Input any    `json:"input,omitempty"`
}

// ValidationError collects field errors for a single request.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%v: %s", fe.Loc, fe.Msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field error.
func (e *ValidationError) Add(fe FieldError) {
	e.Errors = append(e.Errors, fe)
}

// Err returns e when it holds errors and nil otherwise.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// WriteValidation sends a 422 with {"detail": [field errors]}.
func WriteValidation(w http.ResponseWriter, err *ValidationError) {
	WriteJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": err.Errors})
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// QueryInt reads an optional integer query parameter bounded by [min, max].
// max <= 0 disables the upper bound. Problems are recorded on verr and def is
// returned in their place.
func QueryInt(r *http.Request, name string, def, min, max int, verr *ValidationError) int {
	raw, ok := r.URL.Query()[name]
	if !ok || len(raw) == 0 {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw[0]))
	if err != nil {
		verr.Add(FieldError{
			Type:  TypeIntParsing,
			Loc:   []any{"query", name},
			Msg:   "Input should be a valid integer, unable to parse string as an integer",
			Input: raw[0],
		})
		return def
	}
	if v < min {
		verr.Add(FieldError{
			Type:  TypeGreaterThanEqual,
			Loc:   []any{"query", name},
			Msg:   fmt.Sprintf("Input should be greater than or equal to %d", min),
			Input: raw[0],
		})
		return def
	}
	if max > 0 && v > max {
		verr.Add(FieldError{
			Type:  TypeLessThanEqual,
			Loc:   []any{"query", name},
			Msg:   fmt.Sprintf("Input should be less than or equal to %d", max),
			Input: raw[0],
		})
		return def
	}
	return v
}

// PathInt parses a chi URL parameter as a signed integer.
func PathInt(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ValidationError{Errors: []FieldError{{
			Type:  TypeIntParsing,
			Loc:   []any{"path", name},
			Msg:   "Input should be a valid integer, unable to parse string as an integer",
			Input: raw,
		}}}
	}
	return v, nil
}

// Object is a decoded JSON object whose fields are checked one at a time.
type Object map[string]json.RawMessage

// DecodeObject reads the request body as a JSON object.
func DecodeObject(r *http.Request) (Object, error) {
	var obj Object
	err := json.NewDecoder(r.Body).Decode(&obj)
	switch {
	case errors.Is(err, io.EOF):
		return nil, missingBody()
	case err != nil:
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ValidationError{Errors: []FieldError{{
				Type: TypeObjectType,
				Loc:  []any{"body"},
				Msg:  "Input should be a valid dictionary or object to extract fields from",
			}}}
		}
		return nil, &ValidationError{Errors: []FieldError{{
			Type: TypeJSONInvalid,
			Loc:  []any{"body"},
			Msg:  "JSON decode error: " + err.Error(),
		}}}
	case obj == nil:
		return nil, missingBody()
	}
	return obj, nil
}

func missingBody() error {
	return &ValidationError{Errors: []FieldError{{
		Type: TypeMissing,
		Loc:  []any{"body"},
		Msg:  "Field required",
	}}}
}

// String returns the named field as a string. A missing or non-string field
// is recorded on verr.
func (o Object) String(name string, verr *ValidationError) string {
	raw, ok := o[name]
	if !ok {
		verr.Add(FieldError{
			Type: TypeMissing,
			Loc:  []any{"body", name},
			Msg:  "Field required",
		})
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || string(raw) == "null" {
		var input any
		_ = json.Unmarshal(raw, &input)
		verr.Add(FieldError{
			Type:  TypeStringType,
			Loc:   []any{"body", name},
			Msg:   "Input should be a valid string",
			Input: input,
		})
		return ""
	}
	return s
}
