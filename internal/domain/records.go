package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNotArray is returned when a resource document is not a JSON array.
var ErrNotArray = errors.New("document is not a JSON array")

// FieldError describes a single invalid field on a record.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// ValidationError reports a malformed record inside a resource document.
type ValidationError struct {
	Resource Resource
	Index    int
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s[%d]: %v", e.Resource, e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// AsValidationError unwraps err into a ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// Record is implemented by every typed entity.
type Record interface {
	Validate() error
}

// RequireText returns a FieldError when value is blank.
func RequireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Reason: "is required"}
	}
	return nil
}

// FirstError returns the first non-nil error.
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// DecodeRecords parses a resource document into typed records.
// Every element must be an object carrying the required keys with non-null values
// and must pass the record's own validation.
func DecodeRecords[T Record](resource Resource, data []byte, required []string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%s: %w", resource, ErrNotArray)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", resource, err)
	}

	out := make([]T, 0, len(raw))
	for i, elem := range raw {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(elem, &fields); err != nil || fields == nil {
			return nil, &ValidationError{Resource: resource, Index: i, Err: errors.New("record is not an object")}
		}
		for _, key := range required {
			val, ok := fields[key]
			if !ok || string(bytes.TrimSpace(val)) == "null" {
				return nil, &ValidationError{Resource: resource, Index: i, Err: &FieldError{Field: key, Reason: "is required"}}
			}
		}

		var rec T
		if err := json.Unmarshal(elem, &rec); err != nil {
			return nil, &ValidationError{Resource: resource, Index: i, Err: err}
		}
		if err := rec.Validate(); err != nil {
			return nil, &ValidationError{Resource: resource, Index: i, Err: err}
		}
		out = append(out, rec)
	}
	return out, nil
}
