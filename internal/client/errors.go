package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/preston-bernstein/soccer-prophet/internal/domain"
)

// StatusError is returned when the data service answers with a non-200 status.
type StatusError struct {
	Resource   domain.Resource
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Resource, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Resource, e.StatusCode, e.Message)
}

// AsStatusError unwraps err into a StatusError when possible.
func AsStatusError(err error) (*StatusError, bool) {
	var sErr *StatusError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}

func newStatusError(resource domain.Resource, status int, body []byte) *StatusError {
	var payload struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	return &StatusError{Resource: resource, StatusCode: status, Message: msg}
}
