package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a structured non-2xx answer from the backend. On a 422 gate
// rejection the backend re-validates the VOP gate with its own state and
// reports it through VopRequired/VopPending.
type APIError struct {
	StatusCode  int    `json:"-"`
	Message     string `json:"error"`
	VopRequired bool   `json:"vop_required,omitempty"`
	VopPending  int    `json:"vop_pending,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %s (HTTP %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("backend: HTTP %d", e.StatusCode)
}

// IsGateRejection reports whether the error is the backend's authoritative
// VOP gate refusal.
func (e *APIError) IsGateRejection() bool {
	return e.StatusCode == http.StatusUnprocessableEntity && e.VopRequired
}

// AsAPIError unwraps err into an APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}
