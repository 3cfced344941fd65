package api

import (
	"fmt"
	"net/http"

	"github.com/horizonbank/horizon/internal/domain"
)

// Error is the single normalized error shape raised by the client for any
// failed backend call. It carries the backend-supplied message when one was
// present, otherwise the transport-level error text.
type Error struct {
	// Status is the HTTP status code, or 0 for transport failures that
	// never produced a response.
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// Unwrap maps auth and not-found statuses onto the domain sentinels so
// callers can branch with errors.Is without inspecting status codes.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthenticated
	case http.StatusNotFound:
		return domain.ErrNotFound
	}
	return nil
}
