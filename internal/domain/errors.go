package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common failures regardless of which backend call produced them.
var (
	// ErrUnauthenticated indicates the backend rejected the session credential.
	// Any verify, sign-in, or sign-up failure resolves to this rather than a
	// generic failure, so callers can treat it as "not authenticated".
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrNotFound indicates the backend has no record for the requested
	// resource, e.g. an unknown shareable account id.
	ErrNotFound = errors.New("requested resource not found")
)
