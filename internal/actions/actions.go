package actions

import (
	"context"

	"github.com/horizonbank/horizon/internal/api"
)

// Backend is the narrow contract actions need from the API client. It is an
// interface so handler tests can substitute a stub backend.
type Backend interface {
	Do(ctx context.Context, method, path string, data any, out any) (string, error)
}

// Service exposes one function per backend operation. Every function is a
// pass-through: call the adapter, decode, propagate errors unchanged. No
// action ever swallows a failure and returns an empty success value; the
// caller decides what a failure means for its page.
type Service struct {
	backend Backend
}

// New creates the action service over the given backend client.
func New(backend Backend) *Service {
	return &Service{backend: backend}
}

var _ Backend = (*api.Client)(nil)
