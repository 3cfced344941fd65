package actions

import (
	"context"
	"net/http"

	"github.com/horizonbank/horizon/internal/domain"
)

// SignInParams carries the credentials for an existing user.
type SignInParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpParams carries the fields collected on the registration form.
// The social security number is deliberately never sent to the backend.
type SignUpParams struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Address1    string `json:"address1,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

// Authenticate verifies the session credential on the context against the
// backend and returns the current user.
func (s *Service) Authenticate(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if _, err := s.backend.Do(ctx, http.MethodGet, "auth/authenticate", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SignIn exchanges credentials for a user record and a fresh session token.
func (s *Service) SignIn(ctx context.Context, params SignInParams) (*domain.User, string, error) {
	var user domain.User
	token, err := s.backend.Do(ctx, http.MethodPost, "auth/signin", params, &user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// SignUp registers a new user and returns the created record plus the
// session token the backend issued alongside it.
func (s *Service) SignUp(ctx context.Context, params SignUpParams) (*domain.User, string, error) {
	var user domain.User
	token, err := s.backend.Do(ctx, http.MethodPost, "auth/signup", params, &user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Logout invalidates the backend session. Callers treat this as
// best-effort: a failed logout never blocks clearing the local cookie.
func (s *Service) Logout(ctx context.Context) error {
	_, err := s.backend.Do(ctx, http.MethodPost, "auth/logout", struct{}{}, nil)
	return err
}
