package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/horizonbank/horizon/internal/actions"
	"github.com/horizonbank/horizon/internal/api"
	"github.com/horizonbank/horizon/internal/domain"
)

// Status is the tri-state outcome of a session check. Every request starts
// at StatusUnknown and resolves exactly once; there is no refresh path.
type Status int

const (
	StatusUnknown Status = iota
	StatusAuthenticated
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Session is the per-request authentication state: the resolved user (when
// authenticated), the check outcome, and the raw backend token. It is never
// persisted beyond the request; the HttpOnly cookie holds only the token,
// and the user record is re-verified against the backend on every request.
type Session struct {
	User   *domain.User
	Status Status
	Token  string
}

// Authenticated reports whether protected content may be rendered for this
// session. Unknown is never authenticated.
func (s *Session) Authenticated() bool {
	return s != nil && s.Status == StatusAuthenticated && s.User != nil
}

// Manager resolves sessions against the backend through the action layer.
type Manager struct {
	actions *actions.Service
}

// NewManager creates a session manager over the given actions.
func NewManager(svc *actions.Service) *Manager {
	return &Manager{actions: svc}
}

// Verify checks the given token against the backend. A successful check
// yields an authenticated session carrying the user; an auth failure yields
// an unauthenticated one. Non-auth failures (backend down, transport) are
// returned to the caller so pages can surface an error state instead of
// silently treating the user as logged out.
func (m *Manager) Verify(ctx context.Context, token string) (*Session, error) {
	sess := &Session{Status: StatusUnknown, Token: token}
	if token == "" {
		sess.Status = StatusUnauthenticated
		return sess, nil
	}

	user, err := m.actions.Authenticate(api.WithToken(ctx, token))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			sess.Status = StatusUnauthenticated
			sess.Token = ""
			return sess, nil
		}
		return sess, err
	}

	sess.User = user
	sess.Status = StatusAuthenticated
	return sess, nil
}

// SignIn authenticates credentials and returns a fresh authenticated
// session. Any failure propagates; the caller renders it.
func (m *Manager) SignIn(ctx context.Context, params actions.SignInParams) (*Session, error) {
	user, token, err := m.actions.SignIn(ctx, params)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Status: StatusAuthenticated, Token: token}, nil
}

// SignUp registers a new user and returns their authenticated session.
func (m *Manager) SignUp(ctx context.Context, params actions.SignUpParams) (*Session, error) {
	user, token, err := m.actions.SignUp(ctx, params)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Status: StatusAuthenticated, Token: token}, nil
}

// Logout invalidates the backend session for the given token. Errors are
// logged, not returned: the local cookie is cleared regardless, and a dead
// backend must not trap the user in a half-logged-out state.
func (m *Manager) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := m.actions.Logout(api.WithToken(ctx, token)); err != nil {
		slog.Warn("Best-effort logout failed", "error", err)
	}
}
