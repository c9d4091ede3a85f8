package auth

import (
	"context"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"github.com/mdobak/go-xerrors"
	"github.com/poirierc/gazette/internal/core"
)

// ErrInvalidCredentials covers every login failure: unknown username, wrong
// password and inactive account all look the same to the caller, so the
// response does not leak which one it was.
var ErrInvalidCredentials = xerrors.Message("Mauvais username/password.")

// Auth is the session gate. It holds no state of its own: the Sessions
// table is the ground truth, so a revoked token is rejected on the very
// next check.
type Auth struct {
	core *core.Core
}

func New(c *core.Core) *Auth {
	return &Auth{core: c}
}

// Login checks the password against the stored salted digest and, when the
// account is active, mints an opaque session token and persists it.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	creds, err := a.core.GetCredentials(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, core.NoRecordFound):
			return "", xerrors.New(ErrInvalidCredentials)
		default:
			return "", err
		}
	}

	if HashPassword(password, creds.Salt) != creds.PasswordHash || !creds.Actif {
		return "", xerrors.New(ErrInvalidCredentials)
	}

	token := NewToken()
	if err := a.core.SaveSession(ctx, token, username); err != nil {
		return "", err
	}
	return token, nil
}

// Logout deletes the token's session row. Idempotent: logging out an
// already absent token succeeds.
func (a *Auth) Logout(ctx context.Context, token string) error {
	return a.core.DeleteSession(ctx, token)
}

// IsAuthenticated reports whether the token maps to an active session. A
// non-nil error means the store could not be consulted, never "no".
func (a *Auth) IsAuthenticated(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return a.core.IsSessionActive(ctx, token)
}

// NewToken mints a random opaque token, 32 hex characters.
func NewToken() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
