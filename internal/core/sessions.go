package core

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mdobak/go-xerrors"
)

// SaveSession persists a freshly minted session token for a username. The
// Sessions table is the single source of truth for "logged in": there is no
// expiry and no in-memory copy, so revoking a session is a plain delete.
func (c *Core) SaveSession(ctx context.Context, idSession, username string) error {
	const insertSQL = `
		INSERT INTO Sessions (id_session, utilisateur)
		VALUES (?, ?)
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	if _, err := c.db.ExecContext(ctx, insertSQL, idSession, username); err != nil {
		return xerrors.New(err)
	}
	return nil
}

// DeleteSession removes a session token. Deleting an absent token is not an
// error.
func (c *Core) DeleteSession(ctx context.Context, idSession string) error {
	const deleteSQL = `
		DELETE FROM Sessions
		WHERE id_session = ?
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	if _, err := c.db.ExecContext(ctx, deleteSQL, idSession); err != nil {
		return xerrors.New(err)
	}
	return nil
}

// GetSession returns the username a session token belongs to.
func (c *Core) GetSession(ctx context.Context, idSession string) (string, error) {
	const selectSQL = `
		SELECT utilisateur
		FROM Sessions
		WHERE id_session = ?
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var username string
	if err := c.db.GetContext(ctx, &username, selectSQL, idSession); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return "", xerrors.New(NoRecordFound)
		default:
			return "", xerrors.New(err)
		}
	}
	return username, nil
}

func (c *Core) IsSessionActive(ctx context.Context, idSession string) (bool, error) {
	const selectSQL = `
		SELECT EXISTS (
			SELECT 1 FROM Sessions WHERE id_session = ?
		)
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var active bool
	if err := c.db.GetContext(ctx, &active, selectSQL, idSession); err != nil {
		return false, xerrors.New(err)
	}
	return active, nil
}
