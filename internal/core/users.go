package core

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/mdobak/go-xerrors"
	"github.com/poirierc/gazette/models"
)

var ErrDuplicateUsername = xerrors.Message("Duplicate username")

// Credentials is the subset of a user record needed to check a login.
type Credentials struct {
	PasswordHash string `db:"password_hash"`
	Salt         string `db:"salt"`
	Actif        bool   `db:"actif"`
}

// CreateUser inserts a new user with an already hashed password and returns
// the id assigned by the engine.
func (c *Core) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	const insertSQL = `
		INSERT INTO Utilisateurs (username, password_hash, salt, prenom, nom, courriel, actif, pic_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	result, err := c.db.ExecContext(ctx, insertSQL,
		user.Username, user.PasswordHash, user.Salt, user.Prenom, user.Nom, user.Courriel, user.Actif, user.PicID)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "UNIQUE constraint failed: Utilisateurs.username"):
			return 0, xerrors.New(ErrDuplicateUsername)
		default:
			return 0, xerrors.New(err)
		}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, xerrors.New(err)
	}

	user.ID = id
	c.log.Info("User created", "user_id", id, "username", user.Username)
	return id, nil
}

func (c *Core) GetUser(ctx context.Context, id int64) (*models.User, error) {
	const selectSQL = `
		SELECT id, username, password_hash, salt, nom, prenom, courriel, actif, pic_id
		FROM Utilisateurs
		WHERE id = ?
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	user := &models.User{}
	if err := c.db.GetContext(ctx, user, selectSQL, id); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, xerrors.New(NoRecordFound)
		default:
			return nil, xerrors.New(err)
		}
	}
	return user, nil
}

func (c *Core) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	const selectSQL = `
		SELECT id, username, password_hash, salt, nom, prenom, courriel, actif, pic_id
		FROM Utilisateurs
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var users []*models.User
	if err := c.db.SelectContext(ctx, &users, selectSQL); err != nil {
		return nil, xerrors.New(err)
	}
	return users, nil
}

// GetUserFullName returns "Prenom Nom" for a username, the form articles
// store as their author.
func (c *Core) GetUserFullName(ctx context.Context, username string) (string, error) {
	const selectSQL = `
		SELECT prenom, nom
		FROM Utilisateurs
		WHERE username = ?
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var row struct {
		Prenom string `db:"prenom"`
		Nom    string `db:"nom"`
	}
	if err := c.db.GetContext(ctx, &row, selectSQL, username); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return "", xerrors.New(NoRecordFound)
		default:
			return "", xerrors.New(err)
		}
	}
	return row.Prenom + " " + row.Nom, nil
}

func (c *Core) GetCredentials(ctx context.Context, username string) (*Credentials, error) {
	const selectSQL = `
		SELECT password_hash, salt, actif
		FROM Utilisateurs
		WHERE username = ?
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	creds := &Credentials{}
	if err := c.db.GetContext(ctx, creds, selectSQL, username); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, xerrors.New(NoRecordFound)
		default:
			return nil, xerrors.New(err)
		}
	}
	return creds, nil
}

// GetPassword returns the stored hash and salt of a user.
func (c *Core) GetPassword(ctx context.Context, id int64) (passwordHash, salt string, err error) {
	const selectSQL = `
		SELECT password_hash, salt
		FROM Utilisateurs
		WHERE id = ?
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var row struct {
		PasswordHash string `db:"password_hash"`
		Salt         string `db:"salt"`
	}
	if err := c.db.GetContext(ctx, &row, selectSQL, id); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return "", "", xerrors.New(NoRecordFound)
		default:
			return "", "", xerrors.New(err)
		}
	}
	return row.PasswordHash, row.Salt, nil
}

// ModifyUser updates a user's profile. A blank passwordHash means the
// password is unchanged: the stored hash and salt are fetched and written
// back untouched.
func (c *Core) ModifyUser(ctx context.Context, id int64, passwordHash, salt, prenom, nom, courriel string, picID *string) error {
	const updateSQL = `
		UPDATE Utilisateurs
		SET password_hash = ?, salt = ?, prenom = ?, nom = ?, courriel = ?, pic_id = ?
		WHERE id = ?
	`

	if passwordHash == "" {
		var err error
		passwordHash, salt, err = c.GetPassword(ctx, id)
		if err != nil {
			return err
		}
	}

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	result, err := c.db.ExecContext(ctx, updateSQL, passwordHash, salt, prenom, nom, courriel, picID, id)
	if err != nil {
		return xerrors.New(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return xerrors.New(err)
	}
	if affected == 0 {
		return xerrors.New(NoRecordFound)
	}

	c.log.Info("User updated", "user_id", id)
	return nil
}

// ModifyUserStatus flips the active flag. The negation of the stored value
// is computed by the engine in a single statement.
func (c *Core) ModifyUserStatus(ctx context.Context, id int64) error {
	const updateSQL = `
		UPDATE Utilisateurs
		SET actif = NOT actif
		WHERE id = ?
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	result, err := c.db.ExecContext(ctx, updateSQL, id)
	if err != nil {
		return xerrors.New(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return xerrors.New(err)
	}
	if affected == 0 {
		return xerrors.New(NoRecordFound)
	}
	return nil
}

func (c *Core) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	const selectSQL = `
		SELECT EXISTS (
			SELECT 1 FROM Utilisateurs WHERE username = ?
		)
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var taken bool
	if err := c.db.GetContext(ctx, &taken, selectSQL, username); err != nil {
		return false, xerrors.New(err)
	}
	return taken, nil
}
