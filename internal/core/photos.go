package core

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/mdobak/go-xerrors"
)

// CreatePicture stores the raw photo bytes under picID. The bytes are
// treated as opaque: format checking happens in the validation layer.
func (c *Core) CreatePicture(ctx context.Context, picID string, photo []byte) error {
	const insertSQL = `
		INSERT INTO ProfilPhotos (pic_id, photo_profil)
		VALUES (?, ?)
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	if _, err := c.db.ExecContext(ctx, insertSQL, picID, photo); err != nil {
		return xerrors.New(err)
	}
	return nil
}

// ModifyPicture replaces the bytes of an existing photo. The row must
// already exist: create-vs-update branching is the caller's job, based on
// whether the user already has a pic_id.
func (c *Core) ModifyPicture(ctx context.Context, picID string, photo []byte) error {
	const updateSQL = `
		UPDATE ProfilPhotos
		SET photo_profil = ?
		WHERE pic_id = ?
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	result, err := c.db.ExecContext(ctx, updateSQL, photo, picID)
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

func (c *Core) LoadPicture(ctx context.Context, picID string) ([]byte, error) {
	const selectSQL = `
		SELECT photo_profil
		FROM ProfilPhotos
		WHERE pic_id = ?
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var photo []byte
	if err := c.db.GetContext(ctx, &photo, selectSQL, picID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, xerrors.New(NoRecordFound)
		default:
			return nil, xerrors.New(err)
		}
	}
	return photo, nil
}

// GetPhotoID resolves an article's denormalized author string
// ("Prenom Nom") to that user's pic_id. Returns nil when the user exists
// but has no photo.
func (c *Core) GetPhotoID(ctx context.Context, fullName string) (*string, error) {
	const selectSQL = `
		SELECT pic_id
		FROM Utilisateurs
		WHERE prenom = ? AND nom = ?
	`

	prenom, nom, found := strings.Cut(fullName, " ")
	if !found {
		return nil, xerrors.New(NoRecordFound)
	}

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var picID sql.NullString
	if err := c.db.GetContext(ctx, &picID, selectSQL, prenom, nom); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, xerrors.New(NoRecordFound)
		default:
			return nil, xerrors.New(err)
		}
	}

	if !picID.Valid {
		return nil, nil
	}
	return &picID.String, nil
}
