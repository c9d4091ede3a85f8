package core

import (
	"context"

	"github.com/mdobak/go-xerrors"
)

const schema = `
	CREATE TABLE IF NOT EXISTS Articles (
		id               TEXT PRIMARY KEY,
		titre            TEXT NOT NULL,
		auteur           TEXT NOT NULL,
		date_publication TEXT NOT NULL,
		contenu          TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS Utilisateurs (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		salt          TEXT NOT NULL,
		nom           TEXT NOT NULL,
		prenom        TEXT NOT NULL,
		courriel      TEXT NOT NULL,
		actif         BOOLEAN NOT NULL DEFAULT 1,
		pic_id        TEXT NULL REFERENCES ProfilPhotos (pic_id)
	);

	CREATE TABLE IF NOT EXISTS ProfilPhotos (
		pic_id       TEXT PRIMARY KEY,
		photo_profil BLOB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS Sessions (
		id_session  TEXT PRIMARY KEY,
		utilisateur TEXT NOT NULL
	);
`

// InitSchema creates the tables when they do not exist yet. User ids come
// from AUTOINCREMENT so that identity assignment is serialized by the engine
// instead of being computed from a row count.
func (c *Core) InitSchema(ctx context.Context) error {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	if _, err := c.db.ExecContext(ctx, schema); err != nil {
		return xerrors.New(err)
	}

	c.log.Info("Database schema initialized")
	return nil
}
