package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mdobak/go-xerrors"
)

const queryTimeout = 3 * time.Second

var NoRecordFound = xerrors.Message("No record found")

// Core owns every read and write against the database. All methods take the
// caller's context and bound each statement with queryTimeout.
type Core struct {
	log *slog.Logger
	db  *sqlx.DB
}

func New(db *sqlx.DB, log *slog.Logger) *Core {
	return &Core{
		log: log,
		db:  db,
	}
}

// Open connects to the sqlite database at dsn. The pool is capped at a
// single connection: sqlite allows one writer, and it also keeps ":memory:"
// databases from being split across connections.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, xerrors.New(err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

func withQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}
