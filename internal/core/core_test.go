package core

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestCore(t *testing.T) *Core {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	c := New(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, c.InitSchema(context.Background()))

	return c
}
