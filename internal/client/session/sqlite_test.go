package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/localdb"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, dsn string) (*SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := localdb.Init(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db), db
}

func TestStore_EmptyByDefault(t *testing.T) {
	store, _ := openStore(t, filepath.Join(t.TempDir(), "session.db"))
	ctx := context.Background()

	sess, err := store.Get(ctx)
	require.NoError(t, err)
	require.Empty(t, sess.Token)
	require.Empty(t, sess.AccountID)
	require.False(t, store.Authenticated(ctx))
}

func TestStore_SetGetClear(t *testing.T) {
	store, _ := openStore(t, filepath.Join(t.TempDir(), "session.db"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, Session{Token: "tok", AccountID: "acc-1"}))

	sess, err := store.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, Session{Token: "tok", AccountID: "acc-1"}, sess)
	require.True(t, store.Authenticated(ctx))

	token, err := store.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok", token)

	require.NoError(t, store.Clear(ctx))
	require.False(t, store.Authenticated(ctx))
	sess, err = store.Get(ctx)
	require.NoError(t, err)
	require.Empty(t, sess.Token)
}

func TestStore_SetOverwrites(t *testing.T) {
	store, _ := openStore(t, filepath.Join(t.TempDir(), "session.db"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, Session{Token: "old", AccountID: "acc-1"}))
	require.NoError(t, store.Set(ctx, Session{Token: "new", AccountID: "acc-2"}))

	sess, err := store.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, Session{Token: "new", AccountID: "acc-2"}, sess)
}

func TestStore_SurvivesReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	store, db := openStore(t, dsn)
	require.NoError(t, store.Set(ctx, Session{Token: "tok", AccountID: "acc-1"}))
	require.NoError(t, db.Close())

	reopened, _ := openStore(t, dsn)
	sess, err := reopened.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok", sess.Token)
	require.Equal(t, "acc-1", sess.AccountID)
}
