package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupSQLite(t *testing.T) *SQLiteKV {
	t.Helper()

	db, err := InitDatabase(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteKV(db)
}

func TestSQLiteKV_GetAbsentReturnsNil(t *testing.T) {
	kv := setupSQLite(t)

	v, err := kv.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteKV_SetOverwritesAndDeletes(t *testing.T) {
	kv := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("v1")))
	require.NoError(t, kv.Set(ctx, "k", []byte("v2")))

	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), v)

	require.NoError(t, kv.Delete(ctx, "k"))
	v, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteKV_KeysAreIndependent(t *testing.T) {
	kv := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, SubmissionsKey("u1"), []byte("[1]")))
	require.NoError(t, kv.Set(ctx, SubmissionsKey("u2"), []byte("[2]")))
	require.NoError(t, kv.Delete(ctx, SubmissionsKey("u1")))

	v, err := kv.Get(ctx, SubmissionsKey("u2"))
	require.NoError(t, err)
	require.Equal(t, []byte("[2]"), v)
}
