package credentials

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/baristalab/lattemeister/internal/common"
	"github.com/baristalab/lattemeister/internal/models"
	"github.com/baristalab/lattemeister/internal/storage"
)

func record(email, name, password string) Record {
	return Record{
		User: models.User{
			ID:        "id-" + email,
			Email:     email,
			Name:      name,
			CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		Password: password,
	}
}

func TestKVRepository_InsertAndFind(t *testing.T) {
	repo := NewKVRepository(storage.NewMemoryKV())
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, record("anna@example.com", "Anna", "secret")))

	rec, err := repo.FindByEmail(ctx, "anna@example.com")
	require.NoError(t, err)
	require.Equal(t, "Anna", rec.Name)
	require.Equal(t, "secret", rec.Password)
}

func TestKVRepository_FindUnknownEmail(t *testing.T) {
	repo := NewKVRepository(storage.NewMemoryKV())

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestKVRepository_ExistsByEmail(t *testing.T) {
	repo := NewKVRepository(storage.NewMemoryKV())
	ctx := context.Background()

	ok, err := repo.ExistsByEmail(ctx, "anna@example.com")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, repo.Insert(ctx, record("anna@example.com", "Anna", "secret")))

	ok, err = repo.ExistsByEmail(ctx, "anna@example.com")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestKVRepository_InsertDuplicate(t *testing.T) {
	repo := NewKVRepository(storage.NewMemoryKV())
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, record("anna@example.com", "Anna", "secret")))
	err := repo.Insert(ctx, record("anna@example.com", "Impostor", "other"))
	require.ErrorIs(t, err, common.ErrDuplicateUser)

	// The first record is untouched.
	rec, err := repo.FindByEmail(ctx, "anna@example.com")
	require.NoError(t, err)
	require.Equal(t, "Anna", rec.Name)
	require.Equal(t, "secret", rec.Password)
}

func TestKVRepository_SharedStore(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, NewKVRepository(kv).Insert(ctx, record("anna@example.com", "Anna", "secret")))

	// A second repository over the same store sees the record.
	rec, err := NewKVRepository(kv).FindByEmail(ctx, "anna@example.com")
	require.NoError(t, err)
	require.Equal(t, "anna@example.com", rec.Email)
}
