package credentials

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/baristalab/lattemeister/internal/common"
	"github.com/baristalab/lattemeister/internal/storage"
)

// KVRepository keeps the credential table as one JSON array under a global
// storage key. Every write rewrites the full array, matching the
// last-write-wins discipline of the rest of the persisted state.
type KVRepository struct {
	store storage.KV
}

// NewKVRepository constructs a Repository over the given key-value store.
func NewKVRepository(store storage.KV) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) load(ctx context.Context) ([]Record, error) {
	raw, err := r.store.Get(ctx, storage.CredentialsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var recs []Record
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("failed to decode credentials: %w", err)
	}
	return recs, nil
}

func (r *KVRepository) save(ctx context.Context, recs []Record) error {
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := r.store.Set(ctx, storage.CredentialsKey, raw); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}

func (r *KVRepository) FindByEmail(ctx context.Context, email string) (*Record, error) {
	recs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if rec.Email == email {
			return &rec, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *KVRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	recs, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for _, rec := range recs {
		if rec.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *KVRepository) Insert(ctx context.Context, rec Record) error {
	recs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range recs {
		if existing.Email == rec.Email {
			return common.ErrDuplicateUser
		}
	}
	return r.save(ctx, append(recs, rec))
}
