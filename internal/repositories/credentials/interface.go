// Package credentials stores the account records used for login and
// registration matching. A record is the user's profile plus the password,
// mirroring the mock user table of the original application; the password
// must never leave this package's callers in any User-shaped value.
// The store is injectable so tests can substitute an in-memory fake.
package credentials

import (
	"context"

	"github.com/baristalab/lattemeister/internal/models"
)

// Record pairs a user profile with its login password.
type Record struct {
	models.User
	Password string `json:"password"`
}

// Repository defines credential lookup and insertion.
//
// Contract:
//   - FindByEmail returns common.ErrNotFound when no record matches.
//   - Insert returns common.ErrDuplicateUser when the email is already taken.
//   - ExistsByEmail never fails on absence; it reports it.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Record, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, rec Record) error
}
