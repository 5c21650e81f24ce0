package user

import (
	"context"
	"errors"
)

// ErrNotFound indicates the referenced user does not exist.
var ErrNotFound = errors.New("user not found")

// UpdateParams is a partial update. Nil fields are left untouched.
type UpdateParams struct {
	FirstName *string
	Job       *string
}

// Repository defines the interface for user data storage. Every method runs
// in its own short transaction.
type Repository interface {
	Get(ctx context.Context, id int64) (*User, error)
	// List returns users ordered by ascending id, windowed by limit/offset.
	List(ctx context.Context, limit, offset int) ([]*User, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, u *User) (*User, error)
	Update(ctx context.Context, id int64, p UpdateParams) (*User, error)
	Delete(ctx context.Context, id int64) error
	// MaxID reports the highest assigned id; ok is false on an empty table.
	MaxID(ctx context.Context) (id int64, ok bool, err error)
}
