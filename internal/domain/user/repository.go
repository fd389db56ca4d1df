package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrEmailDuplicate = errors.New("email already registered")
)

type Repository interface {
	// CreateUser stores the user together with its skills.
	CreateUser(ctx context.Context, u User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// UpdateProfile applies every non-nil field of upd in one transaction.
	UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) error
}

// ProfileUpdate carries the editable profile fields. Skills replaces the whole
// set and must already be deduped.
type ProfileUpdate struct {
	Name   *string
	Skills *[]string
}
