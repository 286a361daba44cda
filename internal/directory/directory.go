package directory

import (
	"context"
	"errors"
)

// ErrNotFound means no account matches the given email.
var ErrNotFound = errors.New("directory: user not found")

type User struct {
	ID    string
	Email string
}

// Directory is the user-directory collaborator. The resolver decides;
// the directory performs the actual account reads and writes.
type Directory interface {
	// FindByEmail looks up an account by email, case-insensitive exact
	// match on the stored address. Returns ErrNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// CreateUser provisions an account using the email as both username
	// and login identity. The password is stored hashed and never
	// surfaced again.
	CreateUser(ctx context.Context, email, password string) (userID string, err error)
}
