package directory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hacklabr/wordpress-linkedin-login/internal/db"
)

// PostgresDirectory is the database-backed user directory.
type PostgresDirectory struct {
	db *db.DB
}

func NewPostgresDirectory(db *db.DB) *PostgresDirectory {
	return &PostgresDirectory{db: db}
}

func (d *PostgresDirectory) FindByEmail(ctx context.Context, email string) (*User, error) {
	var (
		userID      uuid.UUID
		storedEmail string
	)

	err := d.db.QueryRowContext(ctx, `
		SELECT id, email FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email).Scan(&userID, &storedEmail)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &User{ID: userID.String(), Email: storedEmail}, nil
}

func (d *PostgresDirectory) CreateUser(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	var userID uuid.UUID
	err = d.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $1, $2)
		RETURNING id
	`, email, string(hash)).Scan(&userID)

	if err != nil {
		return "", err
	}

	return userID.String(), nil
}
