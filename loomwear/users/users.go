package users

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// inserts a new user with a local password hash.
// The unique constraint on email surfaces duplicates as a pg error.
func (r *Repository) Create(ctx context.Context, email, hashedPassword, fullName string) (*User, error) {
	var user User

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		email,
		hashedPassword,
		fullName,
	).Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.FullName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// finds a user by their email
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryFindByEmail, email).Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.FullName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// finds a user by email or creates one without a password hash.
// Used by federated login; concurrent first-time logins for the same
// email collapse onto one row via the upsert. The conflict arm is a
// no-op assignment so an existing record is returned unchanged.
func (r *Repository) FindOrCreateByEmail(ctx context.Context, email, fullName string) (*User, error) {
	var user User

	err := r.db.QueryRow(
		ctx,
		queryFindOrCreateByEmail,
		email,
		fullName,
	).Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.FullName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}
