package users

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents an identity record in the system.
// HashedPassword is nil for users created via federated login who never
// set a local password.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	HashedPassword *string   `json:"-"`
	FullName       string    `json:"full_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
