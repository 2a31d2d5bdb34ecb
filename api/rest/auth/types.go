package auth

import (
	"context"

	"github.com/loomwear/server/loomwear/users"
)

// interface for user persistence, satisfied by *users.Repository
type UserStore interface {
	Create(ctx context.Context, email, hashedPassword, fullName string) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	FindOrCreateByEmail(ctx context.Context, email, fullName string) (*users.User, error)
}

// RegisterRequest for creating a local account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

// LoginRequest for password login. The field is called username for
// compatibility with the front-end's form payload; it carries the email.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse returned after successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse wraps user data
type UserResponse struct {
	User *users.User `json:"user"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
