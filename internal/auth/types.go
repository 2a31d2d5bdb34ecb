package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carried inside every issued bearer token
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and validates signed bearer tokens.
// The signing secret is fixed at construction; rotating it invalidates
// all previously issued tokens.
type TokenIssuer struct {
	secret []byte
}
