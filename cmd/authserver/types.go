package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/loomwear/server/internal/auth"
	"github.com/loomwear/server/internal/config"
	"github.com/loomwear/server/loomwear/users"
)

// holds all dependencies and state for the auth service
type Server struct {
	db       *pgxpool.Pool
	config   *config.AuthConfig
	userRepo *users.Repository
	issuer   *auth.TokenIssuer
	router   *gin.Engine
}
