package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/loomwear/server/internal/auth"
)

// registers all authentication routes.
// Paths are root-level for compatibility with the existing front-end.
func RegisterRoutes(router gin.IRouter, store UserStore, issuer *auth.TokenIssuer, frontendURL string) {
	router.POST("/register", RegisterHandler(store))
	router.POST("/login/jwt", LoginJWTHandler(store, issuer))
	router.GET("/login/google", BeginGoogleAuthHandler())
	router.GET("/auth/google", GoogleCallbackHandler(store, issuer, frontendURL))
	router.GET("/auth/me", issuer.Middleware(), GetCurrentUserHandler(store))
}
