package auth

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/loomwear/server/internal/auth"
	"github.com/loomwear/server/internal/errors"
	"github.com/markbates/goth/gothic"
)

const incorrectCredentials = "Incorrect email or password"

// exchanges the provider callback for a user profile.
// A variable so tests can substitute the gothic round trip.
var completeUserAuth = gothic.CompleteUserAuth

// RegisterHandler godoc
// @Summary Register a local account
// @Description Create a new user with email and password. Does not issue a token; log in afterwards.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration request"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /register [post]
func RegisterHandler(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if _, err := store.FindByEmail(c.Request.Context(), req.Email); err == nil {
			errors.BadRequest(c, "Email already registered", nil)
			return
		} else if !errors.IsNotFound(err) {
			errors.InternalError(c, "failed to check existing user", err)
			return
		}

		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			errors.InternalError(c, "failed to hash password", err)
			return
		}

		if _, err := store.Create(c.Request.Context(), req.Email, hashed, req.FullName); err != nil {
			// a concurrent registration can slip past the lookup above;
			// the unique constraint catches it
			if errors.IsUniqueViolation(err) {
				errors.BadRequest(c, "Email already registered", nil)
				return
			}

			errors.InternalError(c, "failed to create user", err)
			return
		}

		c.JSON(http.StatusCreated, MessageResponse{Message: "User created successfully"})
	}
}

// LoginJWTHandler godoc
// @Summary Password login
// @Description Verify email and password, return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /login/jwt [post]
func LoginJWTHandler(store UserStore, issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		// unknown email, federated-only account and wrong password all
		// answer identically so account existence never leaks
		user, err := store.FindByEmail(c.Request.Context(), req.Username)
		if err != nil {
			errors.Unauthorized(c, incorrectCredentials)
			return
		}

		if user.HashedPassword == nil {
			errors.Unauthorized(c, incorrectCredentials)
			return
		}

		if !auth.CheckPassword(req.Password, *user.HashedPassword) {
			errors.Unauthorized(c, incorrectCredentials)
			return
		}

		token, err := issuer.Issue(user.Email)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusOK, TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

// BeginGoogleAuthHandler godoc
// @Summary Start Google login
// @Description Redirect the caller to Google's authorization page
// @Tags auth
// @Success 302 {string} string "Redirect to provider"
// @Router /login/google [get]
func BeginGoogleAuthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// set provider in query for gothic
		q := c.Request.URL.Query()
		q.Add("provider", "google")
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// GoogleCallbackHandler godoc
// @Summary Google OAuth callback
// @Description Exchange the authorization code, resolve the user and redirect to the front-end with a token
// @Tags auth
// @Success 302 {string} string "Redirect to front-end with ?token=..."
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/google [get]
func GoogleCallbackHandler(store UserStore, issuer *auth.TokenIssuer, frontendURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Request.URL.Query()
		q.Add("provider", "google")
		c.Request.URL.RawQuery = q.Encode()

		// exchanges the single-use code and fetches the user info;
		// any failure is terminal for this login attempt
		gothUser, err := completeUserAuth(c.Writer, c.Request)
		if err != nil {
			errors.Unauthorized(c, "authentication failed")
			return
		}

		user, err := store.FindOrCreateByEmail(c.Request.Context(), gothUser.Email, gothUser.Name)
		if err != nil {
			errors.InternalError(c, "failed to create user", err)
			return
		}

		token, err := issuer.Issue(user.Email)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		c.Redirect(http.StatusFound, frontendURL+"/auth/callback?token="+url.QueryEscape(token))
	}
}

// GetCurrentUserHandler godoc
// @Summary Get current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/me [get]
// @Security BearerAuth
func GetCurrentUserHandler(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := auth.GetUserEmail(c)

		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		user, err := store.FindByEmail(c.Request.Context(), email)
		if err != nil {
			errors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}
