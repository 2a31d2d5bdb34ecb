package auth

import (
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/loomwear/server/internal/config"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
)

// sets up the Google OAuth provider and the gothic session store.
// Per-attempt OAuth state lives in the session cookie, so a login
// survives the redirect round trip without server-side storage.
func InitializeProviders(cfg *config.AuthConfig) {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	isHTTPS := strings.HasPrefix(cfg.BaseURL, "https://")

	// configure cookie for OAuth redirects
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300, // 5 minutes, enough for OAuth flow
		HttpOnly: true,
		Secure:   isHTTPS,
		SameSite: http.SameSiteLaxMode,
	}

	gothic.Store = store

	goth.UseProviders(
		google.New(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.BaseURL+"/auth/google",
			"openid", "email", "profile",
		),
	)
}
