package config

// AuthConfig holds everything the auth service needs. Immutable after Load.
type AuthConfig struct {
	DatabaseURL        string
	JWTSecret          string
	SessionSecret      string
	GoogleClientID     string
	GoogleClientSecret string
	BaseURL            string
	FrontendURL        string
	Port               string
	Environment        string
}

// ChatConfig holds everything the chat relay service needs. Immutable after Load.
type ChatConfig struct {
	OllamaHost  string
	ChatModel   string
	FrontendURL string
	Port        string
	Environment string
}
