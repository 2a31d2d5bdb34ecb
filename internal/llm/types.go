package llm

import "context"

// represents a single conversation turn
type Message struct {
	Role    string `json:"role"`    // "system", "user" or "assistant"
	Content string `json:"content"` // message content
}

// contains the inputs for one model call
type ChatRequest struct {
	Messages []Message
	Format   string // "json" constrains the model to emit a JSON object
}

// produces one complete response for a chat request
type Generator interface {
	Chat(ctx context.Context, req ChatRequest) (string, error)
	Model() string
}

// produces a response incrementally, invoking fn once per content chunk
// in emission order. Returns once the model reports completion or fn
// returns an error.
type StreamGenerator interface {
	ChatStream(ctx context.Context, req ChatRequest, fn func(chunk string) error) error
}

// OllamaConfig holds connection settings for a local Ollama runtime
type OllamaConfig struct {
	Host  string // e.g., "http://localhost:11434"
	Model string // e.g., "llama3:8b"
}
