package chat

import "context"

// interface for the relay core, satisfied by *relay.Relay
type Responder interface {
	Respond(ctx context.Context, message string, fn func(chunk string) error) error
}

// ChatRequest carries one user message
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChunkResponse is one framed unit of the streamed answer.
// The front-end consumes the body as newline-delimited JSON.
type ChunkResponse struct {
	ResponseChunk string `json:"response_chunk"`
}
