package relay

import (
	"github.com/loomwear/server/internal/llm"
)

// orchestrates relevance classification and response generation
type Relay struct {
	classifier llm.Generator
	generator  llm.StreamGenerator
}

// result shape requested from the classification call.
// Relevant is a pointer so a missing field is distinguishable from false.
type relevanceResult struct {
	Relevant *bool `json:"relevant"`
}
