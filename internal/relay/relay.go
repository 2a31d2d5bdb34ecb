package relay

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/loomwear/server/internal/llm"
	"github.com/loomwear/server/internal/logger"
)

func New(classifier llm.Generator, generator llm.StreamGenerator) *Relay {
	return &Relay{
		classifier: classifier,
		generator:  generator,
	}
}

// asks the model whether the message is on-topic for the store.
// Fails closed: any upstream error, unparsable response or missing field
// is treated as not relevant.
func (r *Relay) Classify(ctx context.Context, message string) bool {
	response, err := r.classifier.Chat(ctx, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: "system", Content: classificationPrompt},
			{Role: "user", Content: message},
		},
		Format: "json",
	})

	if err != nil {
		logger.Warn("classification call failed, treating message as not relevant", "error", err)
		return false
	}

	var result relevanceResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(response)), &result); err != nil {
		logger.Warn("classification response unparsable, treating message as not relevant", "error", err)
		return false
	}

	if result.Relevant == nil {
		logger.Warn("classification response missing relevant field, treating message as not relevant")
		return false
	}

	return *result.Relevant
}

// classifies the message, then streams either a real model response or
// the canned refusal through fn, one chunk per call.
// Once streaming has started an upstream failure terminates the stream;
// chunks already delivered stand.
func (r *Relay) Respond(ctx context.Context, message string, fn func(chunk string) error) error {
	if !r.Classify(ctx, message) {
		return streamCanned(ctx, fn)
	}

	return r.generator.ChatStream(ctx, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: "system", Content: generationPrompt},
			{Role: "user", Content: message},
		},
	}, fn)
}
