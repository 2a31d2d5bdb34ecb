package relay

import (
	"context"
	"strings"
	"time"
)

// fixed refusal sentence for off-topic messages
const cannedReply = "I'm sorry, but I can only answer questions about our store, products, orders, payments, returns and deliveries."

// inter-chunk delay, mimics the pacing of a real model stream
const cannedChunkDelay = 40 * time.Millisecond

// emits the canned reply word by word so off-topic responses have the
// same streamed shape as real ones. The concatenation of all chunks is
// exactly cannedReply.
func streamCanned(ctx context.Context, fn func(chunk string) error) error {
	// a request canceled before streaming begins produces no output
	if err := ctx.Err(); err != nil {
		return err
	}

	words := strings.Split(cannedReply, " ")

	for i, word := range words {
		chunk := word
		if i < len(words)-1 {
			chunk += " "
		}

		if err := fn(chunk); err != nil {
			return err
		}

		if i == len(words)-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cannedChunkDelay):
		}
	}

	return nil
}
