package relay

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/loomwear/server/internal/llm"
)

// implements llm.Generator for testing
type mockGenerator struct {
	chatFunc func(ctx context.Context, req llm.ChatRequest) (string, error)
}

func (m *mockGenerator) Chat(ctx context.Context, req llm.ChatRequest) (string, error) {
	if m.chatFunc != nil {
		return m.chatFunc(ctx, req)
	}

	return `{"relevant": true}`, nil
}

func (m *mockGenerator) Model() string {
	return "mock-model"
}

// implements llm.StreamGenerator for testing
type mockStreamer struct {
	chunks []string
	err    error
	called bool
}

func (m *mockStreamer) ChatStream(_ context.Context, _ llm.ChatRequest, fn func(chunk string) error) error {
	m.called = true

	for _, chunk := range m.chunks {
		if err := fn(chunk); err != nil {
			return err
		}
	}

	return m.err
}

func collect(t *testing.T, r *Relay, message string) ([]string, error) {
	t.Helper()

	var chunks []string

	err := r.Respond(context.Background(), message, func(chunk string) error {
		chunks = append(chunks, chunk)
		return nil
	})

	return chunks, err
}

func TestClassify_Relevant(t *testing.T) {
	r := New(&mockGenerator{}, &mockStreamer{})

	if !r.Classify(context.Background(), "what t-shirt sizes do you have?") {
		t.Error("expected message to classify as relevant")
	}
}

func TestClassify_NotRelevant(t *testing.T) {
	classifier := &mockGenerator{
		chatFunc: func(_ context.Context, _ llm.ChatRequest) (string, error) {
			return `{"relevant": false}`, nil
		},
	}
	r := New(classifier, &mockStreamer{})

	if r.Classify(context.Background(), "write me a poem") {
		t.Error("expected message to classify as not relevant")
	}
}

func TestClassify_FailsClosedOnInvalidJSON(t *testing.T) {
	classifier := &mockGenerator{
		chatFunc: func(_ context.Context, _ llm.ChatRequest) (string, error) {
			return "certainly! here is my answer", nil
		},
	}
	r := New(classifier, &mockStreamer{})

	if r.Classify(context.Background(), "anything") {
		t.Error("unparsable classification must be treated as not relevant")
	}
}

func TestClassify_FailsClosedOnMissingField(t *testing.T) {
	classifier := &mockGenerator{
		chatFunc: func(_ context.Context, _ llm.ChatRequest) (string, error) {
			return `{"verdict": true}`, nil
		},
	}
	r := New(classifier, &mockStreamer{})

	if r.Classify(context.Background(), "anything") {
		t.Error("missing relevant field must be treated as not relevant")
	}
}

func TestClassify_FailsClosedOnUpstreamError(t *testing.T) {
	classifier := &mockGenerator{
		chatFunc: func(_ context.Context, _ llm.ChatRequest) (string, error) {
			return "", fmt.Errorf("connection refused")
		},
	}
	r := New(classifier, &mockStreamer{})

	if r.Classify(context.Background(), "anything") {
		t.Error("upstream failure must be treated as not relevant")
	}
}

func TestRespond_RelevantStreamsGenerator(t *testing.T) {
	streamer := &mockStreamer{chunks: []string{"We ", "ship ", "worldwide."}}
	r := New(&mockGenerator{}, streamer)

	chunks, err := collect(t, r, "what are the delivery costs?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !streamer.called {
		t.Fatal("expected generator stream to be used")
	}

	got := strings.Join(chunks, "")
	if got != "We ship worldwide." {
		t.Errorf("unexpected response: %q", got)
	}
}

func TestRespond_NotRelevantStreamsCannedReply(t *testing.T) {
	classifier := &mockGenerator{
		chatFunc: func(_ context.Context, _ llm.ChatRequest) (string, error) {
			return `{"relevant": false}`, nil
		},
	}
	streamer := &mockStreamer{chunks: []string{"should not appear"}}
	r := New(classifier, streamer)

	chunks, err := collect(t, r, "tell me about the weather")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if streamer.called {
		t.Error("generator must not be called for off-topic messages")
	}

	if len(chunks) < 2 {
		t.Errorf("expected a multi-chunk stream, got %d chunks", len(chunks))
	}

	if got := strings.Join(chunks, ""); got != cannedReply {
		t.Errorf("chunks must concatenate exactly to the canned reply, got %q", got)
	}
}

// an unparsable classifier response must produce the exact same output
// as an explicit not-relevant verdict
func TestRespond_FailClosedMatchesNotRelevantPath(t *testing.T) {
	notRelevant := New(&mockGenerator{
		chatFunc: func(_ context.Context, _ llm.ChatRequest) (string, error) {
			return `{"relevant": false}`, nil
		},
	}, &mockStreamer{})

	garbled := New(&mockGenerator{
		chatFunc: func(_ context.Context, _ llm.ChatRequest) (string, error) {
			return "<html>502 Bad Gateway</html>", nil
		},
	}, &mockStreamer{})

	expected, err := collect(t, notRelevant, "off topic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := collect(t, garbled, "off topic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(expected) != len(got) {
		t.Fatalf("chunk counts differ: %d vs %d", len(expected), len(got))
	}

	for i := range expected {
		if expected[i] != got[i] {
			t.Errorf("chunk %d differs: %q vs %q", i, expected[i], got[i])
		}
	}
}

func TestRespond_GeneratorErrorTerminatesStream(t *testing.T) {
	streamer := &mockStreamer{
		chunks: []string{"partial "},
		err:    fmt.Errorf("model backend unreachable"),
	}
	r := New(&mockGenerator{}, streamer)

	chunks, err := collect(t, r, "what t-shirts do you sell?")

	if err == nil {
		t.Fatal("expected the upstream error to propagate")
	}

	// chunks delivered before the failure stand
	if got := strings.Join(chunks, ""); got != "partial " {
		t.Errorf("unexpected partial output: %q", got)
	}
}

func TestStreamCanned_PreCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var chunks []string

	err := streamCanned(ctx, func(chunk string) error {
		chunks = append(chunks, chunk)
		return nil
	})

	if err == nil {
		t.Error("expected context error after cancellation")
	}

	if len(chunks) != 0 {
		t.Errorf("a pre-cancelled context must produce no output, got %d chunks", len(chunks))
	}
}

func TestStreamCanned_CancelledMidStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var chunks []string

	err := streamCanned(ctx, func(chunk string) error {
		chunks = append(chunks, chunk)
		cancel()
		return nil
	})

	if err == nil {
		t.Error("expected context error after cancellation")
	}

	if len(chunks) != 1 {
		t.Errorf("expected the stream to stop after the first chunk, got %d chunks", len(chunks))
	}
}
