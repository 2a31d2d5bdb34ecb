package chat

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canned Responder emitting fixed chunks
type mockResponder struct {
	chunks []string
	err    error
}

func (m *mockResponder) Respond(_ context.Context, _ string, fn func(chunk string) error) error {
	for _, chunk := range m.chunks {
		if err := fn(chunk); err != nil {
			return err
		}
	}

	return m.err
}

func setupRouter(relay Responder) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router, relay)

	return router
}

func postChat(router *gin.Engine, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body) //nolint:errcheck // test fixture
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

// decodes the newline-delimited JSON body into its chunks
func decodeChunks(t *testing.T, body string) []string {
	t.Helper()

	var chunks []string

	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var chunk ChunkResponse
		require.NoError(t, json.Unmarshal([]byte(line), &chunk))
		chunks = append(chunks, chunk.ResponseChunk)
	}

	return chunks
}

func TestChatHandler_StreamsChunks(t *testing.T) {
	router := setupRouter(&mockResponder{chunks: []string{"Our ", "t-shirts ", "come ", "in ", "S-XXL."}})

	w := postChat(router, ChatRequest{Message: "what sizes do you have?"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/x-ndjson", w.Header().Get("Content-Type"))

	chunks := decodeChunks(t, w.Body.String())
	assert.Equal(t, []string{"Our ", "t-shirts ", "come ", "in ", "S-XXL."}, chunks)
	assert.Equal(t, "Our t-shirts come in S-XXL.", strings.Join(chunks, ""))
}

func TestChatHandler_InvalidBody(t *testing.T) {
	router := setupRouter(&mockResponder{})

	w := postChat(router, gin.H{"mesage": "typo"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// a backend failure mid-stream must leave already-sent chunks intact and
// simply end the stream
func TestChatHandler_UpstreamFailureTerminatesStream(t *testing.T) {
	router := setupRouter(&mockResponder{
		chunks: []string{"partial "},
		err:    fmt.Errorf("model backend unreachable"),
	})

	w := postChat(router, ChatRequest{Message: "hello"})

	require.Equal(t, http.StatusOK, w.Code)

	chunks := decodeChunks(t, w.Body.String())
	assert.Equal(t, []string{"partial "}, chunks)
}
