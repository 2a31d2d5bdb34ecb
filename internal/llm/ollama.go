package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	ollamaChatPath = "/api/chat"
	defaultHost    = "http://localhost:11434"
	defaultModel   = "llama3:8b"
)

// shared HTTP client for Ollama API calls.
// No total timeout: streamed generations legitimately run for minutes,
// cancellation happens through the request context instead.
var ollamaHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for Ollama calls (10 requests/second with burst capacity of 5)
var ollamaRateLimiter = rate.NewLimiter(10, 5)

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
	Format   string    `json:"format,omitempty"`
}

type chatResponse struct {
	Model   string  `json:"model"`
	Message Message `json:"message"`
	Done    bool    `json:"done"`
}

// OllamaClient talks to a locally hosted Ollama runtime
type OllamaClient struct {
	config     OllamaConfig
	httpClient *http.Client
}

func NewOllamaClient(config OllamaConfig) *OllamaClient {
	if config.Host == "" {
		config.Host = defaultHost
	}

	if config.Model == "" {
		config.Model = defaultModel
	}

	return &OllamaClient{
		config:     config,
		httpClient: ollamaHTTPClient,
	}
}

func (c *OllamaClient) Model() string {
	return c.config.Model
}

// sends a non-streaming chat request and returns the full response text
func (c *OllamaClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	resp, err := c.send(ctx, req, false)
	if err != nil {
		return "", err
	}

	defer resp.Body.Close() //nolint:errcheck

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return chatResp.Message.Content, nil
}

// sends a streaming chat request, invoking fn for every content chunk as
// Ollama emits it. The response body is newline-delimited JSON objects.
func (c *OllamaClient) ChatStream(ctx context.Context, req ChatRequest, fn func(chunk string) error) error {
	resp, err := c.send(ctx, req, true)
	if err != nil {
		return err
	}

	defer resp.Body.Close() //nolint:errcheck

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var chatResp chatResponse
		if err := json.Unmarshal(line, &chatResp); err != nil {
			return fmt.Errorf("failed to decode stream line: %w", err)
		}

		if chatResp.Message.Content != "" {
			if err := fn(chatResp.Message.Content); err != nil {
				return err
			}
		}

		if chatResp.Done {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stream: %w", err)
	}

	return nil
}

func (c *OllamaClient) send(ctx context.Context, req ChatRequest, stream bool) (*http.Response, error) {
	reqBody := chatRequest{
		Model:    c.config.Model,
		Messages: req.Messages,
		Stream:   stream,
		Format:   req.Format,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.config.Host+ollamaChatPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	// rate limiting
	if err := ollamaRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		resp.Body.Close()                //nolint:errcheck,gosec
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return resp, nil
}
