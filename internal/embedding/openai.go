package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	openAIEmbeddingsURL = "https://api.openai.com/v1/embeddings"

	// DefaultModel and DefaultDimensions must agree with the width of
	// the vector columns the embeddings are stored in.
	DefaultModel      = "text-embedding-3-small"
	DefaultDimensions = 1536
)

// OpenAIClient embeds text through the OpenAI embeddings endpoint.
type OpenAIClient struct {
	apiKey  string
	model   string
	dims    int
	baseURL string
	http    *http.Client
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return NewOpenAIClientFor(apiKey, DefaultModel, DefaultDimensions)
}

// NewOpenAIClientFor targets a specific model and output width.
func NewOpenAIClientFor(apiKey, model string, dims int) *OpenAIClient {
	return &OpenAIClient{
		apiKey:  apiKey,
		model:   model,
		dims:    dims,
		baseURL: openAIEmbeddingsURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type embedRequest struct {
	Model      string `json:"model"`
	Input      string `json:"input"`
	Dimensions int    `json:"dimensions,omitempty"`
}

type embedResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Embed returns the embedding vector for text. The vector length is
// validated against the configured width so a model mismatch fails
// loudly instead of corrupting similarity search.
func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float32, error) {
	payload, err := json.Marshal(embedRequest{Model: c.model, Input: text, Dimensions: c.dims})
	if err != nil {
		return nil, fmt.Errorf("openai embed: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("openai embed: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai embed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("openai embed: status %d: %s", resp.StatusCode, string(detail))
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("openai embed: decode response: %w", err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("openai embed: %s", out.Error.Message)
	}
	if len(out.Data) == 0 {
		return nil, fmt.Errorf("openai embed: empty response")
	}

	vec := out.Data[0].Embedding
	if len(vec) != c.dims {
		return nil, fmt.Errorf("openai embed: got %d dimensions, want %d", len(vec), c.dims)
	}
	return vec, nil
}
