package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func (c *Client) postGenerate(ctx context.Context, req GenerationRequest) (*http.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("request failed: %s", resp.Status)
	}
	return resp, nil
}

// GenerateStream issues the request and renders the streamed reply to
// out incrementally. Text already written to out stays written even
// when an error is returned mid-stream.
func (c *Client) GenerateStream(ctx context.Context, req GenerationRequest, out io.Writer) error {
	resp, err := c.postGenerate(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return ConsumeStream(resp.Body, out)
}

// Generate issues a non-streaming request and returns the full reply.
func (c *Client) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	resp, err := c.postGenerate(ctx, req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var reply struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return reply.Response, nil
}
