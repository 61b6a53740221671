package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// ListModels queries the models known to the server. The native
// /api/tags endpoint is tried first because it carries size metadata;
// when it is unavailable the OpenAI-compatible /v1/models endpoint is
// used as a fallback.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	models, err := c.listModelsNative(ctx)
	if err == nil && len(models) > 0 {
		return models, nil
	}

	fallback, fbErr := c.listModelsOpenAI(ctx)
	if fbErr != nil {
		if err != nil {
			return nil, err
		}
		return nil, fbErr
	}
	return fallback, nil
}

// listModelsNative queries the Ollama-specific /api/tags endpoint.
// Missing fields in the response are treated as absent, not as errors.
func (c *Client) listModelsNative(ctx context.Context) ([]ModelInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/api/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed: %s", resp.Status)
	}

	var tagsResp struct {
		Models []struct {
			Name string `json:"name"`
			Size int64  `json:"size"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tagsResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	models := make([]ModelInfo, 0, len(tagsResp.Models))
	for _, m := range tagsResp.Models {
		models = append(models, ModelInfo{Name: m.Name, Size: m.Size})
	}
	return models, nil
}

// listModelsOpenAI queries the OpenAI-compatible /v1/models endpoint.
func (c *Client) listModelsOpenAI(ctx context.Context) ([]ModelInfo, error) {
	cfg := openai.DefaultConfig("")
	cfg.BaseURL = c.host + "/v1"
	cfg.HTTPClient = c.httpClient

	list, err := openai.NewClientWithConfig(cfg).ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	models := make([]ModelInfo, 0, len(list.Models))
	for _, m := range list.Models {
		models = append(models, ModelInfo{Name: m.ID})
	}
	return models, nil
}
