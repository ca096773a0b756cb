package agroai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// AdviceClient talks to the external farming-advice API.
type AdviceClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewAdviceClient(baseURL, apiKey string, timeout time.Duration) *AdviceClient {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &AdviceClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type adviceRequest struct {
	Question string `json:"question"`
	Context  string `json:"context,omitempty"`
}

type adviceResponse struct {
	Answer string `json:"answer"`
}

// Ask sends the question to the provider and returns its answer text.
func (c *AdviceClient) Ask(ctx context.Context, question, questionContext string) (string, error) {
	if c.baseURL == "" {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(adviceRequest{Question: question, Context: questionContext})
	if err != nil {
		return "", fmt.Errorf("advice: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/advice", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("advice: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("advice: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advice: unexpected status %d", resp.StatusCode)
	}

	var body adviceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("advice: decode response: %w", err)
	}
	return body.Answer, nil
}
