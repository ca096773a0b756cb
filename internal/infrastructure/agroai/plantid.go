// Package agroai contains the outbound HTTP clients for the external
// plant-identification and farming-advice providers. Each call is made
// exactly once with a bounded timeout; retries are the caller's decision
// (and by design there are none — failures degrade to local fallbacks).
package agroai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/agrilink/farm-market/internal/core/ports"
)

// ErrNotConfigured is returned when a provider URL is missing. The advisor
// treats it like any other provider failure and serves fallback content.
var ErrNotConfigured = errors.New("provider not configured")

const defaultRequestTimeout = 10 * time.Second

// PlantIDClient talks to a plant.id-style identification API.
type PlantIDClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewPlantIDClient(baseURL, apiKey string, timeout time.Duration) *PlantIDClient {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &PlantIDClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type plantIDRequest struct {
	Images           []string `json:"images"`
	HealthAssessment bool     `json:"health_assessment"`
	DiseaseDetails   []string `json:"disease_details,omitempty"`
}

type plantIDResponse struct {
	Suggestions []struct {
		PlantName   string  `json:"plant_name"`
		Probability float64 `json:"probability"`
	} `json:"suggestions"`
	HealthAssessment struct {
		IsHealthy bool `json:"is_healthy"`
		Diseases  []struct {
			Name      string `json:"name"`
			Treatment struct {
				Biological []string `json:"biological"`
				Chemical   []string `json:"chemical"`
				Prevention []string `json:"prevention"`
			} `json:"treatment"`
		} `json:"diseases"`
	} `json:"health_assessment"`
}

// Identify sends the image to the provider and normalizes the top suggestion.
func (c *PlantIDClient) Identify(ctx context.Context, imageBase64 string) (*ports.PlantIdentification, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(plantIDRequest{
		Images:           []string{imageBase64},
		HealthAssessment: true,
		DiseaseDetails:   []string{"treatment"},
	})
	if err != nil {
		return nil, fmt.Errorf("plant id: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/identify", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("plant id: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("plant id: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("plant id: unexpected status %d", resp.StatusCode)
	}

	var body plantIDResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("plant id: decode response: %w", err)
	}

	if len(body.Suggestions) == 0 {
		return &ports.PlantIdentification{}, nil
	}

	top := body.Suggestions[0]
	result := &ports.PlantIdentification{
		PlantName:  top.PlantName,
		Confidence: top.Probability,
		IsHealthy:  body.HealthAssessment.IsHealthy,
	}

	if !result.IsHealthy && len(body.HealthAssessment.Diseases) > 0 {
		d := body.HealthAssessment.Diseases[0]
		result.Treatment = formatTreatment(d.Name, d.Treatment.Biological, d.Treatment.Chemical, d.Treatment.Prevention)
	}
	return result, nil
}

func formatTreatment(disease string, biological, chemical, prevention []string) string {
	var b strings.Builder
	if disease != "" {
		fmt.Fprintf(&b, "Likely issue: %s.", disease)
	}
	appendSection := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s: %s.", label, strings.Join(items, "; "))
	}
	appendSection("Biological treatment", biological)
	appendSection("Chemical treatment", chemical)
	appendSection("Prevention", prevention)
	return b.String()
}
