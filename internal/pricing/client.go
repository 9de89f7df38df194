// Package pricing provides an HTTP client for the remote pricing service.
package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrMissingPrice is returned when a successful response carries no estimated_price.
var ErrMissingPrice = errors.New("response has no estimated_price")

// PredictRequest is the body of POST /predict.
type PredictRequest struct {
	OriginalPrice float64 `json:"original_price"`
	Age           int     `json:"age"`
	Condition     int     `json:"condition"`
	BrandTier     int     `json:"brand_tier"`
}

// PredictResponse is a successful /predict reply.
type PredictResponse struct {
	EstimatedPrice float64 `json:"estimated_price"`
}

// Client communicates with the pricing service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a pricing service client. apiKey may be empty.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Predict asks the pricing service for an estimated price. Transport errors,
// non-2xx statuses and malformed bodies are all returned as errors.
func (c *Client) Predict(ctx context.Context, in PredictRequest) (*PredictResponse, error) {
	jsonBody, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshaling predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting prediction: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("requesting prediction: unexpected status %d", resp.StatusCode)
	}

	var result struct {
		EstimatedPrice *float64 `json:"estimated_price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding predict response: %w", err)
	}
	if result.EstimatedPrice == nil {
		return nil, fmt.Errorf("decoding predict response: %w", ErrMissingPrice)
	}
	return &PredictResponse{EstimatedPrice: *result.EstimatedPrice}, nil
}
