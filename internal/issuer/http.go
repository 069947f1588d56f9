// internal/issuer/http.go
package issuer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPClient talks to a real issuer gateway over HTTP. It implements the
// same Client contract as the mock, so the workflow does not change when
// the integration goes live.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

type authorizeRequest struct {
	CardToken string  `json:"cardToken"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// NewHTTPClient builds an issuer client against baseURL with a pooled
// transport and a hard per-call timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
	}
	return &HTTPClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (c *HTTPClient) Authorize(ctx context.Context, cardToken string, amount float64, currency string) (Decision, error) {
	body, err := json.Marshal(authorizeRequest{
		CardToken: cardToken,
		Amount:    amount,
		Currency:  currency,
	})
	if err != nil {
		return Decision{}, fmt.Errorf("failed to marshal authorize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/authorize", bytes.NewReader(body))
	if err != nil {
		return Decision{}, fmt.Errorf("failed to create authorize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Decision{}, fmt.Errorf("issuer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Decision{}, fmt.Errorf("issuer returned status %d", resp.StatusCode)
	}

	var decision Decision
	if err := json.NewDecoder(resp.Body).Decode(&decision); err != nil {
		return Decision{}, fmt.Errorf("failed to decode issuer response: %w", err)
	}
	return decision, nil
}
