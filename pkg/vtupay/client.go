// Package vtupay is the HTTP client for the upstream VTU provider that
// serves the plan catalog, wallet balance and data purchase endpoints.
package vtupay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// Client is a minimal HTTP client for the VTU provider API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	debug      bool
}

// Config carries the provider connection settings.
type Config struct {
	BaseURL string
	APIKey  string
}

// NewClient constructs a provider client with sane defaults.
func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		debug:      os.Getenv("ENV") == "development",
	}
}

// GetPlans retrieves the plan catalog for a (network, type) pair.
func (c *Client) GetPlans(ctx context.Context, network, planType string) (*PlansResponse, error) {
	q := url.Values{}
	q.Set("network", network)
	q.Set("type", planType)

	var resp PlansResponse
	if err := c.doGet(ctx, "/plans", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetBalance returns the current wallet balance.
func (c *Client) GetBalance(ctx context.Context) (*BalanceResponse, error) {
	var resp BalanceResponse
	if err := c.doGet(ctx, "/wallet/balance", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BuyData submits a data purchase. A non-nil error means the transport
// failed or the response was malformed; provider-level rejection comes back
// in the response status and message.
func (c *Client) BuyData(ctx context.Context, req PurchaseRequest) (*PurchaseResponse, error) {
	var resp PurchaseResponse
	if err := c.doPost(ctx, "/data/purchase", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) doGet(ctx context.Context, endpoint string, query url.Values, result any) error {
	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.send(req, endpoint, nil, result)
}

func (c *Client) doPost(ctx context.Context, endpoint string, body any, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.send(req, endpoint, payload, result)
}

// send executes the request and decodes the JSON response into result.
// Non-2xx responses are reported as errors so the caller can fold them into
// its transport-failure path.
func (c *Client) send(req *http.Request, endpoint string, payload []byte, result any) error {
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	if c.debug && payload != nil {
		log.Debug().
			Str("endpoint", c.baseURL+endpoint).
			RawJSON("request", payload).
			Msg("[VTUPAY] Outgoing request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if c.debug {
		log.Debug().
			Str("endpoint", endpoint).
			Int("status_code", resp.StatusCode).
			RawJSON("response", respBody).
			Msg("[VTUPAY] Incoming response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
