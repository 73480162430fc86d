// internal/printify/client.go
package printify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"merchstore/pkg/config"
)

// Client issues authenticated calls to the Printify API. It performs no
// retries and no fallback; both are the orchestrator's responsibility.
// One logical storefront action is one upstream call.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.UpstreamTimeout},
		baseURL: strings.TrimRight(cfg.PrintifyBaseURL, "/"),
		token:   cfg.PrintifyAPIKey,
	}
}

// ListShops returns the shops the credential has access to.
func (c *Client) ListShops(ctx context.Context) ([]Shop, error) {
	var shops []Shop
	if err := c.do(ctx, http.MethodGet, "/shops.json", nil, &shops); err != nil {
		return nil, err
	}
	return shops, nil
}

// ListProducts fetches the shop's catalog. Printify wraps the list in a
// paginated object; a complete set comes back in one page for the shop
// sizes this storefront targets, so no further pagination is attempted.
func (c *Client) ListProducts(ctx context.Context, shopID string) ([]Product, error) {
	path := fmt.Sprintf("/shops/%s/products.json", shopID)
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var products []Product
		if err := json.Unmarshal(raw, &products); err != nil {
			return nil, &ProviderError{Endpoint: path, Message: "malformed product list: " + err.Error()}
		}
		return products, nil
	}
	var page struct {
		Data []Product `json:"data"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, &ProviderError{Endpoint: path, Message: "malformed product page: " + err.Error()}
	}
	return page.Data, nil
}

// GetShippingRates quotes shipping for a destination and cart contents.
func (c *Client) GetShippingRates(ctx context.Context, shopID string, req ShippingQuoteRequest) (ShippingRates, error) {
	path := fmt.Sprintf("/shops/%s/orders/shipping.json", shopID)
	var rates ShippingRates
	if err := c.do(ctx, http.MethodPost, path, req, &rates); err != nil {
		return ShippingRates{}, err
	}
	return rates, nil
}

// CreateOrder submits a cart for fulfillment.
func (c *Client) CreateOrder(ctx context.Context, shopID string, sub OrderSubmission) (OrderResult, error) {
	path := fmt.Sprintf("/shops/%s/orders.json", shopID)
	var res OrderResult
	if err := c.do(ctx, http.MethodPost, path, sub, &res); err != nil {
		return OrderResult{}, err
	}
	return res, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.token == "" {
		return ErrNoCredential
	}
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &ProviderError{Endpoint: path, Message: "encode request: " + err.Error()}
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return &ProviderError{Endpoint: path, Message: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &ProviderError{Endpoint: path, Message: err.Error()}
	}
	defer resp.Body.Close()
	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ProviderError{StatusCode: resp.StatusCode, Endpoint: path, Message: upstreamMessage(payload, resp.StatusCode)}
	}
	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return &ProviderError{StatusCode: resp.StatusCode, Endpoint: path, Message: "malformed response: " + err.Error()}
		}
	}
	return nil
}

// upstreamMessage extracts a short human-readable message from an error
// body without echoing large payloads into logs.
func upstreamMessage(payload []byte, status int) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(payload, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	s := strings.TrimSpace(string(payload))
	if len(s) > 200 {
		s = s[:200]
	}
	if s == "" {
		return http.StatusText(status)
	}
	return s
}
