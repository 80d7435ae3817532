package invoicing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the hosted-invoice payment gateway. Authentication is
// HTTP Basic with the secret key as username and an empty password.
type Client struct {
	BaseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(baseURL, secretKey string) *Client {
	if baseURL == "" {
		baseURL = "https://api.xendit.co"
	}
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// CreateInvoice registers a new hosted invoice with the provider. The
// external id doubles as the idempotency key so a retried request cannot
// create a second invoice.
func (c *Client) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*Invoice, error) {
	jsonBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v2/invoices", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", req.ExternalId)
	httpReq.SetBasicAuth(c.secretKey, "")

	return c.do(httpReq)
}

// GetInvoice fetches the current provider-side state of an invoice.
func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (*Invoice, error) {
	endpoint := fmt.Sprintf("%s/v2/invoices/%s", c.BaseURL, invoiceID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	httpReq.SetBasicAuth(c.secretKey, "")

	return c.do(httpReq)
}

func (c *Client) do(req *http.Request) (*Invoice, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("invoice provider error (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var inv Invoice
	if err := json.Unmarshal(bodyBytes, &inv); err != nil {
		return nil, err
	}

	return &inv, nil
}
