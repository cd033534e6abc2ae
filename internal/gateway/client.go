// Package gateway implements the client for the external data service, a
// REST store speaking the json-server conventions (_limit, _start and
// field-equality query parameters over /invoices, /customers, /users and
// /revenue). Transport failures and unexpected statuses surface as
// domain.ErrDataUnavailable; the detail stays in the logs.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Dhoini/invoice-dashboard/internal/domain"
	"github.com/Dhoini/invoice-dashboard/pkg/logger"
)

// ItemsPerPage is the fixed page size of the invoices table.
const ItemsPerPage = 6

const defaultTimeout = 10 * time.Second

// Client is an HTTP client for the data service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// Config holds the client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a new data service client.
func NewClient(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// getJSON issues a GET against the data service and decodes the response
// body into out.
func (c *Client) getJSON(ctx context.Context, op, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorw("Data service request failed", "op", op, "url", u, "error", err)
		return domain.NewDataServiceError(op, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Errorw("Data service returned unexpected status", "op", op, "url", u, "status", resp.StatusCode)
		return domain.NewDataServiceError(op, resp.StatusCode, nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Errorw("Failed to decode data service response", "op", op, "url", u, "error", err)
		return domain.NewDataServiceError(op, resp.StatusCode, err)
	}

	return nil
}

// send issues a mutating request (POST/PATCH/DELETE) with an optional JSON
// body. A 404 maps to domain.ErrNotFound so callers can tell a missing
// record from an unavailable backend.
func (c *Client) send(ctx context.Context, op, method, path string, body any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	u := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorw("Data service request failed", "op", op, "url", u, "error", err)
		return domain.NewDataServiceError(op, 0, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		c.log.Errorw("Data service returned unexpected status", "op", op, "url", u, "status", resp.StatusCode)
		return domain.NewDataServiceError(op, resp.StatusCode, nil)
	}

	return nil
}
