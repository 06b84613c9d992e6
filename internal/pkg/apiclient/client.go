// Package apiclient is the preconfigured HTTP adapter for one backend
// service: base URL, API-key header, fixed request timeout, and structured
// request/response logging. Failures are classified here into the tagged
// error variants in errors.go; no retries are performed at any layer.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/murkotick/catalog-admin/internal/pkg/jsonapi"
)

const apiKeyHeader = "X-API-KEY"

// Client issues requests against a single backend.
type Client struct {
	name    string
	baseURL string
	apiKey  string
	httpc   *http.Client
	log     *slog.Logger
}

// New builds a client for the backend at baseURL. name tags log lines
// ("products", "inventory"). An empty apiKey omits the header.
func New(name, baseURL, apiKey string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Get issues a GET with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body)
}

// Delete issues a DELETE and discards any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("apiclient: encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("apiclient: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn("backend request failed",
			"backend", c.name, "method", method, "path", path, "error", err)
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	c.log.Info("backend request",
		"backend", c.name, "method", method, "path", path,
		"status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.apiError(resp.StatusCode, raw)
	}
	return raw, nil
}

// apiError builds an *APIError from an error envelope, using the first
// entry's detail and falling back to a generic message when absent.
func (c *Client) apiError(status int, raw []byte) *APIError {
	out := &APIError{StatusCode: status, Detail: genericDetail}

	var doc jsonapi.ErrorDocument
	if err := json.Unmarshal(raw, &doc); err == nil && len(doc.Errors) > 0 {
		first := doc.Errors[0]
		out.Title = first.Title
		if first.Detail != "" {
			out.Detail = first.Detail
		}
	}
	return out
}
