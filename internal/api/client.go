// Package api is the REST client for the DocuGen backend. It owns request
// construction, bearer auth and error decoding; it holds no session state of
// its own (the token is supplied per call by a provider func).
package api

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

// TokenFunc returns the current bearer credential, or "" when there is none.
type TokenFunc func() string

type Client struct {
	baseURL string
	hc      *http.Client
	token   TokenFunc
}

// New builds a client for the backend at baseURL. timeout of zero keeps the
// transport default. token may be nil for a client that only performs
// unauthenticated calls.
func New(baseURL string, timeout time.Duration, token TokenFunc) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		token:   token,
	}
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// newRequest builds a request with the bearer credential attached when one
// is available.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, err
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req, nil
}

// doJSON issues a JSON request and decodes the response into out (out may be
// nil when the caller ignores the body). Non-2xx responses decode into *Error.
func (c *Client) doJSON(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeBody(resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", resp.Request.URL.Path, err)
	}
	return nil
}

// decodeError reads a non-2xx body and extracts the backend detail if the
// body is the usual `{"detail": ...}` shape.
func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Detail any `json:"detail"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Detail != nil {
		switch d := payload.Detail.(type) {
		case string:
			apiErr.Detail = d
		default:
			// Validation errors arrive as structured detail; keep it
			// readable rather than dropping it.
			if b, err := json.Marshal(d); err == nil {
				apiErr.Detail = string(b)
			}
		}
	}
	return apiErr
}
