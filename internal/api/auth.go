package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Login exchanges credentials for a bearer token. The backend's token
// endpoint is OAuth2-password shaped: form-encoded username/password.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := c.newRequest(ctx, http.MethodPost, "/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("POST /token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", decodeError(resp)
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := decodeBody(resp, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("POST /token: response missing access_token")
	}
	return out.AccessToken, nil
}

// Register creates an account. Callers typically follow up with Login.
func (c *Client) Register(ctx context.Context, email, password string) error {
	payload := map[string]string{"email": email, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/register", payload, nil)
}
