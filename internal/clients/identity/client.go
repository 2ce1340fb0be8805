// Package identity wraps the external identity provider that validates
// bearer credentials and yields the verified principal email.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/aidex-platform/aidex-server/internal/entity"
	"github.com/aidex-platform/aidex-server/pkg/transport"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.Logger = nil
	rc.HTTPClient.Timeout = 3 * time.Second
	rc.HTTPClient.Transport = transport.NewRequestIDRoundTripper(http.DefaultTransport)

	return &Client{
		baseURL: baseURL,
		http:    rc.StandardClient(),
	}
}

type VerifyTokenRequest struct {
	Token string `json:"token"`
}

type VerifyTokenResponse struct {
	Email string `json:"email"`
}

// Verify validates the credential and returns the principal email. An
// invalid or expired credential is reported as ErrUnauthenticated.
func (c *Client) Verify(ctx context.Context, token string) (string, error) {
	j, err := json.Marshal(VerifyTokenRequest{Token: token})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/verify", bytes.NewReader(j))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", entity.ErrUnauthenticated
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("unexpected status code: %d\nbody: %s", resp.StatusCode, body)
	}

	var data VerifyTokenResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if data.Email == "" {
		return "", fmt.Errorf("verifier returned empty email: %w", entity.ErrUnauthenticated)
	}

	return data.Email, nil
}
