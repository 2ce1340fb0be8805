// Package checkout talks to the hosted payment gateway. The gateway creates
// a checkout page for a given contributor and amount; the outcome of a
// session is only observable by querying its status.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aidex-platform/aidex-server/internal/entity"
	"github.com/aidex-platform/aidex-server/pkg/config"
	"github.com/aidex-platform/aidex-server/pkg/transport"
)

const (
	statusPaid   = "PAID"
	statusFailed = "FAILED"
)

type Client struct {
	cfg config.Checkout
	c   *http.Client
}

func NewClient(cfg config.Checkout) *Client {
	const timeout = 10 * time.Second

	return &Client{
		cfg: cfg,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewRequestIDRoundTripper(http.DefaultTransport),
		},
	}
}

type CreateSessionRequest struct {
	StoreID    string `json:"storeId"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar,omitempty"`
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
}

type CreateSessionResponse struct {
	SessionID  string `json:"sessionId"`
	GatewayURL string `json:"gatewayUrl"`
}

func (c *Client) CreateSession(ctx context.Context, s entity.CheckoutSession) (string, string, error) {
	reqData := CreateSessionRequest{
		StoreID:    c.cfg.StoreID,
		Amount:     s.Amount.StringFixed(2),
		Currency:   c.cfg.Currency,
		Email:      s.Email,
		Name:       s.Name,
		Avatar:     s.Avatar,
		SuccessURL: c.cfg.SuccessURL,
		CancelURL:  c.cfg.CancelURL,
	}

	j, err := json.Marshal(reqData)
	if err != nil {
		return "", "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/sessions", bytes.NewReader(j))
	if err != nil {
		return "", "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Store-Secret", c.cfg.StoreSecret)

	resp, err := c.c.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", "", fmt.Errorf("unexpected status code: %d\nbody: %s", resp.StatusCode, body)
	}

	var data CreateSessionResponse

	err = json.Unmarshal(body, &data)
	if err != nil {
		return "", "", fmt.Errorf("decode response: %w", err)
	}

	if data.SessionID == "" || data.GatewayURL == "" {
		return "", "", fmt.Errorf("gateway returned incomplete session: %q", body)
	}

	return data.SessionID, data.GatewayURL, nil
}

type SessionStatusResponse struct {
	SessionID     string          `json:"sessionId"`
	PaymentStatus string          `json:"paymentStatus"`
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Email         string          `json:"email"`
}

func (c *Client) SessionStatus(ctx context.Context, sessionID string) (entity.PaymentStatus, error) {
	reqURL := c.cfg.BaseURL + "/v1/sessions/" + sessionID

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.PaymentStatus{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-Store-Secret", c.cfg.StoreSecret)

	resp, err := c.c.Do(req)
	if err != nil {
		return entity.PaymentStatus{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.PaymentStatus{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return entity.PaymentStatus{}, entity.ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return entity.PaymentStatus{}, fmt.Errorf("unexpected status code: %d\nbody: %s", resp.StatusCode, body)
	}

	var data SessionStatusResponse

	err = json.Unmarshal(body, &data)
	if err != nil {
		return entity.PaymentStatus{}, fmt.Errorf("decode response: %w", err)
	}

	return entity.PaymentStatus{
		Paid:          data.PaymentStatus == statusPaid,
		Failed:        data.PaymentStatus == statusFailed,
		TransactionID: data.TransactionID,
		Amount:        data.Amount,
		Email:         data.Email,
	}, nil
}
