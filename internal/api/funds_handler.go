package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aidex-platform/aidex-server/internal/entity"
)

type FundEntity struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transactionId"`
	Amount        string    `json:"amount"`
	Email         string    `json:"email"`
	DonorName     string    `json:"donorName"`
	Avatar        string    `json:"avatar,omitempty"`
	FundingDate   time.Time `json:"fundingDate"`
}

func fundsToAPI(funds []entity.Fund) []FundEntity {
	res := make([]FundEntity, 0, len(funds))
	for _, f := range funds {
		res = append(res, FundEntity{
			ID:            f.ID.String(),
			TransactionID: f.TransactionID,
			Amount:        f.Amount.String(),
			Email:         f.Email,
			DonorName:     f.DonorName,
			Avatar:        f.Avatar,
			FundingDate:   f.FundingDate,
		})
	}

	return res
}

type FundsResponse struct {
	Funds      []FundEntity `json:"funds"`
	TotalCount int          `json:"totalCount"`
}

// Funds lists recorded contributions
// @Summary List funds
// @Tags funds
// @Produce json
// @Param limit query int false "Page size (default 10)"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} FundsResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "No account for this identity"
// @Failure 500 {object} ErrorResponse "Failed to list funds"
// @Router /funds [get]
// @Security BearerAuth
func (h *Handler) Funds(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, limit := parsePagination(r.URL.Query())

	funds, totalCount, err := h.s.Funds(ctx, page, limit)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list funds")
		return
	}

	SendJSON(ctx, w, http.StatusOK, FundsResponse{Funds: fundsToAPI(funds), TotalCount: totalCount})
}

type CreateCheckoutRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type CreateCheckoutResponse struct {
	GatewayURL string `json:"gatewayUrl"`
}

// CreateCheckout opens a hosted payment session
// @Summary Create checkout session
// @Description Returns the gateway URL the client should redirect to
// @Tags funds
// @Accept json
// @Produce json
// @Param CreateCheckoutRequest body CreateCheckoutRequest true "Checkout creation request"
// @Success 200 {object} CreateCheckoutResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "No account for this identity"
// @Failure 422 {object} ErrorResponse "Amount must be positive"
// @Failure 500 {object} ErrorResponse "Failed to create checkout"
// @Router /payments/checkout [post]
// @Security BearerAuth
func (h *Handler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCheckoutRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	if !req.Amount.IsPositive() {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity,
			fmt.Errorf("not positive amount %s", req.Amount), "Amount must be positive")
		return
	}

	gatewayURL, err := h.s.CreateCheckout(ctx, req.Amount)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create checkout")
		return
	}

	SendJSON(ctx, w, http.StatusOK, CreateCheckoutResponse{GatewayURL: gatewayURL})
}

type CheckoutCallbackResponse struct{}

// CheckoutCallback resolves a checkout session the gateway redirected back to
// @Summary Handle checkout callback
// @Description Verifies the gateway signature and records the fund if the session was paid
// @Tags funds
// @Produce json
// @Param sessionId query string true "Checkout session ID"
// @Param status query string false "Gateway-reported status"
// @Param checksum query string false "Signature (hex, SHA512 over sorted params)"
// @Success 200 {object} CheckoutCallbackResponse
// @Failure 400 {object} ErrorResponse "sessionId is required"
// @Failure 403 {object} ErrorResponse "Signature check failed"
// @Failure 404 {object} ErrorResponse "Checkout session not found"
// @Failure 500 {object} ErrorResponse "Failed to resolve checkout"
// @Router /payments/checkout/callback [post]
func (h *Handler) CheckoutCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := r.URL.Query().Get("sessionId")
	status := r.URL.Query().Get("status")
	checksum := r.URL.Query().Get("checksum")

	if sessionID == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "sessionId is required")
		return
	}

	err := h.validateCallbackSignature(sessionID, status, checksum)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusForbidden, fmt.Errorf("validate callback checksum: %w", err), "Signature check failed")
		return
	}

	err = h.s.ResolveCheckout(ctx, sessionID)

	switch {
	case err == nil:
		SendJSON(ctx, w, http.StatusOK, CheckoutCallbackResponse{})
	case errors.Is(err, entity.ErrAlreadyPaid):
		SendJSON(ctx, w, http.StatusOK, CheckoutCallbackResponse{})
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Checkout session not found")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to resolve checkout")
	}
}

type StatisticsResponse struct {
	TotalUsers    int64  `json:"totalUsers"`
	TotalRequests int64  `json:"totalRequests"`
	TotalFunds    string `json:"totalFunds"`
}

// Statistics returns the dashboard aggregates, admin and volunteer only
// @Summary Aggregate statistics
// @Description Registered donor count, total request count and fund total
// @Tags statistics
// @Produce json
// @Success 200 {object} StatisticsResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not enough rights"
// @Failure 500 {object} ErrorResponse "Failed to get statistics"
// @Router /statistics [get]
// @Security BearerAuth
func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.s.Statistics(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get statistics")
		return
	}

	SendJSON(ctx, w, http.StatusOK, StatisticsResponse{
		TotalUsers:    stats.TotalUsers,
		TotalRequests: stats.TotalRequests,
		TotalFunds:    stats.TotalFunds.String(),
	})
}
