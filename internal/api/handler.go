package api

import (
	"context"
	"crypto"
	"crypto/rsa"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/aidex-platform/aidex-server/internal/entity"
)

// @title AidEx API
// @version 1.0
// @description Blood donation coordination: donation requests, donor search and funds
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Service interface {
	Register(ctx context.Context, u entity.User) (entity.User, error)
	Me(ctx context.Context) (entity.User, error)
	UpdateProfile(ctx context.Context, email string, p entity.ProfilePatch) (entity.User, error)
	Users(ctx context.Context, f entity.UserFilter) ([]entity.User, int, error)
	SetUserRoleStatus(ctx context.Context, email string, p entity.RoleStatusPatch) error
	Donors(ctx context.Context, f entity.DonorFilter) ([]entity.User, error)
	CreateRequest(ctx context.Context, req entity.DonationRequest) (entity.DonationRequest, error)
	Request(ctx context.Context, id uuid.UUID) (entity.DonationRequest, error)
	MyRequests(ctx context.Context) ([]entity.DonationRequest, error)
	Requests(ctx context.Context, f entity.RequestFilter) ([]entity.DonationRequest, int, error)
	PendingRequests(ctx context.Context, page, limit uint64) ([]entity.DonationRequest, int, error)
	EditRequest(ctx context.Context, id uuid.UUID, d entity.RequestDetails) (entity.DonationRequest, error)
	AcceptRequest(ctx context.Context, id uuid.UUID) (entity.DonationRequest, error)
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error
	DeleteRequest(ctx context.Context, id uuid.UUID) error
	Statistics(ctx context.Context) (entity.Stats, error)
	Funds(ctx context.Context, page, limit uint64) ([]entity.Fund, int, error)
	CreateCheckout(ctx context.Context, amount decimal.Decimal) (string, error)
	ResolveCheckout(ctx context.Context, sessionID string) error
}

type Handler struct {
	s                    Service
	callbackCheckEnabled bool
	callbackPublicKey    *rsa.PublicKey
}

func NewHandler(s Service, callbackCheckEnabled bool, callbackPublicKey *rsa.PublicKey) *Handler {
	return &Handler{
		s:                    s,
		callbackCheckEnabled: callbackCheckEnabled,
		callbackPublicKey:    callbackPublicKey,
	}
}

// sendServiceErr maps service errors to HTTP statuses. Every handler shares
// this mapping so the same deny reason always produces the same status.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Authentication required")
	case errors.Is(err, entity.ErrUnknownUser):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "No account for this identity, register first")
	case errors.Is(err, entity.ErrIdentityMismatch):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Acting on behalf of another user is not allowed")
	case errors.Is(err, entity.ErrNotDonor):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Only donors can accept donation requests")
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Not enough rights for this action")
	case errors.Is(err, entity.ErrUnauthorized):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Not enough rights for this action")
	case errors.Is(err, entity.ErrAccountBlocked):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Account is blocked")
	case errors.Is(err, entity.ErrNotEditable):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Request is no longer editable")
	case errors.Is(err, entity.ErrNotPending):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Request is no longer pending")
	case errors.Is(err, entity.ErrInvalidTransition):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Status transition is not allowed")
	case errors.Is(err, entity.ErrDuplicateEmail):
		SendJSONErr(ctx, w, http.StatusConflict, err, "User with this email already exists")
	case errors.Is(err, entity.ErrDuplicateTransaction):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Transaction already recorded")
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Not found")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid input")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, fallback)
	}
}

func requestID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("'id' must be a UUID: %w", err)
	}

	return id, nil
}

func parsePagination(url url.Values) (page, limit uint64) {
	const (
		defaultLimit uint64 = 10
		maxLimit     uint64 = 100
		defaultPage  uint64 = 1
	)

	limit, err := strconv.ParseUint(url.Get("limit"), 10, 64)
	if err != nil {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	page, err = strconv.ParseUint(url.Get("page"), 10, 64)
	if err != nil || page == 0 {
		page = defaultPage
	}

	return page, limit
}

// validateCallbackSignature checks the gateway's RSA signature over the
// callback parameters, the same scheme the gateway signs redirects with.
func (h *Handler) validateCallbackSignature(sessionID, status, checksum string) error {
	if !h.callbackCheckEnabled {
		return nil
	}

	binarySignature, err := hex.DecodeString(checksum)
	if err != nil {
		return fmt.Errorf("decode hex checksum signature: %w", err)
	}

	params := []string{sessionID, status}
	slices.Sort(params)

	data := strings.Join(params, ";") + ";"

	hashedData := sha512.Sum512([]byte(data))

	err = rsa.VerifyPKCS1v15(h.callbackPublicKey, crypto.SHA512, hashedData[:], binarySignature)
	if err != nil {
		return fmt.Errorf("verify signature: %w", err)
	}

	return nil
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Accept text/plain
// @Produce text/plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Service is not healthy")
		return
	}
}
