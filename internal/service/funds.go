package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/aidex-platform/aidex-server/internal/entity"
)

// maxSessionAge bounds how long the poller keeps asking the gateway about an
// unresolved checkout session.
const maxSessionAge = 24 * time.Hour

func (s *Service) Funds(ctx context.Context, page, limit uint64) ([]entity.Fund, int, error) {
	_, err := s.actor(ctx)
	if err != nil {
		return nil, 0, err
	}

	return s.repo.Funds(ctx, page, limit)
}

// CreateCheckout opens a hosted payment session for the acting user and
// returns the gateway URL to redirect to.
func (s *Service) CreateCheckout(ctx context.Context, amount decimal.Decimal) (string, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return "", err
	}

	if !amount.IsPositive() {
		return "", fmt.Errorf("%w: amount %s must be positive", entity.ErrInvalidArgument, amount)
	}

	now := time.Now()

	session := entity.CheckoutSession{
		ID:        uuid.Must(uuid.NewV4()),
		Email:     actor.Email,
		Name:      actor.Name,
		Avatar:    actor.Avatar,
		Amount:    amount,
		Status:    entity.CheckoutStatusCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}

	sessionID, gatewayURL, err := s.gateway.CreateSession(ctx, session)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	session.SessionID = sessionID

	err = s.repo.CreateCheckoutSession(ctx, session)
	if err != nil {
		return "", fmt.Errorf("store checkout session %q: %w", sessionID, err)
	}

	slog.InfoContext(ctx, "checkout session created",
		"session_id", sessionID, "email", actor.Email, "amount", amount.String())

	return gatewayURL, nil
}

// ResolveCheckout asks the gateway for the session outcome and, if paid,
// records the fund. Safe to call repeatedly: a session already paid and a
// transaction already recorded are both reported as ErrAlreadyPaid.
func (s *Service) ResolveCheckout(ctx context.Context, sessionID string) error {
	session, err := s.repo.CheckoutSessionBySessionID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get checkout session %q: %w", sessionID, err)
	}

	if session.Status == entity.CheckoutStatusPaid {
		return fmt.Errorf("checkout session %q: %w", sessionID, entity.ErrAlreadyPaid)
	}

	status, err := s.gateway.SessionStatus(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session %q status: %w", sessionID, err)
	}

	switch {
	case status.Paid:
		return s.recordFund(ctx, session, status)

	case status.Failed:
		err = s.repo.UpdateCheckoutSessionStatus(ctx, session.ID, entity.CheckoutStatusFailed, time.Now())
		if err != nil {
			return fmt.Errorf("mark session %q failed: %w", sessionID, err)
		}

		return nil

	default:
		// Still pending at the gateway; the poller will come back to it.
		return nil
	}
}

func (s *Service) recordFund(ctx context.Context, session entity.CheckoutSession, status entity.PaymentStatus) error {
	fund := entity.Fund{
		ID:            uuid.Must(uuid.NewV4()),
		TransactionID: status.TransactionID,
		Amount:        status.Amount,
		Email:         session.Email,
		DonorName:     session.Name,
		Avatar:        session.Avatar,
		FundingDate:   time.Now(),
	}

	err := s.repo.CreateFund(ctx, fund)
	if err != nil && !errors.Is(err, entity.ErrDuplicateTransaction) {
		return fmt.Errorf("record fund for transaction %q: %w", status.TransactionID, err)
	}

	recorded := err == nil

	err = s.repo.UpdateCheckoutSessionStatus(ctx, session.ID, entity.CheckoutStatusPaid, time.Now())
	if err != nil {
		return fmt.Errorf("mark session %q paid: %w", session.SessionID, err)
	}

	if recorded {
		s.producer.SendFundRecorded(ctx, fund)

		slog.InfoContext(ctx, "fund recorded",
			"transaction_id", fund.TransactionID, "email", fund.Email, "amount", fund.Amount.String())
	}

	return nil
}

// PollCheckoutSessions resolves outstanding sessions against the gateway.
// Run on a timer: the gateway has no webhook, so payment completion is only
// observable by asking.
func (s *Service) PollCheckoutSessions(ctx context.Context) error {
	sessions, err := s.repo.UnresolvedCheckoutSessions(ctx, maxSessionAge)
	if err != nil {
		return fmt.Errorf("get unresolved checkout sessions: %w", err)
	}

	var errs []error

	for _, session := range sessions {
		err := s.ResolveCheckout(ctx, session.SessionID)
		if err != nil && !errors.Is(err, entity.ErrAlreadyPaid) {
			errs = append(errs, fmt.Errorf("resolve session %q: %w", session.SessionID, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
