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
	"github.com/aidex-platform/aidex-server/internal/policy"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateUser(ctx context.Context, u entity.User) error
	UserByEmail(ctx context.Context, email string) (entity.User, error)
	Users(ctx context.Context, f entity.UserFilter) ([]entity.User, int, error)
	Donors(ctx context.Context, f entity.DonorFilter) ([]entity.User, error)
	UpdateProfile(ctx context.Context, email string, p entity.ProfilePatch, updatedAt time.Time) error
	SetUserRoleStatus(ctx context.Context, email string, p entity.RoleStatusPatch, updatedAt time.Time) error
	CountUsersByRole(ctx context.Context, role entity.Role) (int64, error)

	CreateRequest(ctx context.Context, req entity.DonationRequest) error
	RequestByID(ctx context.Context, id uuid.UUID) (entity.DonationRequest, error)
	Requests(ctx context.Context, f entity.RequestFilter) ([]entity.DonationRequest, int, error)
	RequestsByRequester(ctx context.Context, email string) ([]entity.DonationRequest, error)
	UpdateRequestDetails(ctx context.Context, id uuid.UUID, d entity.RequestDetails, updatedAt time.Time) error
	AcceptRequest(ctx context.Context, id uuid.UUID, p entity.DonorPatch, updatedAt time.Time) error
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus, updatedAt time.Time) error
	DeleteRequest(ctx context.Context, id uuid.UUID) error
	CountRequests(ctx context.Context) (int64, error)

	CreateFund(ctx context.Context, f entity.Fund) error
	Funds(ctx context.Context, page, limit uint64) ([]entity.Fund, int, error)
	SumFunds(ctx context.Context) (decimal.Decimal, error)
	CreateCheckoutSession(ctx context.Context, s entity.CheckoutSession) error
	CheckoutSessionBySessionID(ctx context.Context, sessionID string) (entity.CheckoutSession, error)
	UnresolvedCheckoutSessions(ctx context.Context, maxAge time.Duration) ([]entity.CheckoutSession, error)
	UpdateCheckoutSessionStatus(ctx context.Context, id uuid.UUID, status entity.CheckoutStatus, updatedAt time.Time) error
}

// CheckoutGateway is the hosted-payment provider: it creates a checkout
// session for a contributor and later reports the session's payment outcome.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, s entity.CheckoutSession) (sessionID, gatewayURL string, err error)
	SessionStatus(ctx context.Context, sessionID string) (entity.PaymentStatus, error)
}

type Producer interface {
	SendRequestAccepted(ctx context.Context, req entity.DonationRequest, donor entity.User)
	SendFundRecorded(ctx context.Context, fund entity.Fund)
}

type Service struct {
	repo     Repository
	engine   *policy.Engine
	gateway  CheckoutGateway
	producer Producer
}

func New(repo Repository, engine *policy.Engine, gateway CheckoutGateway, producer Producer) *Service {
	return &Service{
		repo:     repo,
		engine:   engine,
		gateway:  gateway,
		producer: producer,
	}
}

// actor resolves the acting user record from the verified principal email.
// A principal without a user record is denied with ErrUnknownUser.
func (s *Service) actor(ctx context.Context) (entity.User, error) {
	email, err := entity.PrincipalFromCtx(ctx)
	if err != nil {
		return entity.User{}, err
	}

	user, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.User{}, fmt.Errorf("principal %q: %w", email, entity.ErrUnknownUser)
		}

		return entity.User{}, fmt.Errorf("get user %q: %w", email, err)
	}

	return user, nil
}

func (s *Service) Register(ctx context.Context, u entity.User) (entity.User, error) {
	email, err := entity.PrincipalFromCtx(ctx)
	if err != nil {
		return entity.User{}, err
	}

	if u.Email != email {
		return entity.User{}, fmt.Errorf("register %q as principal %q: %w",
			u.Email, email, entity.ErrIdentityMismatch)
	}

	if u.Role == "" {
		u.Role = entity.RoleRequester
	}

	err = u.Role.Validate()
	if err != nil {
		return entity.User{}, err
	}

	now := time.Now()

	u.ID = uuid.Must(uuid.NewV4())
	u.Status = entity.UserStatusActive
	u.CreatedAt = now
	u.UpdatedAt = now

	err = s.repo.CreateUser(ctx, u)
	if err != nil {
		return entity.User{}, fmt.Errorf("create user %q: %w", u.Email, err)
	}

	slog.InfoContext(ctx, "user registered", "email", u.Email, "role", u.Role.String())

	return u, nil
}

func (s *Service) Me(ctx context.Context) (entity.User, error) {
	return s.actor(ctx)
}

func (s *Service) UpdateProfile(ctx context.Context, targetEmail string, p entity.ProfilePatch) (entity.User, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return entity.User{}, err
	}

	err = s.engine.Decide(actor, policy.ActionEditOwnProfile, policy.Target{Email: targetEmail})
	if err != nil {
		return entity.User{}, err
	}

	err = s.repo.UpdateProfile(ctx, targetEmail, p, time.Now())
	if err != nil {
		return entity.User{}, fmt.Errorf("update profile %q: %w", targetEmail, err)
	}

	return s.repo.UserByEmail(ctx, targetEmail)
}

func (s *Service) Users(ctx context.Context, f entity.UserFilter) ([]entity.User, int, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, 0, err
	}

	err = s.engine.Decide(actor, policy.ActionViewAllUsers, policy.Target{})
	if err != nil {
		return nil, 0, err
	}

	return s.repo.Users(ctx, f)
}

func (s *Service) SetUserRoleStatus(ctx context.Context, email string, p entity.RoleStatusPatch) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}

	err = s.engine.Decide(actor, policy.ActionChangeUserRoleOrStatus, policy.Target{Email: email})
	if err != nil {
		return err
	}

	if p.Role == nil && p.Status == nil {
		return fmt.Errorf("%w: nothing to change", entity.ErrInvalidArgument)
	}

	if p.Role != nil {
		err = p.Role.Validate()
		if err != nil {
			return err
		}
	}

	if p.Status != nil {
		err = p.Status.Validate()
		if err != nil {
			return err
		}
	}

	err = s.repo.SetUserRoleStatus(ctx, email, p, time.Now())
	if err != nil {
		return fmt.Errorf("set role/status for %q: %w", email, err)
	}

	slog.InfoContext(ctx, "user role/status changed", "email", email, "by", actor.Email)

	return nil
}

// Donors is the public donor search. Blocked and non-donor users never appear.
func (s *Service) Donors(ctx context.Context, f entity.DonorFilter) ([]entity.User, error) {
	return s.repo.Donors(ctx, f)
}

func (s *Service) CreateRequest(ctx context.Context, req entity.DonationRequest) (entity.DonationRequest, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return entity.DonationRequest{}, err
	}

	if req.RequesterEmail == "" {
		req.RequesterEmail = actor.Email
	}

	err = s.engine.Decide(actor, policy.ActionCreateRequest, policy.Target{Email: req.RequesterEmail})
	if err != nil {
		return entity.DonationRequest{}, err
	}

	now := time.Now()

	req.ID = uuid.Must(uuid.NewV4())
	req.Status = entity.RequestStatusPending
	req.DonorName = ""
	req.DonorEmail = ""
	req.RequestedAt = now
	req.UpdatedAt = now

	err = s.repo.CreateRequest(ctx, req)
	if err != nil {
		return entity.DonationRequest{}, fmt.Errorf("create request: %w", err)
	}

	slog.InfoContext(ctx, "donation request created",
		"request_id", req.ID, "requester", req.RequesterEmail, "blood_group", req.BloodGroup)

	return req, nil
}

func (s *Service) Request(ctx context.Context, id uuid.UUID) (entity.DonationRequest, error) {
	_, err := s.actor(ctx)
	if err != nil {
		return entity.DonationRequest{}, err
	}

	req, err := s.repo.RequestByID(ctx, id)
	if err != nil {
		return entity.DonationRequest{}, fmt.Errorf("get request %s: %w", id, err)
	}

	return req, nil
}

func (s *Service) MyRequests(ctx context.Context) ([]entity.DonationRequest, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.RequestsByRequester(ctx, actor.Email)
}

func (s *Service) Requests(ctx context.Context, f entity.RequestFilter) ([]entity.DonationRequest, int, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, 0, err
	}

	err = s.engine.Decide(actor, policy.ActionViewAllRequests, policy.Target{})
	if err != nil {
		return nil, 0, err
	}

	return s.repo.Requests(ctx, f)
}

// PendingRequests backs the public request board; no authentication needed.
func (s *Service) PendingRequests(ctx context.Context, page, limit uint64) ([]entity.DonationRequest, int, error) {
	status := entity.RequestStatusPending

	return s.repo.Requests(ctx, entity.RequestFilter{
		Status: &status,
		Page:   page,
		Limit:  limit,
	})
}

func (s *Service) EditRequest(ctx context.Context, id uuid.UUID, d entity.RequestDetails) (entity.DonationRequest, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return entity.DonationRequest{}, err
	}

	req, err := s.repo.RequestByID(ctx, id)
	if err != nil {
		return entity.DonationRequest{}, fmt.Errorf("get request %s: %w", id, err)
	}

	err = s.engine.Decide(actor, policy.ActionEditRequestDetails, policy.Target{Request: &req})
	if err != nil {
		return entity.DonationRequest{}, err
	}

	err = s.repo.UpdateRequestDetails(ctx, id, d, time.Now())
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			// Lost a race: the request left pending (or was deleted)
			// between read and write.
			return entity.DonationRequest{}, s.staleRequestErr(ctx, id, entity.ErrNotEditable)
		}

		return entity.DonationRequest{}, fmt.Errorf("update request %s: %w", id, err)
	}

	return s.repo.RequestByID(ctx, id)
}

func (s *Service) AcceptRequest(ctx context.Context, id uuid.UUID) (entity.DonationRequest, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return entity.DonationRequest{}, err
	}

	req, err := s.repo.RequestByID(ctx, id)
	if err != nil {
		return entity.DonationRequest{}, fmt.Errorf("get request %s: %w", id, err)
	}

	err = s.engine.Decide(actor, policy.ActionAcceptRequest, policy.Target{Request: &req})
	if err != nil {
		return entity.DonationRequest{}, err
	}

	patch := s.engine.AcceptPatch(actor)

	err = s.repo.AcceptRequest(ctx, id, patch, time.Now())
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			// Another donor got there first.
			return entity.DonationRequest{}, s.staleRequestErr(ctx, id, entity.ErrNotPending)
		}

		return entity.DonationRequest{}, fmt.Errorf("accept request %s: %w", id, err)
	}

	accepted, err := s.repo.RequestByID(ctx, id)
	if err != nil {
		return entity.DonationRequest{}, fmt.Errorf("get accepted request %s: %w", id, err)
	}

	s.producer.SendRequestAccepted(ctx, accepted, actor)

	slog.InfoContext(ctx, "donation request accepted", "request_id", id, "donor", actor.Email)

	return accepted, nil
}

func (s *Service) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error {
	err := status.Validate()
	if err != nil {
		return err
	}

	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}

	req, err := s.repo.RequestByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get request %s: %w", id, err)
	}

	err = s.engine.Decide(actor, policy.ActionUpdateRequestStatus, policy.Target{Request: &req, NewStatus: status})
	if err != nil {
		return err
	}

	err = s.repo.UpdateRequestStatus(ctx, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update request %s status to %q: %w", id, status, err)
	}

	slog.InfoContext(ctx, "donation request status updated",
		"request_id", id, "status", status.String(), "by", actor.Email)

	return nil
}

func (s *Service) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}

	req, err := s.repo.RequestByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get request %s: %w", id, err)
	}

	err = s.engine.Decide(actor, policy.ActionDeleteRequest, policy.Target{Request: &req})
	if err != nil {
		return err
	}

	err = s.repo.DeleteRequest(ctx, id)
	if err != nil {
		return fmt.Errorf("delete request %s: %w", id, err)
	}

	slog.InfoContext(ctx, "donation request deleted", "request_id", id, "by", actor.Email)

	return nil
}

func (s *Service) Statistics(ctx context.Context) (entity.Stats, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return entity.Stats{}, err
	}

	err = s.engine.Decide(actor, policy.ActionViewAggregateStatistics, policy.Target{})
	if err != nil {
		return entity.Stats{}, err
	}

	donors, err := s.repo.CountUsersByRole(ctx, entity.RoleDonor)
	if err != nil {
		return entity.Stats{}, fmt.Errorf("count donors: %w", err)
	}

	requests, err := s.repo.CountRequests(ctx)
	if err != nil {
		return entity.Stats{}, fmt.Errorf("count requests: %w", err)
	}

	funds, err := s.repo.SumFunds(ctx)
	if err != nil {
		return entity.Stats{}, fmt.Errorf("sum funds: %w", err)
	}

	return entity.Stats{
		TotalUsers:    donors,
		TotalRequests: requests,
		TotalFunds:    funds,
	}, nil
}

// staleRequestErr re-reads the request to distinguish a concurrent state
// change from a concurrent delete.
func (s *Service) staleRequestErr(ctx context.Context, id uuid.UUID, stateErr error) error {
	_, err := s.repo.RequestByID(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("request %s: %w", id, entity.ErrNotFound)
	}

	return fmt.Errorf("request %s: %w", id, stateErr)
}
