package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aidex-platform/aidex-server/internal/entity"
	"github.com/aidex-platform/aidex-server/internal/mocks"
	"github.com/aidex-platform/aidex-server/internal/policy"
	"github.com/aidex-platform/aidex-server/internal/service"
)

type Tester struct {
	s        *service.Service
	repo     *mocks.MockRepository
	gateway  *mocks.MockCheckoutGateway
	producer *mocks.MockProducer
}

func NewTester(t *testing.T) Tester {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	gateway := mocks.NewMockCheckoutGateway(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	return Tester{
		s:        service.New(repo, policy.New(), gateway, producer),
		repo:     repo,
		gateway:  gateway,
		producer: producer,
	}
}

func authCtx(email string) context.Context {
	return entity.CtxWithPrincipal(context.Background(), email)
}

func donor(email string) entity.User {
	return entity.User{
		ID:     uuid.Must(uuid.NewV4()),
		Email:  email,
		Name:   "Test Donor",
		Role:   entity.RoleDonor,
		Status: entity.UserStatusActive,
	}
}

func pendingRequest(requester string) entity.DonationRequest {
	return entity.DonationRequest{
		ID:             uuid.Must(uuid.NewV4()),
		RequesterEmail: requester,
		RecipientName:  "Patient",
		BloodGroup:     "A+",
		Hospital:       "Dhaka Medical College Hospital",
		Status:         entity.RequestStatusPending,
	}
}

func TestService_AcceptRequest(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	actor := donor("donor@example.com")
	req := pendingRequest("requester@example.com")

	accepted := req
	accepted.Status = entity.RequestStatusInprogress
	accepted.DonorName = actor.Name
	accepted.DonorEmail = actor.Email

	ctx := authCtx(actor.Email)

	c.repo.EXPECT().UserByEmail(ctx, actor.Email).Return(actor, nil)
	c.repo.EXPECT().RequestByID(ctx, req.ID).Return(req, nil)
	c.repo.EXPECT().AcceptRequest(ctx, req.ID, entity.DonorPatch{
		DonorName:  actor.Name,
		DonorEmail: actor.Email,
		Status:     entity.RequestStatusInprogress,
	}, gomock.Any()).Return(nil)
	c.repo.EXPECT().RequestByID(ctx, req.ID).Return(accepted, nil)
	c.producer.EXPECT().SendRequestAccepted(ctx, accepted, actor)

	got, err := c.s.AcceptRequest(ctx, req.ID)
	require.NoError(t, err)
	require.Equal(t, accepted, got)
}

func TestService_AcceptRequest_LostRace(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	actor := donor("donor@example.com")
	req := pendingRequest("requester@example.com")

	taken := req
	taken.Status = entity.RequestStatusInprogress
	taken.DonorEmail = "faster@example.com"

	ctx := authCtx(actor.Email)

	c.repo.EXPECT().UserByEmail(ctx, actor.Email).Return(actor, nil)
	c.repo.EXPECT().RequestByID(ctx, req.ID).Return(req, nil)
	c.repo.EXPECT().AcceptRequest(ctx, req.ID, gomock.Any(), gomock.Any()).Return(entity.ErrNotFound)
	c.repo.EXPECT().RequestByID(ctx, req.ID).Return(taken, nil)

	_, err := c.s.AcceptRequest(ctx, req.ID)
	require.ErrorIs(t, err, entity.ErrNotPending)
}

func TestService_AcceptRequest_NotDonor(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	actor := donor("admin@example.com")
	actor.Role = entity.RoleAdmin
	req := pendingRequest("requester@example.com")

	ctx := authCtx(actor.Email)

	c.repo.EXPECT().UserByEmail(ctx, actor.Email).Return(actor, nil)
	c.repo.EXPECT().RequestByID(ctx, req.ID).Return(req, nil)

	_, err := c.s.AcceptRequest(ctx, req.ID)
	require.ErrorIs(t, err, entity.ErrNotDonor)
}

func TestService_CreateRequest_BlockedUser(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	actor := donor("blocked@example.com")
	actor.Status = entity.UserStatusBlocked

	ctx := authCtx(actor.Email)

	c.repo.EXPECT().UserByEmail(ctx, actor.Email).Return(actor, nil)

	_, err := c.s.CreateRequest(ctx, entity.DonationRequest{BloodGroup: "B+"})
	require.ErrorIs(t, err, entity.ErrAccountBlocked)
}

func TestService_CreateRequest_ClearsDonorFields(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	actor := donor("requester@example.com")
	actor.Role = entity.RoleRequester

	ctx := authCtx(actor.Email)

	c.repo.EXPECT().UserByEmail(ctx, actor.Email).Return(actor, nil)
	c.repo.EXPECT().CreateRequest(ctx, gomock.Any()).Return(nil)

	got, err := c.s.CreateRequest(ctx, entity.DonationRequest{
		BloodGroup: "B+",
		DonorName:  "smuggled",
		DonorEmail: "smuggled@example.com",
		Status:     entity.RequestStatusDone,
	})
	require.NoError(t, err)
	require.Equal(t, entity.RequestStatusPending, got.Status)
	require.Empty(t, got.DonorName)
	require.Empty(t, got.DonorEmail)
	require.Equal(t, actor.Email, got.RequesterEmail)
}

func TestService_Register_IdentityMismatch(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	ctx := authCtx("real@example.com")

	_, err := c.s.Register(ctx, entity.User{Email: "other@example.com", Name: "Impostor"})
	require.ErrorIs(t, err, entity.ErrIdentityMismatch)
}

func TestService_Register_DefaultsRole(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	ctx := authCtx("new@example.com")

	c.repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(nil)

	got, err := c.s.Register(ctx, entity.User{Email: "new@example.com", Name: "New User"})
	require.NoError(t, err)
	require.Equal(t, entity.RoleRequester, got.Role)
	require.Equal(t, entity.UserStatusActive, got.Status)
	require.NotZero(t, got.ID)
}

func TestService_UnknownPrincipal(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	ctx := authCtx("ghost@example.com")

	c.repo.EXPECT().UserByEmail(ctx, "ghost@example.com").Return(entity.User{}, entity.ErrNotFound)

	_, err := c.s.Me(ctx)
	require.ErrorIs(t, err, entity.ErrUnknownUser)
}

func TestService_Unauthenticated(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	_, err := c.s.Me(context.Background())
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestService_EditRequest_LostRace(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	actor := donor("requester@example.com")
	actor.Role = entity.RoleRequester
	req := pendingRequest(actor.Email)

	moved := req
	moved.Status = entity.RequestStatusInprogress

	ctx := authCtx(actor.Email)

	c.repo.EXPECT().UserByEmail(ctx, actor.Email).Return(actor, nil)
	c.repo.EXPECT().RequestByID(ctx, req.ID).Return(req, nil)
	c.repo.EXPECT().UpdateRequestDetails(ctx, req.ID, gomock.Any(), gomock.Any()).Return(entity.ErrNotFound)
	c.repo.EXPECT().RequestByID(ctx, req.ID).Return(moved, nil)

	_, err := c.s.EditRequest(ctx, req.ID, entity.RequestDetails{BloodGroup: "O-"})
	require.ErrorIs(t, err, entity.ErrNotEditable)
}

func TestService_UpdateRequestStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	err := c.s.UpdateRequestStatus(authCtx("admin@example.com"), uuid.Must(uuid.NewV4()), "shipped")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_Statistics(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	actor := donor("volunteer@example.com")
	actor.Role = entity.RoleVolunteer

	ctx := authCtx(actor.Email)

	c.repo.EXPECT().UserByEmail(ctx, actor.Email).Return(actor, nil)
	c.repo.EXPECT().CountUsersByRole(ctx, entity.RoleDonor).Return(int64(3), nil)
	c.repo.EXPECT().CountRequests(ctx).Return(int64(7), nil)
	c.repo.EXPECT().SumFunds(ctx).Return(decimal.RequireFromString("35"), nil)

	got, err := c.s.Statistics(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), got.TotalUsers)
	require.Equal(t, int64(7), got.TotalRequests)
	require.True(t, got.TotalFunds.Equal(decimal.RequireFromString("35")))
}

func TestService_Statistics_RequesterDenied(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	actor := donor("requester@example.com")
	actor.Role = entity.RoleRequester

	ctx := authCtx(actor.Email)

	c.repo.EXPECT().UserByEmail(ctx, actor.Email).Return(actor, nil)

	_, err := c.s.Statistics(ctx)
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestService_SetUserRoleStatus_NothingToChange(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	actor := donor("admin@example.com")
	actor.Role = entity.RoleAdmin

	ctx := authCtx(actor.Email)

	c.repo.EXPECT().UserByEmail(ctx, actor.Email).Return(actor, nil)

	err := c.s.SetUserRoleStatus(ctx, "someone@example.com", entity.RoleStatusPatch{})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
