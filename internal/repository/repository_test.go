package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/aidex-platform/aidex-server/internal/entity"
	"github.com/aidex-platform/aidex-server/internal/repository"
	"github.com/aidex-platform/aidex-server/pkg/postgres"
)

func TestRepository_CreateUser(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	u := newUser(entity.RoleDonor)

	err := repo.CreateUser(ctx, u)
	require.NoError(t, err)

	got, err := repo.UserByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u, got)

	// Same email again is a duplicate regardless of the new ID.
	dup := u
	dup.ID = uuid.Must(uuid.NewV4())

	err = repo.CreateUser(ctx, dup)
	require.ErrorIs(t, err, entity.ErrDuplicateEmail)
}

func TestRepository_UserByEmail_NotFound(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)

	_, err := repo.UserByEmail(context.Background(), uuid.Must(uuid.NewV4()).String()+"@example.com")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_Donors(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	active := newUser(entity.RoleDonor)
	active.BloodGroup = "AB-"
	active.District = "Sylhet"

	blocked := newUser(entity.RoleDonor)
	blocked.BloodGroup = "AB-"
	blocked.District = "Sylhet"
	blocked.Status = entity.UserStatusBlocked

	requester := newUser(entity.RoleRequester)
	requester.BloodGroup = "AB-"
	requester.District = "Sylhet"

	for _, u := range []entity.User{active, blocked, requester} {
		require.NoError(t, repo.CreateUser(ctx, u))
	}

	got, err := repo.Donors(ctx, entity.DonorFilter{BloodGroup: "AB-", District: "Sylhet"})
	require.NoError(t, err)

	emails := make([]string, 0, len(got))
	for _, u := range got {
		emails = append(emails, u.Email)
	}

	require.Contains(t, emails, active.Email)
	require.NotContains(t, emails, blocked.Email)
	require.NotContains(t, emails, requester.Email)
}

func TestRepository_SetUserRoleStatus(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	u := newUser(entity.RoleRequester)
	require.NoError(t, repo.CreateUser(ctx, u))

	role := entity.RoleVolunteer

	err := repo.SetUserRoleStatus(ctx, u.Email, entity.RoleStatusPatch{Role: &role}, time.Now())
	require.NoError(t, err)

	got, err := repo.UserByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, entity.RoleVolunteer, got.Role)
	require.Equal(t, entity.UserStatusActive, got.Status)
}

func TestRepository_AcceptRequest(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	req := newRequest()
	require.NoError(t, repo.CreateRequest(ctx, req))

	patch := entity.DonorPatch{
		DonorName:  "Donor",
		DonorEmail: "donor@example.com",
		Status:     entity.RequestStatusInprogress,
	}

	err := repo.AcceptRequest(ctx, req.ID, patch, time.Now())
	require.NoError(t, err)

	got, err := repo.RequestByID(ctx, req.ID)
	require.NoError(t, err)
	require.Equal(t, entity.RequestStatusInprogress, got.Status)
	require.Equal(t, patch.DonorName, got.DonorName)
	require.Equal(t, patch.DonorEmail, got.DonorEmail)

	// A second accept misses the pending guard.
	err = repo.AcceptRequest(ctx, req.ID, patch, time.Now())
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_UpdateRequestDetails_NotPending(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	req := newRequest()
	require.NoError(t, repo.CreateRequest(ctx, req))

	require.NoError(t, repo.UpdateRequestStatus(ctx, req.ID, entity.RequestStatusCancelled, time.Now()))

	err := repo.UpdateRequestDetails(ctx, req.ID, entity.RequestDetails{BloodGroup: "O-"}, time.Now())
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_DeleteRequest(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	req := newRequest()
	require.NoError(t, repo.CreateRequest(ctx, req))

	require.NoError(t, repo.DeleteRequest(ctx, req.ID))

	_, err := repo.RequestByID(ctx, req.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_CreateFund_Duplicate(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	f := entity.Fund{
		ID:            uuid.Must(uuid.NewV4()),
		TransactionID: uuid.Must(uuid.NewV4()).String(),
		Amount:        decimal.RequireFromString("150.00"),
		Email:         "payer@example.com",
		DonorName:     "Payer",
		FundingDate:   time.Now().Truncate(time.Millisecond),
	}

	require.NoError(t, repo.CreateFund(ctx, f))

	dup := f
	dup.ID = uuid.Must(uuid.NewV4())

	err := repo.CreateFund(ctx, dup)
	require.ErrorIs(t, err, entity.ErrDuplicateTransaction)
}

func TestRepository_CheckoutSessions(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	now := time.Now().Truncate(time.Millisecond)

	s := entity.CheckoutSession{
		ID:        uuid.Must(uuid.NewV4()),
		SessionID: uuid.Must(uuid.NewV4()).String(),
		Email:     "payer@example.com",
		Name:      "Payer",
		Amount:    decimal.RequireFromString("99.99"),
		Status:    entity.CheckoutStatusCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}

	require.NoError(t, repo.CreateCheckoutSession(ctx, s))

	got, err := repo.CheckoutSessionBySessionID(ctx, s.SessionID)
	require.NoError(t, err)
	require.Equal(t, s.ID, got.ID)
	require.Equal(t, entity.CheckoutStatusCreated, got.Status)

	unresolved, err := repo.UnresolvedCheckoutSessions(ctx, time.Hour)
	require.NoError(t, err)

	ids := make([]uuid.UUID, 0, len(unresolved))
	for _, v := range unresolved {
		ids = append(ids, v.ID)
	}

	require.Contains(t, ids, s.ID)

	require.NoError(t, repo.UpdateCheckoutSessionStatus(ctx, s.ID, entity.CheckoutStatusPaid, time.Now()))

	got, err = repo.CheckoutSessionBySessionID(ctx, s.SessionID)
	require.NoError(t, err)
	require.Equal(t, entity.CheckoutStatusPaid, got.Status)
}

func newUser(role entity.Role) entity.User {
	now := time.Now().Truncate(time.Millisecond)

	return entity.User{
		ID:         uuid.Must(uuid.NewV4()),
		Email:      uuid.Must(uuid.NewV4()).String() + "@example.com",
		Name:       "Test User",
		Role:       role,
		Status:     entity.UserStatusActive,
		BloodGroup: "A+",
		District:   "Dhaka",
		Upazila:    "Savar",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func newRequest() entity.DonationRequest {
	now := time.Now().Truncate(time.Millisecond)

	return entity.DonationRequest{
		ID:             uuid.Must(uuid.NewV4()),
		RequesterEmail: uuid.Must(uuid.NewV4()).String() + "@example.com",
		RecipientName:  "Patient",
		BloodGroup:     "B+",
		District:       "Dhaka",
		Upazila:        "Savar",
		Hospital:       "Dhaka Medical College Hospital",
		DonationDate:   "2026-09-15",
		DonationTime:   "10:00",
		Status:         entity.RequestStatusPending,
		RequestedAt:    now,
		UpdatedAt:      now,
	}
}

func newRepository(t *testing.T) *repository.Repository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	err = postgres.UpMigrations(dsn)
	require.NoError(t, err)

	return repository.New(pool)
}
