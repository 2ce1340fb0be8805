package policy_test

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/aidex-platform/aidex-server/internal/entity"
	"github.com/aidex-platform/aidex-server/internal/policy"
)

func donor(email string) entity.User {
	return entity.User{
		ID:     uuid.Must(uuid.NewV4()),
		Email:  email,
		Name:   "Test Donor",
		Role:   entity.RoleDonor,
		Status: entity.UserStatusActive,
	}
}

func admin(email string) entity.User {
	u := donor(email)
	u.Role = entity.RoleAdmin
	return u
}

func volunteer(email string) entity.User {
	u := donor(email)
	u.Role = entity.RoleVolunteer
	return u
}

func requester(email string) entity.User {
	u := donor(email)
	u.Role = entity.RoleRequester
	return u
}

func pendingRequest(owner string) *entity.DonationRequest {
	return &entity.DonationRequest{
		ID:             uuid.Must(uuid.NewV4()),
		RequesterEmail: owner,
		Status:         entity.RequestStatusPending,
	}
}

func TestDecide_CreateRequest(t *testing.T) {
	t.Parallel()

	e := policy.New()

	for _, tt := range []struct {
		name    string
		actor   entity.User
		target  string
		wantErr error
	}{
		{
			name:   "active requester creates own request",
			actor:  requester("a@example.com"),
			target: "a@example.com",
		},
		{
			name: "blocked user denied",
			actor: func() entity.User {
				u := requester("a@example.com")
				u.Status = entity.UserStatusBlocked
				return u
			}(),
			target:  "a@example.com",
			wantErr: entity.ErrAccountBlocked,
		},
		{
			name:    "requester email must match principal",
			actor:   requester("a@example.com"),
			target:  "b@example.com",
			wantErr: entity.ErrIdentityMismatch,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := e.Decide(tt.actor, policy.ActionCreateRequest, policy.Target{Email: tt.target})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestDecide_EditRequestDetails(t *testing.T) {
	t.Parallel()

	e := policy.New()
	owner := "owner@example.com"

	t.Run("owner edits pending request", func(t *testing.T) {
		t.Parallel()

		err := e.Decide(requester(owner), policy.ActionEditRequestDetails,
			policy.Target{Request: pendingRequest(owner)})
		require.NoError(t, err)
	})

	t.Run("admin edits someone else's pending request", func(t *testing.T) {
		t.Parallel()

		err := e.Decide(admin("admin@example.com"), policy.ActionEditRequestDetails,
			policy.Target{Request: pendingRequest(owner)})
		require.NoError(t, err)
	})

	t.Run("stranger denied", func(t *testing.T) {
		t.Parallel()

		err := e.Decide(donor("other@example.com"), policy.ActionEditRequestDetails,
			policy.Target{Request: pendingRequest(owner)})
		require.ErrorIs(t, err, entity.ErrForbidden)
	})

	// Admin cannot bypass the pending gate.
	for _, status := range []entity.RequestStatus{
		entity.RequestStatusInprogress,
		entity.RequestStatusDone,
		entity.RequestStatusCancelled,
	} {
		status := status
		t.Run("not editable once "+status.String(), func(t *testing.T) {
			t.Parallel()

			req := pendingRequest(owner)
			req.Status = status

			err := e.Decide(admin("admin@example.com"), policy.ActionEditRequestDetails,
				policy.Target{Request: req})
			require.ErrorIs(t, err, entity.ErrNotEditable)

			err = e.Decide(requester(owner), policy.ActionEditRequestDetails,
				policy.Target{Request: req})
			require.ErrorIs(t, err, entity.ErrNotEditable)
		})
	}
}

func TestDecide_AcceptRequest(t *testing.T) {
	t.Parallel()

	e := policy.New()
	owner := "owner@example.com"

	t.Run("donor accepts pending request", func(t *testing.T) {
		t.Parallel()

		actor := donor("donor@example.com")

		err := e.Decide(actor, policy.ActionAcceptRequest,
			policy.Target{Request: pendingRequest(owner)})
		require.NoError(t, err)

		patch := e.AcceptPatch(actor)
		require.Equal(t, entity.RequestStatusInprogress, patch.Status)
		require.Equal(t, actor.Email, patch.DonorEmail)
		require.Equal(t, actor.Name, patch.DonorName)
	})

	// Non-donors are denied regardless of target state.
	for _, actor := range []entity.User{
		admin("admin@example.com"),
		volunteer("vol@example.com"),
		requester("req@example.com"),
	} {
		actor := actor
		t.Run("role "+actor.Role.String()+" denied", func(t *testing.T) {
			t.Parallel()

			err := e.Decide(actor, policy.ActionAcceptRequest,
				policy.Target{Request: pendingRequest(owner)})
			require.ErrorIs(t, err, entity.ErrNotDonor)
		})
	}

	t.Run("second accept on inprogress request denied", func(t *testing.T) {
		t.Parallel()

		req := pendingRequest(owner)
		req.Status = entity.RequestStatusInprogress
		req.DonorEmail = "first@example.com"

		err := e.Decide(donor("second@example.com"), policy.ActionAcceptRequest,
			policy.Target{Request: req})
		require.ErrorIs(t, err, entity.ErrNotPending)
	})
}

func TestDecide_UpdateRequestStatus(t *testing.T) {
	t.Parallel()

	e := policy.New()
	owner := "owner@example.com"

	inprogress := func() *entity.DonationRequest {
		req := pendingRequest(owner)
		req.Status = entity.RequestStatusInprogress
		return req
	}

	t.Run("admin may update any request", func(t *testing.T) {
		t.Parallel()

		err := e.Decide(admin("admin@example.com"), policy.ActionUpdateRequestStatus,
			policy.Target{Request: inprogress(), NewStatus: entity.RequestStatusDone})
		require.NoError(t, err)
	})

	t.Run("volunteer may update any request", func(t *testing.T) {
		t.Parallel()

		err := e.Decide(volunteer("vol@example.com"), policy.ActionUpdateRequestStatus,
			policy.Target{Request: inprogress(), NewStatus: entity.RequestStatusCancelled})
		require.NoError(t, err)
	})

	t.Run("donor-requester may update own inprogress request", func(t *testing.T) {
		t.Parallel()

		err := e.Decide(donor(owner), policy.ActionUpdateRequestStatus,
			policy.Target{Request: inprogress(), NewStatus: entity.RequestStatusDone})
		require.NoError(t, err)
	})

	t.Run("donor-requester denied while pending", func(t *testing.T) {
		t.Parallel()

		err := e.Decide(donor(owner), policy.ActionUpdateRequestStatus,
			policy.Target{Request: pendingRequest(owner), NewStatus: entity.RequestStatusDone})
		require.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("unrelated donor denied", func(t *testing.T) {
		t.Parallel()

		err := e.Decide(donor("other@example.com"), policy.ActionUpdateRequestStatus,
			policy.Target{Request: inprogress(), NewStatus: entity.RequestStatusDone})
		require.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("loose engine allows reopening a terminal request", func(t *testing.T) {
		t.Parallel()

		req := pendingRequest(owner)
		req.Status = entity.RequestStatusDone

		err := e.Decide(admin("admin@example.com"), policy.ActionUpdateRequestStatus,
			policy.Target{Request: req, NewStatus: entity.RequestStatusPending})
		require.NoError(t, err)
	})
}

func TestDecide_UpdateRequestStatus_Strict(t *testing.T) {
	t.Parallel()

	e := policy.NewStrict()
	actor := admin("admin@example.com")

	reqWith := func(status entity.RequestStatus) *entity.DonationRequest {
		req := pendingRequest("owner@example.com")
		req.Status = status
		return req
	}

	for _, tt := range []struct {
		name string
		from entity.RequestStatus
		to   entity.RequestStatus
		ok   bool
	}{
		{name: "inprogress to done", from: entity.RequestStatusInprogress, to: entity.RequestStatusDone, ok: true},
		{name: "inprogress to cancelled", from: entity.RequestStatusInprogress, to: entity.RequestStatusCancelled, ok: true},
		{name: "inprogress back to pending", from: entity.RequestStatusInprogress, to: entity.RequestStatusPending, ok: true},
		{name: "pending to cancelled", from: entity.RequestStatusPending, to: entity.RequestStatusCancelled, ok: true},
		{name: "pending to done", from: entity.RequestStatusPending, to: entity.RequestStatusDone, ok: false},
		{name: "done reopened", from: entity.RequestStatusDone, to: entity.RequestStatusPending, ok: false},
		{name: "cancelled reopened", from: entity.RequestStatusCancelled, to: entity.RequestStatusInprogress, ok: false},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := e.Decide(actor, policy.ActionUpdateRequestStatus,
				policy.Target{Request: reqWith(tt.from), NewStatus: tt.to})
			if tt.ok {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, entity.ErrInvalidTransition)
		})
	}
}

func TestDecide_DeleteRequest(t *testing.T) {
	t.Parallel()

	e := policy.New()
	owner := "owner@example.com"

	for _, tt := range []struct {
		name    string
		actor   entity.User
		wantErr error
	}{
		{name: "owner deletes own request", actor: requester(owner)},
		{name: "admin deletes any request", actor: admin("admin@example.com")},
		{name: "volunteer denied", actor: volunteer("vol@example.com"), wantErr: entity.ErrForbidden},
		{name: "unrelated donor denied", actor: donor("other@example.com"), wantErr: entity.ErrForbidden},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := e.Decide(tt.actor, policy.ActionDeleteRequest,
				policy.Target{Request: pendingRequest(owner)})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestDecide_EditOwnProfile(t *testing.T) {
	t.Parallel()

	e := policy.New()

	err := e.Decide(donor("a@example.com"), policy.ActionEditOwnProfile,
		policy.Target{Email: "a@example.com"})
	require.NoError(t, err)

	// The payload claiming to be another user never matters: only the
	// verified principal email does.
	err = e.Decide(donor("a@example.com"), policy.ActionEditOwnProfile,
		policy.Target{Email: "b@example.com"})
	require.ErrorIs(t, err, entity.ErrIdentityMismatch)
}

func TestDecide_Views(t *testing.T) {
	t.Parallel()

	e := policy.New()

	for _, tt := range []struct {
		name    string
		actor   entity.User
		action  policy.Action
		wantErr error
	}{
		{name: "admin views users", actor: admin("a@x.com"), action: policy.ActionViewAllUsers},
		{name: "volunteer denied users", actor: volunteer("v@x.com"), action: policy.ActionViewAllUsers, wantErr: entity.ErrUnauthorized},
		{name: "admin views requests", actor: admin("a@x.com"), action: policy.ActionViewAllRequests},
		{name: "volunteer views requests", actor: volunteer("v@x.com"), action: policy.ActionViewAllRequests},
		{name: "donor denied requests", actor: donor("d@x.com"), action: policy.ActionViewAllRequests, wantErr: entity.ErrUnauthorized},
		{name: "admin views statistics", actor: admin("a@x.com"), action: policy.ActionViewAggregateStatistics},
		{name: "volunteer views statistics", actor: volunteer("v@x.com"), action: policy.ActionViewAggregateStatistics},
		{name: "requester denied statistics", actor: requester("r@x.com"), action: policy.ActionViewAggregateStatistics, wantErr: entity.ErrUnauthorized},
		{name: "admin changes role", actor: admin("a@x.com"), action: policy.ActionChangeUserRoleOrStatus},
		{name: "volunteer denied role change", actor: volunteer("v@x.com"), action: policy.ActionChangeUserRoleOrStatus, wantErr: entity.ErrForbidden},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := e.Decide(tt.actor, tt.action, policy.Target{Email: tt.actor.Email})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestDecide_UnknownActor(t *testing.T) {
	t.Parallel()

	e := policy.New()

	err := e.Decide(entity.User{}, policy.ActionViewAllUsers, policy.Target{})
	require.ErrorIs(t, err, entity.ErrUnknownUser)
}
