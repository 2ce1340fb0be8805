package entity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aidex-platform/aidex-server/internal/entity"
)

func TestRole_Validate(t *testing.T) {
	t.Parallel()

	for _, role := range []entity.Role{entity.RoleDonor, entity.RoleAdmin, entity.RoleVolunteer, entity.RoleRequester} {
		require.NoError(t, role.Validate())
	}

	err := entity.Role("superuser").Validate()
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestRequestStatus_Validate(t *testing.T) {
	t.Parallel()

	for _, status := range []entity.RequestStatus{
		entity.RequestStatusPending,
		entity.RequestStatusInprogress,
		entity.RequestStatusDone,
		entity.RequestStatusCancelled,
	} {
		require.NoError(t, status.Validate())
	}

	err := entity.RequestStatus("archived").Validate()
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestRequestStatus_Terminal(t *testing.T) {
	t.Parallel()

	require.True(t, entity.RequestStatusDone.Terminal())
	require.True(t, entity.RequestStatusCancelled.Terminal())
	require.False(t, entity.RequestStatusPending.Terminal())
	require.False(t, entity.RequestStatusInprogress.Terminal())
}

func TestPrincipalFromCtx(t *testing.T) {
	t.Parallel()

	_, err := entity.PrincipalFromCtx(context.Background())
	require.ErrorIs(t, err, entity.ErrUnauthenticated)

	ctx := entity.CtxWithPrincipal(context.Background(), "user@example.com")

	email, err := entity.PrincipalFromCtx(ctx)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", email)
}
