package users_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"pawfect-match/internal/adapters/storage/memory"
	"pawfect-match/internal/domain/users"
	"pawfect-match/internal/platform/sentinel"
	"pawfect-match/internal/platform/validation"
)

func TestService_RegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := users.NewService(memory.New().Users())
	name := "user-" + uuid.NewString()

	u, err := svc.Register(ctx, " "+name+" ", "s3cret")
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, name, u.Username)
	require.Equal(t, users.RoleUser, u.Role)

	_, err = svc.Register(ctx, name, "other")
	require.ErrorIs(t, err, sentinel.ErrAlreadyExists)

	ok, err := svc.Authenticate(ctx, name, "s3cret")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.Authenticate(ctx, name, "wrong")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = svc.Authenticate(ctx, "ghost-"+uuid.NewString(), "s3cret")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestService_RegisterRejectsEmpty(t *testing.T) {
	svc := users.NewService(memory.New().Users())

	_, err := svc.Register(context.Background(), "  ", "")
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	require.True(t, verr.Has("username", validation.ReasonEmpty))
	require.True(t, verr.Has("password", validation.ReasonEmpty))
}

func TestService_PasswordIsOpaque(t *testing.T) {
	ctx := context.Background()
	svc := users.NewService(memory.New().Users())

	_, err := svc.Register(ctx, "spaces", "   ")
	require.NoError(t, err)

	ok, err := svc.Authenticate(ctx, "spaces", "   ")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.Authenticate(ctx, "spaces", " ")
	require.NoError(t, err)
	require.False(t, ok)
}
