package users

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack-app/fittrack/internal/app/apperr"
	"github.com/fittrack-app/fittrack/internal/app/auth"
	"github.com/fittrack-app/fittrack/internal/app/storage/memory"
	"github.com/fittrack-app/fittrack/internal/logging"
)

func newService(t *testing.T) *Service {
	t.Helper()
	tokens := auth.NewManager("test-secret", "fittrack", "fittrack-clients")
	return New(memory.New(), tokens, logging.NewNop())
}

func TestRegister(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterParams{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.True(t, u.IsActive)
	assert.False(t, u.IsEmailVerified)
	assert.Equal(t, auth.Digest("pw"), u.PasswordHash)
	assert.Nil(t, u.LastLoginAt)
}

func TestRegisterValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, p := range []RegisterParams{
		{Email: "a@b.example", Password: "pw"},
		{Username: "alice", Password: "pw"},
		{Username: "alice", Email: "a@b.example"},
		{Username: "  ", Email: "a@b.example", Password: "pw"},
	} {
		_, err := svc.Register(ctx, p)
		assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err), "%+v", p)
	}
}

func TestRegisterDuplicates(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterParams{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterParams{Username: "alice", Email: "other@example.com", Password: "pw"})
	assert.Equal(t, http.StatusConflict, apperr.HTTPStatus(err))

	_, err = svc.Register(ctx, RegisterParams{Username: "bob", Email: "alice@example.com", Password: "pw"})
	assert.Equal(t, http.StatusConflict, apperr.HTTPStatus(err))
}

func TestLogin(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterParams{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	session, err := svc.Login(ctx, LoginParams{Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, session.UserID)
	assert.Equal(t, "alice", session.Username)
	assert.NotEmpty(t, session.Token)

	// Login stamps last_login_at.
	refreshed, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, refreshed.LastLoginAt)
}

func TestLoginFailures(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterParams{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginParams{Email: "alice@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, apperr.HTTPStatus(err))

	_, err = svc.Login(ctx, LoginParams{Email: "nobody@example.com", Password: "pw"})
	assert.Equal(t, http.StatusUnauthorized, apperr.HTTPStatus(err))

	_, err = svc.Login(ctx, LoginParams{Email: "alice@example.com"})
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err))
}

func TestLoginInactiveAccount(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterParams{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	inactive := false
	_, err = svc.Update(ctx, u.ID, UpdateParams{IsActive: &inactive})
	require.NoError(t, err)

	// Correct password on a deactivated account is forbidden, not
	// unauthorized; a wrong password still reads as bad credentials.
	_, err = svc.Login(ctx, LoginParams{Email: "alice@example.com", Password: "pw"})
	assert.Equal(t, http.StatusForbidden, apperr.HTTPStatus(err))

	_, err = svc.Login(ctx, LoginParams{Email: "alice@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, apperr.HTTPStatus(err))
}

func TestUpdatePartial(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterParams{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	newEmail := "new@example.com"
	updated, err := svc.Update(ctx, u.ID, UpdateParams{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "alice", updated.Username, "omitted field unchanged")
	assert.Equal(t, u.PasswordHash, updated.PasswordHash)

	// A blank username is ignored, not applied.
	blank := "  "
	updated, err = svc.Update(ctx, u.ID, UpdateParams{Username: &blank})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username)
}

func TestUpdateConflictExcludesSelf(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterParams{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterParams{Username: "bob", Email: "bob@example.com", Password: "pw"})
	require.NoError(t, err)

	// Re-submitting your own username is not a conflict.
	same := "alice"
	_, err = svc.Update(ctx, u.ID, UpdateParams{Username: &same})
	assert.NoError(t, err)

	// Taking someone else's is.
	taken := "bob"
	_, err = svc.Update(ctx, u.ID, UpdateParams{Username: &taken})
	assert.Equal(t, http.StatusConflict, apperr.HTTPStatus(err))
}

func TestGetDeleteNotFound(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	assert.Equal(t, http.StatusNotFound, apperr.HTTPStatus(err))

	err = svc.Delete(ctx, "missing")
	assert.Equal(t, http.StatusNotFound, apperr.HTTPStatus(err))
}
