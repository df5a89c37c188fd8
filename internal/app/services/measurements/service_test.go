package measurements

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack-app/fittrack/internal/app/apperr"
	"github.com/fittrack-app/fittrack/internal/app/domain/user"
	"github.com/fittrack-app/fittrack/internal/app/storage/memory"
	"github.com/fittrack-app/fittrack/internal/logging"
)

func ptr[T any](v T) *T { return &v }

func newFixture(t *testing.T) (*Service, string) {
	t.Helper()
	store := memory.New()
	u, err := store.CreateUser(context.Background(), user.User{Username: "alice", Email: "a@b.example", IsActive: true})
	require.NoError(t, err)
	return New(store, store, logging.NewNop()), u.ID
}

func TestCreate(t *testing.T) {
	svc, userID := newFixture(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateParams{
		UserID:     userID,
		MeasuredAt: ptr(time.Date(2026, 8, 28, 7, 0, 0, 0, time.UTC)),
		WeightKg:   ptr(78.4),
		WaistCm:    ptr(84.0),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Nil(t, m.BodyFatPercent)
}

func TestCreateValidation(t *testing.T) {
	svc, userID := newFixture(t)
	ctx := context.Background()
	at := ptr(time.Date(2026, 8, 28, 7, 0, 0, 0, time.UTC))

	_, err := svc.Create(ctx, CreateParams{MeasuredAt: at})
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err))

	_, err = svc.Create(ctx, CreateParams{UserID: userID})
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err))

	_, err = svc.Create(ctx, CreateParams{UserID: "ghost", MeasuredAt: at})
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err), "dangling user reference")
}

func TestUpdatePartial(t *testing.T) {
	svc, userID := newFixture(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateParams{
		UserID:     userID,
		MeasuredAt: ptr(time.Date(2026, 8, 28, 7, 0, 0, 0, time.UTC)),
		WeightKg:   ptr(78.4),
		Notes:      "morning",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, m.ID, UpdateParams{BodyFatPercent: ptr(18.2), Notes: ptr("")})
	require.NoError(t, err)
	require.NotNil(t, updated.WeightKg)
	assert.InDelta(t, 78.4, *updated.WeightKg, 1e-9, "omitted field unchanged")
	require.NotNil(t, updated.BodyFatPercent)
	assert.Empty(t, updated.Notes, "notes accepts explicit empty")
	assert.Equal(t, userID, updated.UserID, "owner immutable")
}

func TestListOrderedByMeasuredAtDesc(t *testing.T) {
	svc, userID := newFixture(t)
	ctx := context.Background()

	for _, d := range []int{5, 20, 12} {
		_, err := svc.Create(ctx, CreateParams{
			UserID:     userID,
			MeasuredAt: ptr(time.Date(2026, 8, d, 7, 0, 0, 0, time.UTC)),
			WeightKg:   ptr(78.0),
		})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].MeasuredAt.After(list[1].MeasuredAt))
	assert.True(t, list[1].MeasuredAt.After(list[2].MeasuredAt))
}
