package goals

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack-app/fittrack/internal/app/apperr"
	"github.com/fittrack-app/fittrack/internal/app/domain/goal"
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

func TestCreateAppliesDefaults(t *testing.T) {
	svc, userID := newFixture(t)
	ctx := context.Background()

	g, err := svc.Create(ctx, CreateParams{
		UserID:      userID,
		GoalType:    "Weight",
		GoalName:    "Cut to 75kg",
		TargetValue: 75,
		TargetDate:  ptr(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	assert.Equal(t, goal.StatusActive, g.Status)
	assert.False(t, g.StartDate.IsZero(), "start date defaults to today")
	assert.Zero(t, g.CurrentValue)
}

func TestCreateValidation(t *testing.T) {
	svc, userID := newFixture(t)
	ctx := context.Background()
	target := ptr(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC))

	for name, p := range map[string]CreateParams{
		"missing user":   {GoalType: "Weight", GoalName: "x", TargetValue: 1, TargetDate: target},
		"dangling user":  {UserID: "ghost", GoalType: "Weight", GoalName: "x", TargetValue: 1, TargetDate: target},
		"missing name":   {UserID: userID, GoalType: "Weight", TargetValue: 1, TargetDate: target},
		"missing type":   {UserID: userID, GoalName: "x", TargetValue: 1, TargetDate: target},
		"zero target":    {UserID: userID, GoalType: "Weight", GoalName: "x", TargetDate: target},
		"missing t-date": {UserID: userID, GoalType: "Weight", GoalName: "x", TargetValue: 1},
	} {
		_, err := svc.Create(ctx, p)
		assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err), name)
	}
}

func TestUpdatePartial(t *testing.T) {
	svc, userID := newFixture(t)
	ctx := context.Background()

	g, err := svc.Create(ctx, CreateParams{
		UserID:      userID,
		GoalType:    "Weight",
		GoalName:    "Cut to 75kg",
		TargetValue: 75,
		TargetDate:  ptr(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, g.ID, UpdateParams{CurrentValue: ptr(80.0), Status: ptr(goal.StatusPaused)})
	require.NoError(t, err)
	assert.InDelta(t, 80.0, updated.CurrentValue, 1e-9)
	assert.Equal(t, goal.StatusPaused, updated.Status)
	assert.Equal(t, "Cut to 75kg", updated.GoalName)

	_, err = svc.Update(ctx, g.ID, UpdateParams{TargetValue: ptr(0.0)})
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err))
}

func TestListByUserOrderedByTargetDate(t *testing.T) {
	svc, userID := newFixture(t)
	ctx := context.Background()

	for _, month := range []time.Month{12, 9, 10} {
		_, err := svc.Create(ctx, CreateParams{
			UserID:      userID,
			GoalType:    "Weight",
			GoalName:    "goal",
			TargetValue: 1,
			TargetDate:  ptr(time.Date(2026, month, 1, 0, 0, 0, 0, time.UTC)),
		})
		require.NoError(t, err)
	}

	list, err := svc.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].TargetDate.Before(list[1].TargetDate))
	assert.True(t, list[1].TargetDate.Before(list[2].TargetDate))
}
