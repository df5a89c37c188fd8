package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack-app/fittrack/internal/app"
	"github.com/fittrack-app/fittrack/internal/app/auth"
	"github.com/fittrack-app/fittrack/internal/app/httpapi"
	"github.com/fittrack-app/fittrack/internal/logging"
)

func ptr[T any](v T) *T { return &v }

func newClient(t *testing.T) *Client {
	t.Helper()
	tokens := auth.NewManager("test-secret", "fittrack", "fittrack-clients")
	application := app.New(app.Stores{}, tokens, logging.NewNop())
	srv := httptest.NewServer(httpapi.New(application, logging.NewNop()).Router())
	t.Cleanup(srv.Close)

	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

func TestRegisterAndLogin(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	u, err := c.Register(ctx, RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.False(t, c.Session().Authenticated(), "register does not log in")

	session, err := c.Login(ctx, "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, u.ID, session.UserID)
	assert.True(t, c.Session().Authenticated())
	assert.False(t, c.Session().Expired(time.Now()))

	c.Logout()
	assert.False(t, c.Session().Authenticated())
}

func TestLoginFailureSurfacesAPIError(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	_, err := c.Register(ctx, RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = c.Login(ctx, "alice@example.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.False(t, c.Session().Authenticated(), "failed login leaves session anonymous")
}

func TestWorkoutFlow(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	u, err := c.Register(ctx, RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)
	_, err = c.Login(ctx, "alice@example.com", "pw")
	require.NoError(t, err)

	ex, err := c.CreateExercise(ctx, ExerciseCreate{Name: "Squat", Category: "Strength", MetValue: 5})
	require.NoError(t, err)

	start := time.Date(2026, 8, 28, 7, 0, 0, 0, time.UTC)
	log, err := c.CreateWorkoutLog(ctx, WorkoutLogCreate{
		UserID:      u.ID,
		WorkoutDate: ptr(start),
		StartTime:   ptr(start),
		EndTime:     ptr(start.Add(45 * time.Minute)),
		WorkoutType: "Strength",
	})
	require.NoError(t, err)
	require.NotNil(t, log.DurationMinutes)
	assert.Equal(t, 45, *log.DurationMinutes)

	entry, err := c.CreateWorkoutExercise(ctx, WorkoutExerciseCreate{
		WorkoutLogID: log.ID,
		ExerciseID:   ex.ID,
		OrderIndex:   0,
		Sets:         ptr(3),
		Reps:         ptr(8),
	})
	require.NoError(t, err)

	entries, err := c.ListWorkoutExercisesByLog(ctx, log.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)

	// Updates return no body; re-fetch to observe the change.
	require.NoError(t, c.UpdateWorkoutLog(ctx, log.ID, WorkoutLogUpdate{Notes: ptr("felt strong")}))
	refreshed, err := c.GetWorkoutLog(ctx, log.ID)
	require.NoError(t, err)
	assert.Equal(t, "felt strong", refreshed.Notes)

	require.NoError(t, c.DeleteWorkoutLog(ctx, log.ID))
	_, err = c.GetWorkoutLog(ctx, log.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestDashboard(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	u, err := c.Register(ctx, RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	d, err := c.DashboardSummary(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", d.Username)

	trend, err := c.WeeklyCalorieTrend(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, trend)
}

func TestDerivedStats(t *testing.T) {
	p := Profile{HeightCm: ptr(175.0), CurrentWeightKg: ptr(70.0)}
	assert.InDelta(t, 22.86, p.BMI(), 0.01)
	assert.Equal(t, "Normal", p.BMICategory())

	assert.Zero(t, Profile{}.BMI())
	assert.Empty(t, Profile{}.BMICategory())

	g := Goal{CurrentValue: 150, TargetValue: 100}
	assert.Equal(t, 120, g.Progress(), "clamped")

	day := func(d int) time.Time { return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC) }
	delta, ok := WeightDelta([]BodyMeasurement{
		{MeasuredAt: day(1), WeightKg: ptr(82.0)},
		{MeasuredAt: day(15), WeightKg: ptr(80.5)},
		{MeasuredAt: day(8)}, // no weight, skipped
		{MeasuredAt: day(10), WeightKg: ptr(81.0)},
	})
	require.True(t, ok)
	assert.InDelta(t, -0.5, delta, 1e-9)
}
