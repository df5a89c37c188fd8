package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack-app/fittrack/internal/app/domain/goal"
	"github.com/fittrack-app/fittrack/internal/app/domain/measurement"
	"github.com/fittrack-app/fittrack/internal/app/domain/profile"
	"github.com/fittrack-app/fittrack/internal/app/domain/user"
	"github.com/fittrack-app/fittrack/internal/app/domain/workout"
)

func ptr[T any](v T) *T { return &v }

func TestDashboardSummary(t *testing.T) {
	store := New()
	ctx := context.Background()

	// Friday afternoon; the ISO week started Monday the 24th.
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	store.SetClock(func() time.Time { return now })

	u, err := store.CreateUser(ctx, user.User{Username: "alice", Email: "a@b.example", IsActive: true})
	require.NoError(t, err)

	_, err = store.CreateProfile(ctx, profile.Profile{
		UserID:          u.ID,
		FirstName:       "Alice",
		LastName:        "Smith",
		CurrentWeightKg: ptr(78.0),
		TargetWeightKg:  ptr(72.0),
		ActivityLevel:   "Moderate",
	})
	require.NoError(t, err)

	addLog := func(date time.Time, calories float64) {
		_, err := store.CreateWorkoutLog(ctx, workout.Log{
			UserID:              u.ID,
			WorkoutDate:         date,
			StartTime:           date,
			TotalCaloriesBurned: &calories,
			WorkoutType:         "Run",
		})
		require.NoError(t, err)
	}
	addLog(now.AddDate(0, 0, -1), 300) // this week, last 30 days
	addLog(now.AddDate(0, 0, -10), 250) // last 30 days only
	addLog(now.AddDate(0, 0, -40), 500) // outside both windows

	for _, status := range []string{goal.StatusActive, goal.StatusActive, goal.StatusCompleted} {
		_, err := store.CreateGoal(ctx, goal.Goal{UserID: u.ID, GoalName: "g", GoalType: "Weight", TargetValue: 1, Status: status})
		require.NoError(t, err)
	}

	_, err = store.CreateMeasurement(ctx, measurement.Measurement{
		UserID: u.ID, MeasuredAt: now.AddDate(0, 0, -5), WeightKg: ptr(79.0),
	})
	require.NoError(t, err)
	_, err = store.CreateMeasurement(ctx, measurement.Measurement{
		UserID: u.ID, MeasuredAt: now.AddDate(0, 0, -2), WeightKg: ptr(78.2),
	})
	require.NoError(t, err)
	// No weight; must not win the "latest" slot.
	_, err = store.CreateMeasurement(ctx, measurement.Measurement{
		UserID: u.ID, MeasuredAt: now.AddDate(0, 0, -1), WaistCm: ptr(84.0),
	})
	require.NoError(t, err)

	d, err := store.GetDashboardSummary(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", d.FullName)
	assert.Equal(t, int64(2), d.WorkoutsLast30Days)
	assert.InDelta(t, 300, d.CaloriesThisWeek, 1e-9)
	assert.Equal(t, int64(2), d.ActiveGoals)
	require.NotNil(t, d.LatestWeightKg)
	assert.InDelta(t, 78.2, *d.LatestWeightKg, 1e-9)
}

func TestDashboardSummaryUnknownUser(t *testing.T) {
	store := New()
	_, err := store.GetDashboardSummary(context.Background(), "ghost")
	assert.Error(t, err)
}

func TestWeeklyTrend(t *testing.T) {
	store := New()
	ctx := context.Background()

	u, err := store.CreateUser(ctx, user.User{Username: "alice", Email: "a@b.example", IsActive: true})
	require.NoError(t, err)

	addLog := func(date time.Time, minutes int, calories float64) {
		_, err := store.CreateWorkoutLog(ctx, workout.Log{
			UserID:              u.ID,
			WorkoutDate:         date,
			StartTime:           date,
			DurationMinutes:     &minutes,
			TotalCaloriesBurned: &calories,
			WorkoutType:         "Run",
		})
		require.NoError(t, err)
	}
	// Two workouts in ISO week 35 (Mon Aug 24 - Sun Aug 30), one in week 34.
	addLog(time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC), 30, 200)
	addLog(time.Date(2026, 8, 27, 8, 0, 0, 0, time.UTC), 45, 350)
	addLog(time.Date(2026, 8, 18, 8, 0, 0, 0, time.UTC), 60, 500)

	trend, err := store.ListWeeklyTrend(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, trend, 2)

	assert.True(t, trend[0].WeekStart.Before(trend[1].WeekStart), "oldest week first")
	assert.Equal(t, int64(1), trend[0].WorkoutCount)
	assert.Equal(t, int64(2), trend[1].WorkoutCount)
	assert.InDelta(t, 75, trend[1].TotalMinutes, 1e-9)
	assert.InDelta(t, 550, trend[1].TotalCalories, 1e-9)
	assert.Equal(t, time.Monday, trend[1].WeekStart.Weekday())
}

func TestListWorkoutLogsFilter(t *testing.T) {
	store := New()
	ctx := context.Background()

	a, err := store.CreateUser(ctx, user.User{Username: "a", Email: "a@x.example"})
	require.NoError(t, err)
	b, err := store.CreateUser(ctx, user.User{Username: "b", Email: "b@x.example"})
	require.NoError(t, err)

	for _, id := range []string{a.ID, a.ID, b.ID} {
		_, err := store.CreateWorkoutLog(ctx, workout.Log{UserID: id, WorkoutDate: time.Now(), StartTime: time.Now(), WorkoutType: "Run"})
		require.NoError(t, err)
	}

	all, err := store.ListWorkoutLogs(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := store.ListWorkoutLogs(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
