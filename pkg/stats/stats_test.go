package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	assert.InDelta(t, 22.86, BMI(70, 175), 0.01)
	assert.Zero(t, BMI(0, 175))
	assert.Zero(t, BMI(70, 0))
	assert.Zero(t, BMI(-70, 175))
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{0, ""},
		{17.0, "Underweight"},
		{18.49, "Underweight"},
		{18.5, "Normal"},
		{24.99, "Normal"},
		{25, "Overweight"},
		{29.99, "Overweight"},
		{30, "Obese"},
		{42, "Obese"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BMICategory(tt.bmi), "bmi=%v", tt.bmi)
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		current, target float64
		want            int
	}{
		{0, 100, 0},
		{50, 100, 50},
		{100, 100, 100},
		{150, 100, 120}, // clamped high
		{-10, 100, 0},   // clamped low
		{33.4, 100, 33}, // rounded
		{33.5, 100, 34},
		{10, 0, 0}, // no target
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GoalProgress(tt.current, tt.target), "current=%v target=%v", tt.current, tt.target)
	}
}

func TestWeightDelta(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC) }

	_, ok := WeightDelta(nil)
	assert.False(t, ok)

	_, ok = WeightDelta([]WeightSample{{At: day(1), Kg: 80}})
	assert.False(t, ok)

	delta, ok := WeightDelta([]WeightSample{
		{At: day(1), Kg: 82},
		{At: day(15), Kg: 80.5},
		{At: day(8), Kg: 81},
	})
	assert.True(t, ok)
	assert.InDelta(t, -0.5, delta, 1e-9)
}

func TestWeeklyActivity(t *testing.T) {
	ref := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	records := []Activity{
		{Date: ref, Minutes: 30, Calories: 200},
		{Date: ref.AddDate(0, 0, -1), Minutes: 45, Calories: 350},
		{Date: ref.AddDate(0, 0, -1), Minutes: 20, Calories: 100},
		{Date: ref.AddDate(0, 0, -7), Minutes: 60, Calories: 500}, // outside window
	}

	days := WeeklyActivity(records, ref)
	assert.Len(t, days, 7)
	assert.Equal(t, time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC), days[0].Date)

	today := days[6]
	assert.Equal(t, 1, today.Workouts)
	assert.Equal(t, 30, today.Minutes)

	yesterday := days[5]
	assert.Equal(t, 2, yesterday.Workouts)
	assert.Equal(t, 65, yesterday.Minutes)
	assert.InDelta(t, 450, yesterday.Calories, 1e-9)

	var total int
	for _, d := range days {
		total += d.Workouts
	}
	assert.Equal(t, 3, total)
}

func TestWeeklyActivityAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// US spring forward 2026-03-08: only 71 elapsed hours separate the
	// Mar 7 and Mar 10 midnights, but they are 3 calendar days apart.
	ref := time.Date(2026, 3, 10, 12, 0, 0, 0, loc)
	days := WeeklyActivity([]Activity{
		{Date: time.Date(2026, 3, 7, 12, 0, 0, 0, loc), Minutes: 30, Calories: 200},
	}, ref)

	assert.Equal(t, time.Date(2026, 3, 7, 0, 0, 0, 0, loc), days[3].Date)
	assert.Equal(t, 1, days[3].Workouts)
	assert.Equal(t, 0, days[4].Workouts, "not shifted into Mar 8")
}

func TestWorkoutTotals(t *testing.T) {
	totals := WorkoutTotals([]Activity{
		{Minutes: 30, Calories: 200},
		{Minutes: 45, Calories: 350},
	})
	assert.Equal(t, Totals{Workouts: 2, Minutes: 75, Calories: 550}, totals)

	assert.Equal(t, Totals{}, WorkoutTotals(nil))
}
