// Package stats holds the derived display calculations: BMI, goal
// progress, weight delta and daily activity bucketing. Everything is a
// pure function over plain values so server code and API clients agree
// on the numbers.
package stats

import (
	"math"
	"sort"
	"time"
)

// BMI returns the body mass index in kg/m². Zero when either input is
// not positive.
func BMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	h := heightCm / 100
	return weightKg / (h * h)
}

// BMICategory buckets a BMI value into the WHO display categories.
func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// GoalProgress returns completion as a whole percentage, clamped to
// [0, 120] so runaway current values do not distort progress bars.
func GoalProgress(current, target float64) int {
	if target <= 0 {
		return 0
	}
	pct := current / target * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 120 {
		pct = 120
	}
	return int(math.Round(pct))
}

// WeightSample is one dated weight reading.
type WeightSample struct {
	At time.Time
	Kg float64
}

// WeightDelta returns latest minus previous weight. ok is false when
// fewer than two samples exist.
func WeightDelta(samples []WeightSample) (delta float64, ok bool) {
	if len(samples) < 2 {
		return 0, false
	}
	sorted := make([]WeightSample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].At.After(sorted[j].At)
	})
	return sorted[0].Kg - sorted[1].Kg, true
}

// Activity is one dated workout record to be bucketed.
type Activity struct {
	Date     time.Time
	Minutes  int
	Calories float64
}

// DayActivity is one calendar-day bucket of workout activity.
type DayActivity struct {
	Date     time.Time `json:"date"`
	Workouts int       `json:"workouts"`
	Minutes  int       `json:"minutes"`
	Calories float64   `json:"calories"`
}

// WeeklyActivity buckets records into the seven local calendar days
// ending at ref, oldest first. Records outside the window are ignored.
func WeeklyActivity(records []Activity, ref time.Time) []DayActivity {
	today := midnight(ref)
	days := make([]DayActivity, 7)
	for i := range days {
		days[i].Date = today.AddDate(0, 0, i-6)
	}
	for _, rec := range records {
		// Match on the calendar date, not elapsed hours: a DST
		// transition makes a day shorter or longer than 24h.
		day := midnight(rec.Date.In(ref.Location()))
		for i := range days {
			if days[i].Date.Equal(day) {
				days[i].Workouts++
				days[i].Minutes += rec.Minutes
				days[i].Calories += rec.Calories
				break
			}
		}
	}
	return days
}

// Totals aggregates a set of workout records.
type Totals struct {
	Workouts int     `json:"workouts"`
	Minutes  int     `json:"minutes"`
	Calories float64 `json:"calories"`
}

// WorkoutTotals sums count, minutes and calories over records.
func WorkoutTotals(records []Activity) Totals {
	var t Totals
	for _, rec := range records {
		t.Workouts++
		t.Minutes += rec.Minutes
		t.Calories += rec.Calories
	}
	return t
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
