// Package dashboard defines the read-only aggregate rows exposed by
// the database views. Rows are recomputed on each read and are never
// written through the API.
package dashboard

import "time"

// Summary mirrors one row of vw_user_dashboard.
type Summary struct {
	UserID             string     `json:"userId"`
	Username           string     `json:"username"`
	FullName           string     `json:"fullName,omitempty"`
	CurrentWeightKg    *float64   `json:"currentWeightKg,omitempty"`
	TargetWeightKg     *float64   `json:"targetWeightKg,omitempty"`
	ActivityLevel      string     `json:"activityLevel,omitempty"`
	WorkoutsLast30Days int64      `json:"workoutsLast30Days"`
	CaloriesThisWeek   float64    `json:"caloriesThisWeek"`
	ActiveGoals        int64      `json:"activeGoals"`
	LatestWeightKg     *float64   `json:"latestWeightKg,omitempty"`
	LastMeasuredAt     *time.Time `json:"lastMeasuredAt,omitempty"`
}

// WeeklyTrend mirrors one row of vw_weekly_calorie_trend.
type WeeklyTrend struct {
	UserID        string    `json:"userId"`
	Year          int       `json:"year"`
	WeekNumber    int       `json:"weekNumber"`
	WeekStart     time.Time `json:"weekStart"`
	WorkoutCount  int64     `json:"workoutCount"`
	TotalMinutes  float64   `json:"totalMinutes"`
	TotalCalories float64   `json:"totalCalories"`
}
