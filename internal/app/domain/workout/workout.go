// Package workout defines workout logs and the exercises performed
// within them.
package workout

import "time"

// Log is a single workout session belonging to one user.
type Log struct {
	ID                  string     `json:"workoutLogId"`
	UserID              string     `json:"userId"`
	WorkoutDate         time.Time  `json:"workoutDate"`
	StartTime           time.Time  `json:"startTime"`
	EndTime             *time.Time `json:"endTime,omitempty"`
	DurationMinutes     *int       `json:"durationMinutes,omitempty"`
	TotalCaloriesBurned *float64   `json:"totalCaloriesBurned,omitempty"`
	WorkoutType         string     `json:"workoutType"`
	Notes               string     `json:"notes,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// Entry is one exercise performed inside a workout log. OrderIndex
// defines the display sequence within the log.
type Entry struct {
	ID              string    `json:"workoutExerciseId"`
	WorkoutLogID    string    `json:"workoutLogId"`
	ExerciseID      string    `json:"exerciseId"`
	OrderIndex      int       `json:"orderIndex"`
	Sets            *int      `json:"sets,omitempty"`
	Reps            *int      `json:"reps,omitempty"`
	WeightKg        *float64  `json:"weightKg,omitempty"`
	DurationSeconds *int      `json:"durationSeconds,omitempty"`
	DistanceKm      *float64  `json:"distanceKm,omitempty"`
	CaloriesBurned  *float64  `json:"caloriesBurned,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
