// Package exercise defines the shared exercise library.
package exercise

import "time"

// Exercise is a library entry referenced by workout exercises. MET is
// the metabolic equivalent used for calorie estimation.
type Exercise struct {
	ID              string    `json:"exerciseId"`
	Name            string    `json:"exerciseName"`
	Category        string    `json:"category"`
	MuscleGroup     string    `json:"muscleGroup,omitempty"`
	MetValue        float64   `json:"metValue"`
	DifficultyLevel string    `json:"difficultyLevel"`
	Instructions    string    `json:"instructions,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}
