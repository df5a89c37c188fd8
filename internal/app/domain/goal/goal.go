// Package goal defines user fitness goals.
package goal

import "time"

// Status values are an open set; the server stores whatever the client
// writes and only "Active" influences dashboard aggregation.
const (
	StatusActive    = "Active"
	StatusPaused    = "Paused"
	StatusCompleted = "Completed"
)

// Goal is a target a user is working toward.
type Goal struct {
	ID           string    `json:"goalId"`
	UserID       string    `json:"userId"`
	GoalType     string    `json:"goalType"`
	GoalName     string    `json:"goalName"`
	TargetValue  float64   `json:"targetValue"`
	CurrentValue float64   `json:"currentValue"`
	Unit         string    `json:"unit"`
	StartDate    time.Time `json:"startDate"`
	TargetDate   time.Time `json:"targetDate"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
