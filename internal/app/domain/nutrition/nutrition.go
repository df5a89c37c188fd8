// Package nutrition defines food intake log entries.
package nutrition

import "time"

// Log is a single food entry for a user on a given date.
type Log struct {
	ID            string    `json:"nutritionLogId"`
	UserID        string    `json:"userId"`
	LogDate       time.Time `json:"logDate"`
	MealType      string    `json:"mealType"`
	FoodName      string    `json:"foodName"`
	ServingAmount float64   `json:"servingAmount"`
	ServingUnit   string    `json:"servingUnit"`
	CaloriesKcal  float64   `json:"caloriesKcal"`
	ProteinG      *float64  `json:"proteinG,omitempty"`
	CarbsG        *float64  `json:"carbsG,omitempty"`
	FatG          *float64  `json:"fatG,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
