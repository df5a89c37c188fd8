// Package profile defines the per-user profile record.
package profile

import "time"

// Profile holds the personal details attached to exactly one user.
type Profile struct {
	ID              string    `json:"profileId"`
	UserID          string    `json:"userId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	DateOfBirth     time.Time `json:"dateOfBirth"`
	Gender          string    `json:"gender,omitempty"`
	HeightCm        *float64  `json:"heightCm,omitempty"`
	CurrentWeightKg *float64  `json:"currentWeightKg,omitempty"`
	TargetWeightKg  *float64  `json:"targetWeightKg,omitempty"`
	ActivityLevel   string    `json:"activityLevel"`
	PreferredUnits  string    `json:"preferredUnits"`
	ProfilePicURL   string    `json:"profilePicUrl,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
