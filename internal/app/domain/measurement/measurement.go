// Package measurement defines body measurement records.
package measurement

import "time"

// Measurement is a point-in-time set of body measurements for a user.
type Measurement struct {
	ID             string    `json:"measurementId"`
	UserID         string    `json:"userId"`
	MeasuredAt     time.Time `json:"measuredAt"`
	WeightKg       *float64  `json:"weightKg,omitempty"`
	BodyFatPercent *float64  `json:"bodyFatPercent,omitempty"`
	WaistCm        *float64  `json:"waistCm,omitempty"`
	HipsCm         *float64  `json:"hipsCm,omitempty"`
	BicepCm        *float64  `json:"bicepCm,omitempty"`
	ChestCm        *float64  `json:"chestCm,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
