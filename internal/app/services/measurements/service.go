// Package measurements manages body measurement records.
package measurements

import (
	"context"
	"time"

	"github.com/fittrack-app/fittrack/internal/app/apperr"
	"github.com/fittrack-app/fittrack/internal/app/domain/measurement"
	"github.com/fittrack-app/fittrack/internal/app/refcheck"
	"github.com/fittrack-app/fittrack/internal/app/storage"
	"github.com/fittrack-app/fittrack/internal/logging"
)

// Service coordinates body measurement operations.
type Service struct {
	store storage.MeasurementStore
	users storage.UserStore
	log   *logging.Logger
}

// New builds a Service.
func New(store storage.MeasurementStore, users storage.UserStore, log *logging.Logger) *Service {
	return &Service{store: store, users: users, log: log}
}

// CreateParams carries a new measurement record.
type CreateParams struct {
	UserID         string     `json:"userId"`
	MeasuredAt     *time.Time `json:"measuredAt"`
	WeightKg       *float64   `json:"weightKg"`
	BodyFatPercent *float64   `json:"bodyFatPercent"`
	WaistCm        *float64   `json:"waistCm"`
	HipsCm         *float64   `json:"hipsCm"`
	BicepCm        *float64   `json:"bicepCm"`
	ChestCm        *float64   `json:"chestCm"`
	Notes          string     `json:"notes"`
}

// Create records a set of measurements taken at one point in time.
func (s *Service) Create(ctx context.Context, p CreateParams) (measurement.Measurement, error) {
	if p.UserID == "" {
		return measurement.Measurement{}, apperr.Invalidf("userId is required")
	}
	if p.MeasuredAt == nil || p.MeasuredAt.IsZero() {
		return measurement.Measurement{}, apperr.Invalidf("measuredAt is required")
	}
	if err := refcheck.Assert(ctx, "user", p.UserID, s.users.UserExists); err != nil {
		return measurement.Measurement{}, err
	}

	return s.store.CreateMeasurement(ctx, measurement.Measurement{
		UserID:         p.UserID,
		MeasuredAt:     *p.MeasuredAt,
		WeightKg:       p.WeightKg,
		BodyFatPercent: p.BodyFatPercent,
		WaistCm:        p.WaistCm,
		HipsCm:         p.HipsCm,
		BicepCm:        p.BicepCm,
		ChestCm:        p.ChestCm,
		Notes:          p.Notes,
	})
}

// UpdateParams carries a partial measurement update. Notes is free text
// and accepts any present value.
type UpdateParams struct {
	MeasuredAt     *time.Time `json:"measuredAt"`
	WeightKg       *float64   `json:"weightKg"`
	BodyFatPercent *float64   `json:"bodyFatPercent"`
	WaistCm        *float64   `json:"waistCm"`
	HipsCm         *float64   `json:"hipsCm"`
	BicepCm        *float64   `json:"bicepCm"`
	ChestCm        *float64   `json:"chestCm"`
	Notes          *string    `json:"notes"`
}

// Update applies a partial update to a measurement record.
func (s *Service) Update(ctx context.Context, id string, p UpdateParams) (measurement.Measurement, error) {
	existing, err := s.store.GetMeasurement(ctx, id)
	if err != nil {
		return measurement.Measurement{}, err
	}

	if p.MeasuredAt != nil && !p.MeasuredAt.IsZero() {
		existing.MeasuredAt = *p.MeasuredAt
	}
	if p.WeightKg != nil {
		existing.WeightKg = p.WeightKg
	}
	if p.BodyFatPercent != nil {
		existing.BodyFatPercent = p.BodyFatPercent
	}
	if p.WaistCm != nil {
		existing.WaistCm = p.WaistCm
	}
	if p.HipsCm != nil {
		existing.HipsCm = p.HipsCm
	}
	if p.BicepCm != nil {
		existing.BicepCm = p.BicepCm
	}
	if p.ChestCm != nil {
		existing.ChestCm = p.ChestCm
	}
	if p.Notes != nil {
		existing.Notes = *p.Notes
	}

	return s.store.UpdateMeasurement(ctx, existing)
}

// Get returns a measurement record.
func (s *Service) Get(ctx context.Context, id string) (measurement.Measurement, error) {
	return s.store.GetMeasurement(ctx, id)
}

// List returns measurement records, optionally filtered to one user,
// most recent first.
func (s *Service) List(ctx context.Context, userID string) ([]measurement.Measurement, error) {
	return s.store.ListMeasurements(ctx, userID)
}

// Delete removes a measurement record.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteMeasurement(ctx, id)
}
