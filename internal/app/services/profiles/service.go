// Package profiles manages the one-per-user profile records.
package profiles

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fittrack-app/fittrack/internal/app/apperr"
	"github.com/fittrack-app/fittrack/internal/app/domain/profile"
	"github.com/fittrack-app/fittrack/internal/app/refcheck"
	"github.com/fittrack-app/fittrack/internal/app/storage"
	"github.com/fittrack-app/fittrack/internal/logging"
)

// Defaults applied when a create request omits the field.
const (
	DefaultActivityLevel  = "Moderate"
	DefaultPreferredUnits = "Metric"
)

// Service coordinates profile operations.
type Service struct {
	store storage.ProfileStore
	users storage.UserStore
	log   *logging.Logger
}

// New builds a Service.
func New(store storage.ProfileStore, users storage.UserStore, log *logging.Logger) *Service {
	return &Service{store: store, users: users, log: log}
}

// CreateParams carries a new profile request.
type CreateParams struct {
	UserID          string     `json:"userId"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	DateOfBirth     *time.Time `json:"dateOfBirth"`
	Gender          string     `json:"gender"`
	HeightCm        *float64   `json:"heightCm"`
	CurrentWeightKg *float64   `json:"currentWeightKg"`
	TargetWeightKg  *float64   `json:"targetWeightKg"`
	ActivityLevel   string     `json:"activityLevel"`
	PreferredUnits  string     `json:"preferredUnits"`
	ProfilePicURL   string     `json:"profilePicUrl"`
}

// Create adds a profile for a user. A user holds at most one profile.
func (s *Service) Create(ctx context.Context, p CreateParams) (profile.Profile, error) {
	if p.UserID == "" {
		return profile.Profile{}, apperr.Invalidf("userId is required")
	}
	if strings.TrimSpace(p.FirstName) == "" {
		return profile.Profile{}, apperr.Invalidf("firstName is required")
	}
	if p.DateOfBirth == nil || p.DateOfBirth.IsZero() {
		return profile.Profile{}, apperr.Invalidf("dateOfBirth is required")
	}
	if err := refcheck.Assert(ctx, "user", p.UserID, s.users.UserExists); err != nil {
		return profile.Profile{}, err
	}

	if existing, err := s.store.GetProfileByUser(ctx, p.UserID); err == nil {
		return profile.Profile{}, apperr.Conflictf("user %q already has profile %q", p.UserID, existing.ID)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return profile.Profile{}, err
	}

	if p.ActivityLevel == "" {
		p.ActivityLevel = DefaultActivityLevel
	}
	if p.PreferredUnits == "" {
		p.PreferredUnits = DefaultPreferredUnits
	}

	return s.store.CreateProfile(ctx, profile.Profile{
		UserID:          p.UserID,
		FirstName:       strings.TrimSpace(p.FirstName),
		LastName:        strings.TrimSpace(p.LastName),
		DateOfBirth:     *p.DateOfBirth,
		Gender:          p.Gender,
		HeightCm:        p.HeightCm,
		CurrentWeightKg: p.CurrentWeightKg,
		TargetWeightKg:  p.TargetWeightKg,
		ActivityLevel:   p.ActivityLevel,
		PreferredUnits:  p.PreferredUnits,
		ProfilePicURL:   p.ProfilePicURL,
	})
}

// UpdateParams carries a partial profile update. Nil fields stay
// unchanged; gender and profilePicUrl are free text and accept any
// present value, including empty.
type UpdateParams struct {
	FirstName       *string    `json:"firstName"`
	LastName        *string    `json:"lastName"`
	DateOfBirth     *time.Time `json:"dateOfBirth"`
	Gender          *string    `json:"gender"`
	HeightCm        *float64   `json:"heightCm"`
	CurrentWeightKg *float64   `json:"currentWeightKg"`
	TargetWeightKg  *float64   `json:"targetWeightKg"`
	ActivityLevel   *string    `json:"activityLevel"`
	PreferredUnits  *string    `json:"preferredUnits"`
	ProfilePicURL   *string    `json:"profilePicUrl"`
}

// Update applies a partial update to a profile.
func (s *Service) Update(ctx context.Context, id string, p UpdateParams) (profile.Profile, error) {
	existing, err := s.store.GetProfile(ctx, id)
	if err != nil {
		return profile.Profile{}, err
	}

	if p.FirstName != nil && strings.TrimSpace(*p.FirstName) != "" {
		existing.FirstName = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil && strings.TrimSpace(*p.LastName) != "" {
		existing.LastName = strings.TrimSpace(*p.LastName)
	}
	if p.DateOfBirth != nil && !p.DateOfBirth.IsZero() {
		existing.DateOfBirth = *p.DateOfBirth
	}
	if p.Gender != nil {
		existing.Gender = *p.Gender
	}
	if p.HeightCm != nil {
		existing.HeightCm = p.HeightCm
	}
	if p.CurrentWeightKg != nil {
		existing.CurrentWeightKg = p.CurrentWeightKg
	}
	if p.TargetWeightKg != nil {
		existing.TargetWeightKg = p.TargetWeightKg
	}
	if p.ActivityLevel != nil && *p.ActivityLevel != "" {
		existing.ActivityLevel = *p.ActivityLevel
	}
	if p.PreferredUnits != nil && *p.PreferredUnits != "" {
		existing.PreferredUnits = *p.PreferredUnits
	}
	if p.ProfilePicURL != nil {
		existing.ProfilePicURL = *p.ProfilePicURL
	}

	return s.store.UpdateProfile(ctx, existing)
}

// Get returns a profile by its own ID.
func (s *Service) Get(ctx context.Context, id string) (profile.Profile, error) {
	return s.store.GetProfile(ctx, id)
}

// GetByUser returns the profile owned by a user.
func (s *Service) GetByUser(ctx context.Context, userID string) (profile.Profile, error) {
	return s.store.GetProfileByUser(ctx, userID)
}

// List returns all profiles.
func (s *Service) List(ctx context.Context) ([]profile.Profile, error) {
	return s.store.ListProfiles(ctx)
}

// Delete removes a profile.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteProfile(ctx, id)
}
