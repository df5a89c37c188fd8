// Package goals manages user fitness goals.
package goals

import (
	"context"
	"strings"
	"time"

	"github.com/fittrack-app/fittrack/internal/app/apperr"
	"github.com/fittrack-app/fittrack/internal/app/domain/goal"
	"github.com/fittrack-app/fittrack/internal/app/refcheck"
	"github.com/fittrack-app/fittrack/internal/app/storage"
	"github.com/fittrack-app/fittrack/internal/logging"
)

// Service coordinates goal operations.
type Service struct {
	store storage.GoalStore
	users storage.UserStore
	log   *logging.Logger
	now   func() time.Time
}

// New builds a Service.
func New(store storage.GoalStore, users storage.UserStore, log *logging.Logger) *Service {
	return &Service{store: store, users: users, log: log, now: time.Now}
}

// CreateParams carries a new goal.
type CreateParams struct {
	UserID       string     `json:"userId"`
	GoalType     string     `json:"goalType"`
	GoalName     string     `json:"goalName"`
	TargetValue  float64    `json:"targetValue"`
	CurrentValue float64    `json:"currentValue"`
	Unit         string     `json:"unit"`
	StartDate    *time.Time `json:"startDate"`
	TargetDate   *time.Time `json:"targetDate"`
	Status       string     `json:"status"`
}

// Create records a goal. Status defaults to Active and the start date
// defaults to today.
func (s *Service) Create(ctx context.Context, p CreateParams) (goal.Goal, error) {
	if p.UserID == "" {
		return goal.Goal{}, apperr.Invalidf("userId is required")
	}
	if strings.TrimSpace(p.GoalName) == "" {
		return goal.Goal{}, apperr.Invalidf("goalName is required")
	}
	if strings.TrimSpace(p.GoalType) == "" {
		return goal.Goal{}, apperr.Invalidf("goalType is required")
	}
	if p.TargetValue <= 0 {
		return goal.Goal{}, apperr.Invalidf("targetValue must be positive")
	}
	if p.TargetDate == nil || p.TargetDate.IsZero() {
		return goal.Goal{}, apperr.Invalidf("targetDate is required")
	}
	if err := refcheck.Assert(ctx, "user", p.UserID, s.users.UserExists); err != nil {
		return goal.Goal{}, err
	}

	start := s.now().UTC().Truncate(24 * time.Hour)
	if p.StartDate != nil && !p.StartDate.IsZero() {
		start = *p.StartDate
	}
	if p.Status == "" {
		p.Status = goal.StatusActive
	}

	return s.store.CreateGoal(ctx, goal.Goal{
		UserID:       p.UserID,
		GoalType:     strings.TrimSpace(p.GoalType),
		GoalName:     strings.TrimSpace(p.GoalName),
		TargetValue:  p.TargetValue,
		CurrentValue: p.CurrentValue,
		Unit:         p.Unit,
		StartDate:    start,
		TargetDate:   *p.TargetDate,
		Status:       p.Status,
	})
}

// UpdateParams carries a partial goal update.
type UpdateParams struct {
	GoalType     *string    `json:"goalType"`
	GoalName     *string    `json:"goalName"`
	TargetValue  *float64   `json:"targetValue"`
	CurrentValue *float64   `json:"currentValue"`
	Unit         *string    `json:"unit"`
	StartDate    *time.Time `json:"startDate"`
	TargetDate   *time.Time `json:"targetDate"`
	Status       *string    `json:"status"`
}

// Update applies a partial update to a goal.
func (s *Service) Update(ctx context.Context, id string, p UpdateParams) (goal.Goal, error) {
	existing, err := s.store.GetGoal(ctx, id)
	if err != nil {
		return goal.Goal{}, err
	}

	if p.GoalType != nil && strings.TrimSpace(*p.GoalType) != "" {
		existing.GoalType = strings.TrimSpace(*p.GoalType)
	}
	if p.GoalName != nil && strings.TrimSpace(*p.GoalName) != "" {
		existing.GoalName = strings.TrimSpace(*p.GoalName)
	}
	if p.TargetValue != nil {
		if *p.TargetValue <= 0 {
			return goal.Goal{}, apperr.Invalidf("targetValue must be positive")
		}
		existing.TargetValue = *p.TargetValue
	}
	if p.CurrentValue != nil {
		existing.CurrentValue = *p.CurrentValue
	}
	if p.Unit != nil && *p.Unit != "" {
		existing.Unit = *p.Unit
	}
	if p.StartDate != nil && !p.StartDate.IsZero() {
		existing.StartDate = *p.StartDate
	}
	if p.TargetDate != nil && !p.TargetDate.IsZero() {
		existing.TargetDate = *p.TargetDate
	}
	if p.Status != nil && *p.Status != "" {
		existing.Status = *p.Status
	}

	return s.store.UpdateGoal(ctx, existing)
}

// Get returns a goal.
func (s *Service) Get(ctx context.Context, id string) (goal.Goal, error) {
	return s.store.GetGoal(ctx, id)
}

// List returns all goals, newest first.
func (s *Service) List(ctx context.Context) ([]goal.Goal, error) {
	return s.store.ListGoals(ctx)
}

// ListByUser returns a user's goals ordered by target date.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]goal.Goal, error) {
	return s.store.ListGoalsByUser(ctx, userID)
}

// Delete removes a goal.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteGoal(ctx, id)
}
