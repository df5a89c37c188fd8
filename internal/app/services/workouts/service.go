// Package workouts manages workout logs and the exercises performed
// within them.
package workouts

import (
	"context"
	"strings"
	"time"

	"github.com/fittrack-app/fittrack/internal/app/apperr"
	"github.com/fittrack-app/fittrack/internal/app/domain/workout"
	"github.com/fittrack-app/fittrack/internal/app/refcheck"
	"github.com/fittrack-app/fittrack/internal/app/storage"
	"github.com/fittrack-app/fittrack/internal/logging"
)

// Service coordinates workout log and entry operations.
type Service struct {
	store     storage.WorkoutStore
	users     storage.UserStore
	exercises storage.ExerciseStore
	log       *logging.Logger
}

// New builds a Service.
func New(store storage.WorkoutStore, users storage.UserStore, exercises storage.ExerciseStore, log *logging.Logger) *Service {
	return &Service{store: store, users: users, exercises: exercises, log: log}
}

// CreateLogParams carries a new workout log.
type CreateLogParams struct {
	UserID              string     `json:"userId"`
	WorkoutDate         *time.Time `json:"workoutDate"`
	StartTime           *time.Time `json:"startTime"`
	EndTime             *time.Time `json:"endTime"`
	DurationMinutes     *int       `json:"durationMinutes"`
	TotalCaloriesBurned *float64   `json:"totalCaloriesBurned"`
	WorkoutType         string     `json:"workoutType"`
	Notes               string     `json:"notes"`
}

// CreateLog records a workout session. When an end time is supplied
// without an explicit duration, the duration is derived from the
// start/end delta in whole minutes.
func (s *Service) CreateLog(ctx context.Context, p CreateLogParams) (workout.Log, error) {
	if p.UserID == "" {
		return workout.Log{}, apperr.Invalidf("userId is required")
	}
	if p.WorkoutDate == nil || p.WorkoutDate.IsZero() {
		return workout.Log{}, apperr.Invalidf("workoutDate is required")
	}
	if p.StartTime == nil || p.StartTime.IsZero() {
		return workout.Log{}, apperr.Invalidf("startTime is required")
	}
	if strings.TrimSpace(p.WorkoutType) == "" {
		return workout.Log{}, apperr.Invalidf("workoutType is required")
	}
	if err := refcheck.Assert(ctx, "user", p.UserID, s.users.UserExists); err != nil {
		return workout.Log{}, err
	}

	l := workout.Log{
		UserID:              p.UserID,
		WorkoutDate:         *p.WorkoutDate,
		StartTime:           *p.StartTime,
		EndTime:             p.EndTime,
		DurationMinutes:     p.DurationMinutes,
		TotalCaloriesBurned: p.TotalCaloriesBurned,
		WorkoutType:         strings.TrimSpace(p.WorkoutType),
		Notes:               p.Notes,
	}
	if l.EndTime != nil && l.DurationMinutes == nil {
		l.DurationMinutes = deriveDuration(l.StartTime, *l.EndTime)
	}
	return s.store.CreateWorkoutLog(ctx, l)
}

// UpdateLogParams carries a partial workout log update. Notes is free
// text and accepts any present value.
type UpdateLogParams struct {
	WorkoutDate         *time.Time `json:"workoutDate"`
	StartTime           *time.Time `json:"startTime"`
	EndTime             *time.Time `json:"endTime"`
	DurationMinutes     *int       `json:"durationMinutes"`
	TotalCaloriesBurned *float64   `json:"totalCaloriesBurned"`
	WorkoutType         *string    `json:"workoutType"`
	Notes               *string    `json:"notes"`
}

// UpdateLog applies a partial update. Supplying an end time without a
// duration in the same request re-derives the duration, overwriting any
// previously stored value.
func (s *Service) UpdateLog(ctx context.Context, id string, p UpdateLogParams) (workout.Log, error) {
	existing, err := s.store.GetWorkoutLog(ctx, id)
	if err != nil {
		return workout.Log{}, err
	}

	if p.WorkoutDate != nil && !p.WorkoutDate.IsZero() {
		existing.WorkoutDate = *p.WorkoutDate
	}
	if p.StartTime != nil && !p.StartTime.IsZero() {
		existing.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		existing.EndTime = p.EndTime
	}
	if p.DurationMinutes != nil {
		existing.DurationMinutes = p.DurationMinutes
	}
	if p.TotalCaloriesBurned != nil {
		existing.TotalCaloriesBurned = p.TotalCaloriesBurned
	}
	if p.WorkoutType != nil && strings.TrimSpace(*p.WorkoutType) != "" {
		existing.WorkoutType = strings.TrimSpace(*p.WorkoutType)
	}
	if p.Notes != nil {
		existing.Notes = *p.Notes
	}

	if p.EndTime != nil && p.DurationMinutes == nil {
		existing.DurationMinutes = deriveDuration(existing.StartTime, *p.EndTime)
	}
	return s.store.UpdateWorkoutLog(ctx, existing)
}

// GetLog returns a workout log.
func (s *Service) GetLog(ctx context.Context, id string) (workout.Log, error) {
	return s.store.GetWorkoutLog(ctx, id)
}

// ListLogs returns all workout logs, optionally filtered to one user.
func (s *Service) ListLogs(ctx context.Context, userID string) ([]workout.Log, error) {
	return s.store.ListWorkoutLogs(ctx, userID)
}

// DeleteLog removes a workout log.
func (s *Service) DeleteLog(ctx context.Context, id string) error {
	return s.store.DeleteWorkoutLog(ctx, id)
}

// CreateEntryParams carries a new exercise entry within a log.
type CreateEntryParams struct {
	WorkoutLogID    string   `json:"workoutLogId"`
	ExerciseID      string   `json:"exerciseId"`
	OrderIndex      int      `json:"orderIndex"`
	Sets            *int     `json:"sets"`
	Reps            *int     `json:"reps"`
	WeightKg        *float64 `json:"weightKg"`
	DurationSeconds *int     `json:"durationSeconds"`
	DistanceKm      *float64 `json:"distanceKm"`
	CaloriesBurned  *float64 `json:"caloriesBurned"`
	Notes           string   `json:"notes"`
}

// CreateEntry records one exercise performed inside a workout log.
func (s *Service) CreateEntry(ctx context.Context, p CreateEntryParams) (workout.Entry, error) {
	if p.WorkoutLogID == "" {
		return workout.Entry{}, apperr.Invalidf("workoutLogId is required")
	}
	if p.ExerciseID == "" {
		return workout.Entry{}, apperr.Invalidf("exerciseId is required")
	}
	if p.OrderIndex < 0 {
		return workout.Entry{}, apperr.Invalidf("orderIndex must not be negative")
	}
	if err := refcheck.Assert(ctx, "workout log", p.WorkoutLogID, s.store.WorkoutLogExists); err != nil {
		return workout.Entry{}, err
	}
	if err := refcheck.Assert(ctx, "exercise", p.ExerciseID, s.exercises.ExerciseExists); err != nil {
		return workout.Entry{}, err
	}

	return s.store.CreateWorkoutEntry(ctx, workout.Entry{
		WorkoutLogID:    p.WorkoutLogID,
		ExerciseID:      p.ExerciseID,
		OrderIndex:      p.OrderIndex,
		Sets:            p.Sets,
		Reps:            p.Reps,
		WeightKg:        p.WeightKg,
		DurationSeconds: p.DurationSeconds,
		DistanceKm:      p.DistanceKm,
		CaloriesBurned:  p.CaloriesBurned,
		Notes:           p.Notes,
	})
}

// UpdateEntryParams carries a partial entry update.
type UpdateEntryParams struct {
	OrderIndex      *int     `json:"orderIndex"`
	Sets            *int     `json:"sets"`
	Reps            *int     `json:"reps"`
	WeightKg        *float64 `json:"weightKg"`
	DurationSeconds *int     `json:"durationSeconds"`
	DistanceKm      *float64 `json:"distanceKm"`
	CaloriesBurned  *float64 `json:"caloriesBurned"`
	Notes           *string  `json:"notes"`
}

// UpdateEntry applies a partial update to an entry. The owning log and
// exercise references are immutable.
func (s *Service) UpdateEntry(ctx context.Context, id string, p UpdateEntryParams) (workout.Entry, error) {
	existing, err := s.store.GetWorkoutEntry(ctx, id)
	if err != nil {
		return workout.Entry{}, err
	}

	if p.OrderIndex != nil {
		if *p.OrderIndex < 0 {
			return workout.Entry{}, apperr.Invalidf("orderIndex must not be negative")
		}
		existing.OrderIndex = *p.OrderIndex
	}
	if p.Sets != nil {
		existing.Sets = p.Sets
	}
	if p.Reps != nil {
		existing.Reps = p.Reps
	}
	if p.WeightKg != nil {
		existing.WeightKg = p.WeightKg
	}
	if p.DurationSeconds != nil {
		existing.DurationSeconds = p.DurationSeconds
	}
	if p.DistanceKm != nil {
		existing.DistanceKm = p.DistanceKm
	}
	if p.CaloriesBurned != nil {
		existing.CaloriesBurned = p.CaloriesBurned
	}
	if p.Notes != nil {
		existing.Notes = *p.Notes
	}

	return s.store.UpdateWorkoutEntry(ctx, existing)
}

// GetEntry returns a single entry.
func (s *Service) GetEntry(ctx context.Context, id string) (workout.Entry, error) {
	return s.store.GetWorkoutEntry(ctx, id)
}

// ListEntries returns entries, optionally filtered to one workout log,
// ordered by their display index.
func (s *Service) ListEntries(ctx context.Context, workoutLogID string) ([]workout.Entry, error) {
	return s.store.ListWorkoutEntries(ctx, workoutLogID)
}

// DeleteEntry removes an entry.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	return s.store.DeleteWorkoutEntry(ctx, id)
}

// deriveDuration truncates the start/end delta to whole minutes.
// Negative deltas are stored as-is; the client surfaces them.
func deriveDuration(start, end time.Time) *int {
	minutes := int(end.Sub(start).Minutes())
	return &minutes
}
