// Package exercises manages the shared exercise library.
package exercises

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fittrack-app/fittrack/internal/app/apperr"
	"github.com/fittrack-app/fittrack/internal/app/domain/exercise"
	"github.com/fittrack-app/fittrack/internal/app/storage"
	"github.com/fittrack-app/fittrack/internal/logging"
)

// DefaultDifficulty is applied when a create request omits the level.
const DefaultDifficulty = "Beginner"

// Service coordinates exercise library operations.
type Service struct {
	store storage.ExerciseStore
	log   *logging.Logger
}

// New builds a Service.
func New(store storage.ExerciseStore, log *logging.Logger) *Service {
	return &Service{store: store, log: log}
}

// CreateParams carries a new library entry.
type CreateParams struct {
	Name            string  `json:"exerciseName"`
	Category        string  `json:"category"`
	MuscleGroup     string  `json:"muscleGroup"`
	MetValue        float64 `json:"metValue"`
	DifficultyLevel string  `json:"difficultyLevel"`
	Instructions    string  `json:"instructions"`
	IsActive        *bool   `json:"isActive"`
}

// Create adds a library entry. Names are unique case-insensitively.
func (s *Service) Create(ctx context.Context, p CreateParams) (exercise.Exercise, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return exercise.Exercise{}, apperr.Invalidf("exerciseName is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		return exercise.Exercise{}, apperr.Invalidf("category is required")
	}
	if p.MetValue < 0 {
		return exercise.Exercise{}, apperr.Invalidf("metValue must not be negative")
	}

	if err := s.ensureNameFree(ctx, p.Name, ""); err != nil {
		return exercise.Exercise{}, err
	}

	if p.DifficultyLevel == "" {
		p.DifficultyLevel = DefaultDifficulty
	}
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}

	return s.store.CreateExercise(ctx, exercise.Exercise{
		Name:            p.Name,
		Category:        strings.TrimSpace(p.Category),
		MuscleGroup:     p.MuscleGroup,
		MetValue:        p.MetValue,
		DifficultyLevel: p.DifficultyLevel,
		Instructions:    p.Instructions,
		IsActive:        active,
	})
}

// UpdateParams carries a partial library entry update. Instructions is
// free text and accepts any present value, including empty.
type UpdateParams struct {
	Name            *string  `json:"exerciseName"`
	Category        *string  `json:"category"`
	MuscleGroup     *string  `json:"muscleGroup"`
	MetValue        *float64 `json:"metValue"`
	DifficultyLevel *string  `json:"difficultyLevel"`
	Instructions    *string  `json:"instructions"`
	IsActive        *bool    `json:"isActive"`
}

// Update applies a partial update to a library entry.
func (s *Service) Update(ctx context.Context, id string, p UpdateParams) (exercise.Exercise, error) {
	existing, err := s.store.GetExercise(ctx, id)
	if err != nil {
		return exercise.Exercise{}, err
	}

	if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
		existing.Name = strings.TrimSpace(*p.Name)
	}
	if p.Category != nil && strings.TrimSpace(*p.Category) != "" {
		existing.Category = strings.TrimSpace(*p.Category)
	}
	if p.MuscleGroup != nil {
		existing.MuscleGroup = *p.MuscleGroup
	}
	if p.MetValue != nil {
		if *p.MetValue < 0 {
			return exercise.Exercise{}, apperr.Invalidf("metValue must not be negative")
		}
		existing.MetValue = *p.MetValue
	}
	if p.DifficultyLevel != nil && *p.DifficultyLevel != "" {
		existing.DifficultyLevel = *p.DifficultyLevel
	}
	if p.Instructions != nil {
		existing.Instructions = *p.Instructions
	}
	if p.IsActive != nil {
		existing.IsActive = *p.IsActive
	}

	if err := s.ensureNameFree(ctx, existing.Name, existing.ID); err != nil {
		return exercise.Exercise{}, err
	}
	return s.store.UpdateExercise(ctx, existing)
}

// Get returns a library entry.
func (s *Service) Get(ctx context.Context, id string) (exercise.Exercise, error) {
	return s.store.GetExercise(ctx, id)
}

// List returns the full library.
func (s *Service) List(ctx context.Context) ([]exercise.Exercise, error) {
	return s.store.ListExercises(ctx)
}

// Delete removes a library entry.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteExercise(ctx, id)
}

func (s *Service) ensureNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.store.GetExerciseByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return apperr.Conflictf("exercise %q already exists", name)
	}
	return nil
}
