// Package nutrition manages food intake logs.
package nutrition

import (
	"context"
	"strings"
	"time"

	"github.com/fittrack-app/fittrack/internal/app/apperr"
	domain "github.com/fittrack-app/fittrack/internal/app/domain/nutrition"
	"github.com/fittrack-app/fittrack/internal/app/refcheck"
	"github.com/fittrack-app/fittrack/internal/app/storage"
	"github.com/fittrack-app/fittrack/internal/logging"
)

// Service coordinates nutrition log operations.
type Service struct {
	store storage.NutritionStore
	users storage.UserStore
	log   *logging.Logger
}

// New builds a Service.
func New(store storage.NutritionStore, users storage.UserStore, log *logging.Logger) *Service {
	return &Service{store: store, users: users, log: log}
}

// CreateParams carries a new nutrition log entry.
type CreateParams struct {
	UserID        string     `json:"userId"`
	LogDate       *time.Time `json:"logDate"`
	MealType      string     `json:"mealType"`
	FoodName      string     `json:"foodName"`
	ServingAmount float64    `json:"servingAmount"`
	ServingUnit   string     `json:"servingUnit"`
	CaloriesKcal  float64    `json:"caloriesKcal"`
	ProteinG      *float64   `json:"proteinG"`
	CarbsG        *float64   `json:"carbsG"`
	FatG          *float64   `json:"fatG"`
}

// Create records a food entry.
func (s *Service) Create(ctx context.Context, p CreateParams) (domain.Log, error) {
	if p.UserID == "" {
		return domain.Log{}, apperr.Invalidf("userId is required")
	}
	if p.LogDate == nil || p.LogDate.IsZero() {
		return domain.Log{}, apperr.Invalidf("logDate is required")
	}
	if strings.TrimSpace(p.FoodName) == "" {
		return domain.Log{}, apperr.Invalidf("foodName is required")
	}
	if strings.TrimSpace(p.MealType) == "" {
		return domain.Log{}, apperr.Invalidf("mealType is required")
	}
	if p.ServingAmount <= 0 {
		return domain.Log{}, apperr.Invalidf("servingAmount must be positive")
	}
	if p.CaloriesKcal < 0 {
		return domain.Log{}, apperr.Invalidf("caloriesKcal must not be negative")
	}
	if err := refcheck.Assert(ctx, "user", p.UserID, s.users.UserExists); err != nil {
		return domain.Log{}, err
	}

	return s.store.CreateNutritionLog(ctx, domain.Log{
		UserID:        p.UserID,
		LogDate:       *p.LogDate,
		MealType:      strings.TrimSpace(p.MealType),
		FoodName:      strings.TrimSpace(p.FoodName),
		ServingAmount: p.ServingAmount,
		ServingUnit:   p.ServingUnit,
		CaloriesKcal:  p.CaloriesKcal,
		ProteinG:      p.ProteinG,
		CarbsG:        p.CarbsG,
		FatG:          p.FatG,
	})
}

// UpdateParams carries a partial nutrition log update.
type UpdateParams struct {
	LogDate       *time.Time `json:"logDate"`
	MealType      *string    `json:"mealType"`
	FoodName      *string    `json:"foodName"`
	ServingAmount *float64   `json:"servingAmount"`
	ServingUnit   *string    `json:"servingUnit"`
	CaloriesKcal  *float64   `json:"caloriesKcal"`
	ProteinG      *float64   `json:"proteinG"`
	CarbsG        *float64   `json:"carbsG"`
	FatG          *float64   `json:"fatG"`
}

// Update applies a partial update to a food entry.
func (s *Service) Update(ctx context.Context, id string, p UpdateParams) (domain.Log, error) {
	existing, err := s.store.GetNutritionLog(ctx, id)
	if err != nil {
		return domain.Log{}, err
	}

	if p.LogDate != nil && !p.LogDate.IsZero() {
		existing.LogDate = *p.LogDate
	}
	if p.MealType != nil && strings.TrimSpace(*p.MealType) != "" {
		existing.MealType = strings.TrimSpace(*p.MealType)
	}
	if p.FoodName != nil && strings.TrimSpace(*p.FoodName) != "" {
		existing.FoodName = strings.TrimSpace(*p.FoodName)
	}
	if p.ServingAmount != nil {
		if *p.ServingAmount <= 0 {
			return domain.Log{}, apperr.Invalidf("servingAmount must be positive")
		}
		existing.ServingAmount = *p.ServingAmount
	}
	if p.ServingUnit != nil && *p.ServingUnit != "" {
		existing.ServingUnit = *p.ServingUnit
	}
	if p.CaloriesKcal != nil {
		if *p.CaloriesKcal < 0 {
			return domain.Log{}, apperr.Invalidf("caloriesKcal must not be negative")
		}
		existing.CaloriesKcal = *p.CaloriesKcal
	}
	if p.ProteinG != nil {
		existing.ProteinG = p.ProteinG
	}
	if p.CarbsG != nil {
		existing.CarbsG = p.CarbsG
	}
	if p.FatG != nil {
		existing.FatG = p.FatG
	}

	return s.store.UpdateNutritionLog(ctx, existing)
}

// Get returns a food entry.
func (s *Service) Get(ctx context.Context, id string) (domain.Log, error) {
	return s.store.GetNutritionLog(ctx, id)
}

// List returns food entries, optionally filtered to one user, newest
// log date first.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Log, error) {
	return s.store.ListNutritionLogs(ctx, userID)
}

// Delete removes a food entry.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteNutritionLog(ctx, id)
}
