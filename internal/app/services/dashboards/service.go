// Package dashboards serves the read-only aggregate views.
package dashboards

import (
	"context"

	"github.com/fittrack-app/fittrack/internal/app/apperr"
	"github.com/fittrack-app/fittrack/internal/app/domain/dashboard"
	"github.com/fittrack-app/fittrack/internal/app/storage"
	"github.com/fittrack-app/fittrack/internal/logging"
)

// Service reads the dashboard aggregates.
type Service struct {
	store storage.DashboardStore
	users storage.UserStore
	log   *logging.Logger
}

// New builds a Service.
func New(store storage.DashboardStore, users storage.UserStore, log *logging.Logger) *Service {
	return &Service{store: store, users: users, log: log}
}

// Summary returns the single-row dashboard for a user.
func (s *Service) Summary(ctx context.Context, userID string) (dashboard.Summary, error) {
	return s.store.GetDashboardSummary(ctx, userID)
}

// WeeklyTrend returns per-week workout aggregates for a user, oldest
// week first. A user with no workouts gets an empty list, not a 404.
func (s *Service) WeeklyTrend(ctx context.Context, userID string) ([]dashboard.WeeklyTrend, error) {
	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFoundf("user %q not found", userID)
	}
	trend, err := s.store.ListWeeklyTrend(ctx, userID)
	if err != nil {
		return nil, err
	}
	if trend == nil {
		trend = []dashboard.WeeklyTrend{}
	}
	return trend, nil
}
