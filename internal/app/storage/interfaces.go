// Package storage declares the persistence interfaces implemented by
// the postgres and memory stores. Stores return sql.ErrNoRows for
// missing rows; classification happens in the services.
package storage

import (
	"context"
	"time"

	"github.com/fittrack-app/fittrack/internal/app/domain/dashboard"
	"github.com/fittrack-app/fittrack/internal/app/domain/exercise"
	"github.com/fittrack-app/fittrack/internal/app/domain/goal"
	"github.com/fittrack-app/fittrack/internal/app/domain/measurement"
	"github.com/fittrack-app/fittrack/internal/app/domain/nutrition"
	"github.com/fittrack-app/fittrack/internal/app/domain/profile"
	"github.com/fittrack-app/fittrack/internal/app/domain/user"
	"github.com/fittrack-app/fittrack/internal/app/domain/workout"
)

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, u user.User) (user.User, error)
	UpdateUser(ctx context.Context, u user.User) (user.User, error)
	GetUser(ctx context.Context, id string) (user.User, error)
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
	GetUserByUsername(ctx context.Context, username string) (user.User, error)
	ListUsers(ctx context.Context) ([]user.User, error)
	DeleteUser(ctx context.Context, id string) error
	UserExists(ctx context.Context, id string) (bool, error)
	RecordLogin(ctx context.Context, id string, at time.Time) error
}

// ProfileStore persists user profiles.
type ProfileStore interface {
	CreateProfile(ctx context.Context, p profile.Profile) (profile.Profile, error)
	UpdateProfile(ctx context.Context, p profile.Profile) (profile.Profile, error)
	GetProfile(ctx context.Context, id string) (profile.Profile, error)
	GetProfileByUser(ctx context.Context, userID string) (profile.Profile, error)
	ListProfiles(ctx context.Context) ([]profile.Profile, error)
	DeleteProfile(ctx context.Context, id string) error
}

// ExerciseStore persists the exercise library.
type ExerciseStore interface {
	CreateExercise(ctx context.Context, e exercise.Exercise) (exercise.Exercise, error)
	UpdateExercise(ctx context.Context, e exercise.Exercise) (exercise.Exercise, error)
	GetExercise(ctx context.Context, id string) (exercise.Exercise, error)
	GetExerciseByName(ctx context.Context, name string) (exercise.Exercise, error)
	ListExercises(ctx context.Context) ([]exercise.Exercise, error)
	DeleteExercise(ctx context.Context, id string) error
	ExerciseExists(ctx context.Context, id string) (bool, error)
}

// WorkoutStore persists workout logs and their exercise entries.
type WorkoutStore interface {
	CreateWorkoutLog(ctx context.Context, l workout.Log) (workout.Log, error)
	UpdateWorkoutLog(ctx context.Context, l workout.Log) (workout.Log, error)
	GetWorkoutLog(ctx context.Context, id string) (workout.Log, error)
	ListWorkoutLogs(ctx context.Context, userID string) ([]workout.Log, error)
	DeleteWorkoutLog(ctx context.Context, id string) error
	WorkoutLogExists(ctx context.Context, id string) (bool, error)

	CreateWorkoutEntry(ctx context.Context, e workout.Entry) (workout.Entry, error)
	UpdateWorkoutEntry(ctx context.Context, e workout.Entry) (workout.Entry, error)
	GetWorkoutEntry(ctx context.Context, id string) (workout.Entry, error)
	ListWorkoutEntries(ctx context.Context, workoutLogID string) ([]workout.Entry, error)
	DeleteWorkoutEntry(ctx context.Context, id string) error
}

// GoalStore persists goals.
type GoalStore interface {
	CreateGoal(ctx context.Context, g goal.Goal) (goal.Goal, error)
	UpdateGoal(ctx context.Context, g goal.Goal) (goal.Goal, error)
	GetGoal(ctx context.Context, id string) (goal.Goal, error)
	ListGoals(ctx context.Context) ([]goal.Goal, error)
	ListGoalsByUser(ctx context.Context, userID string) ([]goal.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
}

// NutritionStore persists nutrition log entries.
type NutritionStore interface {
	CreateNutritionLog(ctx context.Context, l nutrition.Log) (nutrition.Log, error)
	UpdateNutritionLog(ctx context.Context, l nutrition.Log) (nutrition.Log, error)
	GetNutritionLog(ctx context.Context, id string) (nutrition.Log, error)
	ListNutritionLogs(ctx context.Context, userID string) ([]nutrition.Log, error)
	DeleteNutritionLog(ctx context.Context, id string) error
}

// MeasurementStore persists body measurements.
type MeasurementStore interface {
	CreateMeasurement(ctx context.Context, m measurement.Measurement) (measurement.Measurement, error)
	UpdateMeasurement(ctx context.Context, m measurement.Measurement) (measurement.Measurement, error)
	GetMeasurement(ctx context.Context, id string) (measurement.Measurement, error)
	ListMeasurements(ctx context.Context, userID string) ([]measurement.Measurement, error)
	DeleteMeasurement(ctx context.Context, id string) error
}

// DashboardStore reads the derived aggregate views.
type DashboardStore interface {
	GetDashboardSummary(ctx context.Context, userID string) (dashboard.Summary, error)
	ListWeeklyTrend(ctx context.Context, userID string) ([]dashboard.WeeklyTrend, error)
}
