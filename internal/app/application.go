// Package app assembles the stores and services into one Application.
package app

import (
	"github.com/fittrack-app/fittrack/internal/app/auth"
	"github.com/fittrack-app/fittrack/internal/app/services/dashboards"
	"github.com/fittrack-app/fittrack/internal/app/services/exercises"
	"github.com/fittrack-app/fittrack/internal/app/services/goals"
	"github.com/fittrack-app/fittrack/internal/app/services/measurements"
	"github.com/fittrack-app/fittrack/internal/app/services/nutrition"
	"github.com/fittrack-app/fittrack/internal/app/services/profiles"
	"github.com/fittrack-app/fittrack/internal/app/services/users"
	"github.com/fittrack-app/fittrack/internal/app/services/workouts"
	"github.com/fittrack-app/fittrack/internal/app/storage"
	"github.com/fittrack-app/fittrack/internal/app/storage/memory"
	"github.com/fittrack-app/fittrack/internal/logging"
)

// Stores groups the persistence interfaces the application runs on.
// Any nil field falls back to a shared in-memory store, so tests and
// dev mode can construct an Application with the zero value.
type Stores struct {
	Users        storage.UserStore
	Profiles     storage.ProfileStore
	Exercises    storage.ExerciseStore
	Workouts     storage.WorkoutStore
	Goals        storage.GoalStore
	Nutrition    storage.NutritionStore
	Measurements storage.MeasurementStore
	Dashboards   storage.DashboardStore
}

// Application owns the domain services.
type Application struct {
	Users        *users.Service
	Profiles     *profiles.Service
	Exercises    *exercises.Service
	Workouts     *workouts.Service
	Goals        *goals.Service
	Nutrition    *nutrition.Service
	Measurements *measurements.Service
	Dashboards   *dashboards.Service

	Tokens *auth.Manager
	Log    *logging.Logger
}

// New wires services over the given stores. Nil stores default to one
// shared in-memory instance.
func New(stores Stores, tokens *auth.Manager, log *logging.Logger) *Application {
	if log == nil {
		log = logging.NewNop()
	}

	var fallback *memory.Store
	mem := func() *memory.Store {
		if fallback == nil {
			fallback = memory.New()
		}
		return fallback
	}
	if stores.Users == nil {
		stores.Users = mem()
	}
	if stores.Profiles == nil {
		stores.Profiles = mem()
	}
	if stores.Exercises == nil {
		stores.Exercises = mem()
	}
	if stores.Workouts == nil {
		stores.Workouts = mem()
	}
	if stores.Goals == nil {
		stores.Goals = mem()
	}
	if stores.Nutrition == nil {
		stores.Nutrition = mem()
	}
	if stores.Measurements == nil {
		stores.Measurements = mem()
	}
	if stores.Dashboards == nil {
		stores.Dashboards = mem()
	}

	return &Application{
		Users:        users.New(stores.Users, tokens, log),
		Profiles:     profiles.New(stores.Profiles, stores.Users, log),
		Exercises:    exercises.New(stores.Exercises, log),
		Workouts:     workouts.New(stores.Workouts, stores.Users, stores.Exercises, log),
		Goals:        goals.New(stores.Goals, stores.Users, log),
		Nutrition:    nutrition.New(stores.Nutrition, stores.Users, log),
		Measurements: measurements.New(stores.Measurements, stores.Users, log),
		Dashboards:   dashboards.New(stores.Dashboards, stores.Users, log),
		Tokens:       tokens,
		Log:          log,
	}
}
