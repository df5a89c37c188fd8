// Package memory provides a mutex-guarded in-memory implementation of
// the storage interfaces. It backs tests and the zero-config dev mode;
// the dashboard aggregates are computed on read to match the SQL views.
package memory

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fittrack-app/fittrack/internal/app/domain/dashboard"
	"github.com/fittrack-app/fittrack/internal/app/domain/exercise"
	"github.com/fittrack-app/fittrack/internal/app/domain/goal"
	"github.com/fittrack-app/fittrack/internal/app/domain/measurement"
	"github.com/fittrack-app/fittrack/internal/app/domain/nutrition"
	"github.com/fittrack-app/fittrack/internal/app/domain/profile"
	"github.com/fittrack-app/fittrack/internal/app/domain/user"
	"github.com/fittrack-app/fittrack/internal/app/domain/workout"
	"github.com/fittrack-app/fittrack/internal/app/storage"
)

// Store holds everything in maps keyed by ID.
type Store struct {
	mu           sync.RWMutex
	users        map[string]user.User
	profiles     map[string]profile.Profile
	exercises    map[string]exercise.Exercise
	workoutLogs  map[string]workout.Log
	entries      map[string]workout.Entry
	goals        map[string]goal.Goal
	nutrition    map[string]nutrition.Log
	measurements map[string]measurement.Measurement

	// now is swappable so tests can pin the dashboard windows.
	now func() time.Time
}

var _ storage.UserStore = (*Store)(nil)
var _ storage.ProfileStore = (*Store)(nil)
var _ storage.ExerciseStore = (*Store)(nil)
var _ storage.WorkoutStore = (*Store)(nil)
var _ storage.GoalStore = (*Store)(nil)
var _ storage.NutritionStore = (*Store)(nil)
var _ storage.MeasurementStore = (*Store)(nil)
var _ storage.DashboardStore = (*Store)(nil)

// New returns an empty Store.
func New() *Store {
	return &Store{
		users:        make(map[string]user.User),
		profiles:     make(map[string]profile.Profile),
		exercises:    make(map[string]exercise.Exercise),
		workoutLogs:  make(map[string]workout.Log),
		entries:      make(map[string]workout.Entry),
		goals:        make(map[string]goal.Goal),
		nutrition:    make(map[string]nutrition.Log),
		measurements: make(map[string]measurement.Measurement),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the store clock. Test hook.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

// --- UserStore --------------------------------------------------------------

func (s *Store) CreateUser(_ context.Context, u user.User) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := s.now()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = u
	return u, nil
}

func (s *Store) UpdateUser(_ context.Context, u user.User) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.users[u.ID]
	if !ok {
		return user.User{}, sql.ErrNoRows
	}
	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = s.now()
	s.users[u.ID] = u
	return u, nil
}

func (s *Store) GetUser(_ context.Context, id string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return user.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, sql.ErrNoRows
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, sql.ErrNoRows
}

func (s *Store) ListUsers(_ context.Context) ([]user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]user.User, 0, len(s.users))
	for _, u := range s.users {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (s *Store) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.users, id)
	return nil
}

func (s *Store) UserExists(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[id]
	return ok, nil
}

func (s *Store) RecordLogin(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	at = at.UTC()
	u.LastLoginAt = &at
	s.users[id] = u
	return nil
}

// --- ProfileStore -----------------------------------------------------------

func (s *Store) CreateProfile(_ context.Context, p profile.Profile) (profile.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.UpdatedAt = s.now()
	s.profiles[p.ID] = p
	return p, nil
}

func (s *Store) UpdateProfile(_ context.Context, p profile.Profile) (profile.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.profiles[p.ID]
	if !ok {
		return profile.Profile{}, sql.ErrNoRows
	}
	p.UserID = existing.UserID
	p.UpdatedAt = s.now()
	s.profiles[p.ID] = p
	return p, nil
}

func (s *Store) GetProfile(_ context.Context, id string) (profile.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	if !ok {
		return profile.Profile{}, sql.ErrNoRows
	}
	return p, nil
}

func (s *Store) GetProfileByUser(_ context.Context, userID string) (profile.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return profile.Profile{}, sql.ErrNoRows
}

func (s *Store) ListProfiles(_ context.Context) ([]profile.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]profile.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

func (s *Store) DeleteProfile(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.profiles, id)
	return nil
}

// --- ExerciseStore ----------------------------------------------------------

func (s *Store) CreateExercise(_ context.Context, e exercise.Exercise) (exercise.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = s.now()
	s.exercises[e.ID] = e
	return e, nil
}

func (s *Store) UpdateExercise(_ context.Context, e exercise.Exercise) (exercise.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.exercises[e.ID]
	if !ok {
		return exercise.Exercise{}, sql.ErrNoRows
	}
	e.CreatedAt = existing.CreatedAt
	s.exercises[e.ID] = e
	return e, nil
}

func (s *Store) GetExercise(_ context.Context, id string) (exercise.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.exercises[id]
	if !ok {
		return exercise.Exercise{}, sql.ErrNoRows
	}
	return e, nil
}

func (s *Store) GetExerciseByName(_ context.Context, name string) (exercise.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.exercises {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}
	return exercise.Exercise{}, sql.ErrNoRows
}

func (s *Store) ListExercises(_ context.Context) ([]exercise.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]exercise.Exercise, 0, len(s.exercises))
	for _, e := range s.exercises {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *Store) DeleteExercise(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.exercises[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.exercises, id)
	return nil
}

func (s *Store) ExerciseExists(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.exercises[id]
	return ok, nil
}

// --- WorkoutStore -----------------------------------------------------------

func (s *Store) CreateWorkoutLog(_ context.Context, l workout.Log) (workout.Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = s.now()
	s.workoutLogs[l.ID] = l
	return l, nil
}

func (s *Store) UpdateWorkoutLog(_ context.Context, l workout.Log) (workout.Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.workoutLogs[l.ID]
	if !ok {
		return workout.Log{}, sql.ErrNoRows
	}
	l.UserID = existing.UserID
	l.CreatedAt = existing.CreatedAt
	s.workoutLogs[l.ID] = l
	return l, nil
}

func (s *Store) GetWorkoutLog(_ context.Context, id string) (workout.Log, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.workoutLogs[id]
	if !ok {
		return workout.Log{}, sql.ErrNoRows
	}
	return l, nil
}

func (s *Store) ListWorkoutLogs(_ context.Context, userID string) ([]workout.Log, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []workout.Log
	for _, l := range s.workoutLogs {
		if userID == "" || l.UserID == userID {
			result = append(result, l)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].WorkoutDate.After(result[j].WorkoutDate)
	})
	return result, nil
}

func (s *Store) DeleteWorkoutLog(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.workoutLogs[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.workoutLogs, id)
	return nil
}

func (s *Store) WorkoutLogExists(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.workoutLogs[id]
	return ok, nil
}

func (s *Store) CreateWorkoutEntry(_ context.Context, e workout.Entry) (workout.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = s.now()
	s.entries[e.ID] = e
	return e, nil
}

func (s *Store) UpdateWorkoutEntry(_ context.Context, e workout.Entry) (workout.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.entries[e.ID]
	if !ok {
		return workout.Entry{}, sql.ErrNoRows
	}
	e.WorkoutLogID = existing.WorkoutLogID
	e.ExerciseID = existing.ExerciseID
	e.CreatedAt = existing.CreatedAt
	s.entries[e.ID] = e
	return e, nil
}

func (s *Store) GetWorkoutEntry(_ context.Context, id string) (workout.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok {
		return workout.Entry{}, sql.ErrNoRows
	}
	return e, nil
}

func (s *Store) ListWorkoutEntries(_ context.Context, workoutLogID string) ([]workout.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []workout.Entry
	for _, e := range s.entries {
		if workoutLogID == "" || e.WorkoutLogID == workoutLogID {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OrderIndex < result[j].OrderIndex
	})
	return result, nil
}

func (s *Store) DeleteWorkoutEntry(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.entries, id)
	return nil
}

// --- GoalStore --------------------------------------------------------------

func (s *Store) CreateGoal(_ context.Context, g goal.Goal) (goal.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	now := s.now()
	g.CreatedAt = now
	g.UpdatedAt = now
	s.goals[g.ID] = g
	return g, nil
}

func (s *Store) UpdateGoal(_ context.Context, g goal.Goal) (goal.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.goals[g.ID]
	if !ok {
		return goal.Goal{}, sql.ErrNoRows
	}
	g.UserID = existing.UserID
	g.CreatedAt = existing.CreatedAt
	g.UpdatedAt = s.now()
	s.goals[g.ID] = g
	return g, nil
}

func (s *Store) GetGoal(_ context.Context, id string) (goal.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.goals[id]
	if !ok {
		return goal.Goal{}, sql.ErrNoRows
	}
	return g, nil
}

func (s *Store) ListGoals(_ context.Context) ([]goal.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]goal.Goal, 0, len(s.goals))
	for _, g := range s.goals {
		result = append(result, g)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *Store) ListGoalsByUser(_ context.Context, userID string) ([]goal.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []goal.Goal
	for _, g := range s.goals {
		if g.UserID == userID {
			result = append(result, g)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TargetDate.Before(result[j].TargetDate)
	})
	return result, nil
}

func (s *Store) DeleteGoal(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.goals[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.goals, id)
	return nil
}

// --- NutritionStore ---------------------------------------------------------

func (s *Store) CreateNutritionLog(_ context.Context, l nutrition.Log) (nutrition.Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = s.now()
	s.nutrition[l.ID] = l
	return l, nil
}

func (s *Store) UpdateNutritionLog(_ context.Context, l nutrition.Log) (nutrition.Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.nutrition[l.ID]
	if !ok {
		return nutrition.Log{}, sql.ErrNoRows
	}
	l.UserID = existing.UserID
	l.CreatedAt = existing.CreatedAt
	s.nutrition[l.ID] = l
	return l, nil
}

func (s *Store) GetNutritionLog(_ context.Context, id string) (nutrition.Log, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.nutrition[id]
	if !ok {
		return nutrition.Log{}, sql.ErrNoRows
	}
	return l, nil
}

func (s *Store) ListNutritionLogs(_ context.Context, userID string) ([]nutrition.Log, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []nutrition.Log
	for _, l := range s.nutrition {
		if userID == "" || l.UserID == userID {
			result = append(result, l)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LogDate.After(result[j].LogDate)
	})
	return result, nil
}

func (s *Store) DeleteNutritionLog(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nutrition[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.nutrition, id)
	return nil
}

// --- MeasurementStore -------------------------------------------------------

func (s *Store) CreateMeasurement(_ context.Context, m measurement.Measurement) (measurement.Measurement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = s.now()
	s.measurements[m.ID] = m
	return m, nil
}

func (s *Store) UpdateMeasurement(_ context.Context, m measurement.Measurement) (measurement.Measurement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.measurements[m.ID]
	if !ok {
		return measurement.Measurement{}, sql.ErrNoRows
	}
	m.UserID = existing.UserID
	m.CreatedAt = existing.CreatedAt
	s.measurements[m.ID] = m
	return m, nil
}

func (s *Store) GetMeasurement(_ context.Context, id string) (measurement.Measurement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.measurements[id]
	if !ok {
		return measurement.Measurement{}, sql.ErrNoRows
	}
	return m, nil
}

func (s *Store) ListMeasurements(_ context.Context, userID string) ([]measurement.Measurement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []measurement.Measurement
	for _, m := range s.measurements {
		if userID == "" || m.UserID == userID {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].MeasuredAt.After(result[j].MeasuredAt)
	})
	return result, nil
}

func (s *Store) DeleteMeasurement(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.measurements[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.measurements, id)
	return nil
}

// --- DashboardStore ---------------------------------------------------------

func (s *Store) GetDashboardSummary(_ context.Context, userID string) (dashboard.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return dashboard.Summary{}, sql.ErrNoRows
	}

	d := dashboard.Summary{UserID: u.ID, Username: u.Username}
	for _, p := range s.profiles {
		if p.UserID == userID {
			d.FullName = strings.TrimSpace(p.FirstName + " " + p.LastName)
			d.CurrentWeightKg = p.CurrentWeightKg
			d.TargetWeightKg = p.TargetWeightKg
			d.ActivityLevel = p.ActivityLevel
			break
		}
	}

	now := s.now()
	cutoff := now.AddDate(0, 0, -30)
	weekStart := startOfISOWeek(now)
	for _, l := range s.workoutLogs {
		if l.UserID != userID {
			continue
		}
		if l.WorkoutDate.After(cutoff) {
			d.WorkoutsLast30Days++
		}
		if !l.WorkoutDate.Before(weekStart) && l.TotalCaloriesBurned != nil {
			d.CaloriesThisWeek += *l.TotalCaloriesBurned
		}
	}

	for _, g := range s.goals {
		if g.UserID == userID && g.Status == goal.StatusActive {
			d.ActiveGoals++
		}
	}

	var latest *measurement.Measurement
	for _, m := range s.measurements {
		if m.UserID != userID || m.WeightKg == nil {
			continue
		}
		if latest == nil || m.MeasuredAt.After(latest.MeasuredAt) {
			mm := m
			latest = &mm
		}
	}
	if latest != nil {
		d.LatestWeightKg = latest.WeightKg
		at := latest.MeasuredAt
		d.LastMeasuredAt = &at
	}
	return d, nil
}

func (s *Store) ListWeeklyTrend(_ context.Context, userID string) ([]dashboard.WeeklyTrend, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	buckets := make(map[time.Time]*dashboard.WeeklyTrend)
	for _, l := range s.workoutLogs {
		if l.UserID != userID {
			continue
		}
		start := startOfISOWeek(l.WorkoutDate)
		b, ok := buckets[start]
		if !ok {
			year, week := l.WorkoutDate.ISOWeek()
			b = &dashboard.WeeklyTrend{UserID: userID, Year: year, WeekNumber: week, WeekStart: start}
			buckets[start] = b
		}
		b.WorkoutCount++
		if l.DurationMinutes != nil {
			b.TotalMinutes += float64(*l.DurationMinutes)
		}
		if l.TotalCaloriesBurned != nil {
			b.TotalCalories += *l.TotalCaloriesBurned
		}
	}

	result := make([]dashboard.WeeklyTrend, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].WeekStart.Before(result[j].WeekStart)
	})
	return result, nil
}

// startOfISOWeek truncates t to the Monday 00:00 of its ISO week.
func startOfISOWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
