// Package postgres implements the storage interfaces backed by
// PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
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

// Store implements the storage interfaces over a database handle.
type Store struct {
	db *sql.DB
}

var _ storage.UserStore = (*Store)(nil)
var _ storage.ProfileStore = (*Store)(nil)
var _ storage.ExerciseStore = (*Store)(nil)
var _ storage.WorkoutStore = (*Store)(nil)
var _ storage.GoalStore = (*Store)(nil)
var _ storage.NutritionStore = (*Store)(nil)
var _ storage.MeasurementStore = (*Store)(nil)
var _ storage.DashboardStore = (*Store)(nil)

// New creates a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// --- UserStore --------------------------------------------------------------

const userColumns = `id, username, email, password_hash, is_active, is_email_verified, last_login_at, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsActive, &u.IsEmailVerified, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (s *Store) CreateUser(ctx context.Context, u user.User) (user.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, is_active, is_email_verified, last_login_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, u.ID, u.Username, u.Email, u.PasswordHash, u.IsActive, u.IsEmailVerified, u.LastLoginAt, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (s *Store) UpdateUser(ctx context.Context, u user.User) (user.User, error) {
	existing, err := s.GetUser(ctx, u.ID)
	if err != nil {
		return user.User{}, err
	}
	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET username = $2, email = $3, password_hash = $4, is_active = $5, is_email_verified = $6, last_login_at = $7, updated_at = $8
		WHERE id = $1
	`, u.ID, u.Username, u.Email, u.PasswordHash, u.IsActive, u.IsEmailVerified, u.LastLoginAt, u.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return user.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (user.User, error) {
	return scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	return scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	return scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

func (s *Store) ListUsers(ctx context.Context) ([]user.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) UserExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (s *Store) RecordLogin(ctx context.Context, id string, at time.Time) error {
	result, err := s.db.ExecContext(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at.UTC())
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// --- ProfileStore -----------------------------------------------------------

const profileColumns = `id, user_id, first_name, last_name, date_of_birth, gender, height_cm, current_weight_kg, target_weight_kg, activity_level, preferred_units, profile_pic_url, updated_at`

func scanProfile(row interface{ Scan(...any) error }) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender, &p.HeightCm, &p.CurrentWeightKg, &p.TargetWeightKg, &p.ActivityLevel, &p.PreferredUnits, &p.ProfilePicURL, &p.UpdatedAt)
	return p, err
}

func (s *Store) CreateProfile(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.UpdatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_profiles (id, user_id, first_name, last_name, date_of_birth, gender, height_cm, current_weight_kg, target_weight_kg, activity_level, preferred_units, profile_pic_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, p.ID, p.UserID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender, p.HeightCm, p.CurrentWeightKg, p.TargetWeightKg, p.ActivityLevel, p.PreferredUnits, p.ProfilePicURL, p.UpdatedAt)
	if err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func (s *Store) UpdateProfile(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	existing, err := s.GetProfile(ctx, p.ID)
	if err != nil {
		return profile.Profile{}, err
	}
	p.UserID = existing.UserID
	p.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		UPDATE user_profiles
		SET first_name = $2, last_name = $3, date_of_birth = $4, gender = $5, height_cm = $6, current_weight_kg = $7, target_weight_kg = $8, activity_level = $9, preferred_units = $10, profile_pic_url = $11, updated_at = $12
		WHERE id = $1
	`, p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender, p.HeightCm, p.CurrentWeightKg, p.TargetWeightKg, p.ActivityLevel, p.PreferredUnits, p.ProfilePicURL, p.UpdatedAt)
	if err != nil {
		return profile.Profile{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return profile.Profile{}, sql.ErrNoRows
	}
	return p, nil
}

func (s *Store) GetProfile(ctx context.Context, id string) (profile.Profile, error) {
	return scanProfile(s.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM user_profiles WHERE id = $1`, id))
}

func (s *Store) GetProfileByUser(ctx context.Context, userID string) (profile.Profile, error) {
	return scanProfile(s.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1`, userID))
}

func (s *Store) ListProfiles(ctx context.Context) ([]profile.Profile, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+profileColumns+` FROM user_profiles ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []profile.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (s *Store) DeleteProfile(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM user_profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// --- ExerciseStore ----------------------------------------------------------

const exerciseColumns = `id, exercise_name, category, muscle_group, met_value, difficulty_level, instructions, is_active, created_at`

func scanExercise(row interface{ Scan(...any) error }) (exercise.Exercise, error) {
	var e exercise.Exercise
	err := row.Scan(&e.ID, &e.Name, &e.Category, &e.MuscleGroup, &e.MetValue, &e.DifficultyLevel, &e.Instructions, &e.IsActive, &e.CreatedAt)
	return e, err
}

func (s *Store) CreateExercise(ctx context.Context, e exercise.Exercise) (exercise.Exercise, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exercise_library (id, exercise_name, category, muscle_group, met_value, difficulty_level, instructions, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, e.ID, e.Name, e.Category, e.MuscleGroup, e.MetValue, e.DifficultyLevel, e.Instructions, e.IsActive, e.CreatedAt)
	if err != nil {
		return exercise.Exercise{}, err
	}
	return e, nil
}

func (s *Store) UpdateExercise(ctx context.Context, e exercise.Exercise) (exercise.Exercise, error) {
	existing, err := s.GetExercise(ctx, e.ID)
	if err != nil {
		return exercise.Exercise{}, err
	}
	e.CreatedAt = existing.CreatedAt

	result, err := s.db.ExecContext(ctx, `
		UPDATE exercise_library
		SET exercise_name = $2, category = $3, muscle_group = $4, met_value = $5, difficulty_level = $6, instructions = $7, is_active = $8
		WHERE id = $1
	`, e.ID, e.Name, e.Category, e.MuscleGroup, e.MetValue, e.DifficultyLevel, e.Instructions, e.IsActive)
	if err != nil {
		return exercise.Exercise{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return exercise.Exercise{}, sql.ErrNoRows
	}
	return e, nil
}

func (s *Store) GetExercise(ctx context.Context, id string) (exercise.Exercise, error) {
	return scanExercise(s.db.QueryRowContext(ctx, `SELECT `+exerciseColumns+` FROM exercise_library WHERE id = $1`, id))
}

func (s *Store) GetExerciseByName(ctx context.Context, name string) (exercise.Exercise, error) {
	return scanExercise(s.db.QueryRowContext(ctx, `SELECT `+exerciseColumns+` FROM exercise_library WHERE exercise_name = $1`, name))
}

func (s *Store) ListExercises(ctx context.Context) ([]exercise.Exercise, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+exerciseColumns+` FROM exercise_library ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []exercise.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

func (s *Store) DeleteExercise(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM exercise_library WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) ExerciseExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM exercise_library WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// --- WorkoutStore -----------------------------------------------------------

const workoutLogColumns = `id, user_id, workout_date, start_time, end_time, duration_minutes, total_calories_burned, workout_type, notes, created_at`

func scanWorkoutLog(row interface{ Scan(...any) error }) (workout.Log, error) {
	var l workout.Log
	err := row.Scan(&l.ID, &l.UserID, &l.WorkoutDate, &l.StartTime, &l.EndTime, &l.DurationMinutes, &l.TotalCaloriesBurned, &l.WorkoutType, &l.Notes, &l.CreatedAt)
	return l, err
}

func (s *Store) CreateWorkoutLog(ctx context.Context, l workout.Log) (workout.Log, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO workout_logs (id, user_id, workout_date, start_time, end_time, duration_minutes, total_calories_burned, workout_type, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, l.ID, l.UserID, l.WorkoutDate, l.StartTime, l.EndTime, l.DurationMinutes, l.TotalCaloriesBurned, l.WorkoutType, l.Notes, l.CreatedAt)
	if err != nil {
		return workout.Log{}, err
	}
	return l, nil
}

func (s *Store) UpdateWorkoutLog(ctx context.Context, l workout.Log) (workout.Log, error) {
	existing, err := s.GetWorkoutLog(ctx, l.ID)
	if err != nil {
		return workout.Log{}, err
	}
	l.UserID = existing.UserID
	l.CreatedAt = existing.CreatedAt

	result, err := s.db.ExecContext(ctx, `
		UPDATE workout_logs
		SET workout_date = $2, start_time = $3, end_time = $4, duration_minutes = $5, total_calories_burned = $6, workout_type = $7, notes = $8
		WHERE id = $1
	`, l.ID, l.WorkoutDate, l.StartTime, l.EndTime, l.DurationMinutes, l.TotalCaloriesBurned, l.WorkoutType, l.Notes)
	if err != nil {
		return workout.Log{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return workout.Log{}, sql.ErrNoRows
	}
	return l, nil
}

func (s *Store) GetWorkoutLog(ctx context.Context, id string) (workout.Log, error) {
	return scanWorkoutLog(s.db.QueryRowContext(ctx, `SELECT `+workoutLogColumns+` FROM workout_logs WHERE id = $1`, id))
}

func (s *Store) ListWorkoutLogs(ctx context.Context, userID string) ([]workout.Log, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+workoutLogColumns+`
		FROM workout_logs
		WHERE $1 = '' OR user_id = $1
		ORDER BY workout_date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []workout.Log
	for rows.Next() {
		l, err := scanWorkoutLog(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (s *Store) DeleteWorkoutLog(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM workout_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) WorkoutLogExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM workout_logs WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

const workoutEntryColumns = `id, workout_log_id, exercise_id, order_index, sets, reps, weight_kg, duration_seconds, distance_km, calories_burned, notes, created_at`

func scanWorkoutEntry(row interface{ Scan(...any) error }) (workout.Entry, error) {
	var e workout.Entry
	err := row.Scan(&e.ID, &e.WorkoutLogID, &e.ExerciseID, &e.OrderIndex, &e.Sets, &e.Reps, &e.WeightKg, &e.DurationSeconds, &e.DistanceKm, &e.CaloriesBurned, &e.Notes, &e.CreatedAt)
	return e, err
}

func (s *Store) CreateWorkoutEntry(ctx context.Context, e workout.Entry) (workout.Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO workout_exercises (id, workout_log_id, exercise_id, order_index, sets, reps, weight_kg, duration_seconds, distance_km, calories_burned, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, e.ID, e.WorkoutLogID, e.ExerciseID, e.OrderIndex, e.Sets, e.Reps, e.WeightKg, e.DurationSeconds, e.DistanceKm, e.CaloriesBurned, e.Notes, e.CreatedAt)
	if err != nil {
		return workout.Entry{}, err
	}
	return e, nil
}

func (s *Store) UpdateWorkoutEntry(ctx context.Context, e workout.Entry) (workout.Entry, error) {
	existing, err := s.GetWorkoutEntry(ctx, e.ID)
	if err != nil {
		return workout.Entry{}, err
	}
	e.WorkoutLogID = existing.WorkoutLogID
	e.ExerciseID = existing.ExerciseID
	e.CreatedAt = existing.CreatedAt

	result, err := s.db.ExecContext(ctx, `
		UPDATE workout_exercises
		SET order_index = $2, sets = $3, reps = $4, weight_kg = $5, duration_seconds = $6, distance_km = $7, calories_burned = $8, notes = $9
		WHERE id = $1
	`, e.ID, e.OrderIndex, e.Sets, e.Reps, e.WeightKg, e.DurationSeconds, e.DistanceKm, e.CaloriesBurned, e.Notes)
	if err != nil {
		return workout.Entry{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return workout.Entry{}, sql.ErrNoRows
	}
	return e, nil
}

func (s *Store) GetWorkoutEntry(ctx context.Context, id string) (workout.Entry, error) {
	return scanWorkoutEntry(s.db.QueryRowContext(ctx, `SELECT `+workoutEntryColumns+` FROM workout_exercises WHERE id = $1`, id))
}

func (s *Store) ListWorkoutEntries(ctx context.Context, workoutLogID string) ([]workout.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+workoutEntryColumns+`
		FROM workout_exercises
		WHERE $1 = '' OR workout_log_id = $1
		ORDER BY order_index
	`, workoutLogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []workout.Entry
	for rows.Next() {
		e, err := scanWorkoutEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

func (s *Store) DeleteWorkoutEntry(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM workout_exercises WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// --- GoalStore --------------------------------------------------------------

const goalColumns = `id, user_id, goal_type, goal_name, target_value, current_value, unit, start_date, target_date, status, created_at, updated_at`

func scanGoal(row interface{ Scan(...any) error }) (goal.Goal, error) {
	var g goal.Goal
	err := row.Scan(&g.ID, &g.UserID, &g.GoalType, &g.GoalName, &g.TargetValue, &g.CurrentValue, &g.Unit, &g.StartDate, &g.TargetDate, &g.Status, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

func (s *Store) CreateGoal(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (id, user_id, goal_type, goal_name, target_value, current_value, unit, start_date, target_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, g.ID, g.UserID, g.GoalType, g.GoalName, g.TargetValue, g.CurrentValue, g.Unit, g.StartDate, g.TargetDate, g.Status, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		return goal.Goal{}, err
	}
	return g, nil
}

func (s *Store) UpdateGoal(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	existing, err := s.GetGoal(ctx, g.ID)
	if err != nil {
		return goal.Goal{}, err
	}
	g.UserID = existing.UserID
	g.CreatedAt = existing.CreatedAt
	g.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		UPDATE goals
		SET goal_type = $2, goal_name = $3, target_value = $4, current_value = $5, unit = $6, start_date = $7, target_date = $8, status = $9, updated_at = $10
		WHERE id = $1
	`, g.ID, g.GoalType, g.GoalName, g.TargetValue, g.CurrentValue, g.Unit, g.StartDate, g.TargetDate, g.Status, g.UpdatedAt)
	if err != nil {
		return goal.Goal{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return goal.Goal{}, sql.ErrNoRows
	}
	return g, nil
}

func (s *Store) GetGoal(ctx context.Context, id string) (goal.Goal, error) {
	return scanGoal(s.db.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1`, id))
}

func (s *Store) ListGoals(ctx context.Context) ([]goal.Goal, error) {
	return s.queryGoals(ctx, `SELECT `+goalColumns+` FROM goals ORDER BY created_at DESC`)
}

func (s *Store) ListGoalsByUser(ctx context.Context, userID string) ([]goal.Goal, error) {
	return s.queryGoals(ctx, `SELECT `+goalColumns+` FROM goals WHERE user_id = $1 ORDER BY target_date`, userID)
}

func (s *Store) queryGoals(ctx context.Context, query string, args ...any) ([]goal.Goal, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []goal.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, rows.Err()
}

func (s *Store) DeleteGoal(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// --- NutritionStore ---------------------------------------------------------

const nutritionColumns = `id, user_id, log_date, meal_type, food_name, serving_amount, serving_unit, calories_kcal, protein_g, carbs_g, fat_g, created_at`

func scanNutritionLog(row interface{ Scan(...any) error }) (nutrition.Log, error) {
	var l nutrition.Log
	err := row.Scan(&l.ID, &l.UserID, &l.LogDate, &l.MealType, &l.FoodName, &l.ServingAmount, &l.ServingUnit, &l.CaloriesKcal, &l.ProteinG, &l.CarbsG, &l.FatG, &l.CreatedAt)
	return l, err
}

func (s *Store) CreateNutritionLog(ctx context.Context, l nutrition.Log) (nutrition.Log, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO nutrition_logs (id, user_id, log_date, meal_type, food_name, serving_amount, serving_unit, calories_kcal, protein_g, carbs_g, fat_g, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, l.ID, l.UserID, l.LogDate, l.MealType, l.FoodName, l.ServingAmount, l.ServingUnit, l.CaloriesKcal, l.ProteinG, l.CarbsG, l.FatG, l.CreatedAt)
	if err != nil {
		return nutrition.Log{}, err
	}
	return l, nil
}

func (s *Store) UpdateNutritionLog(ctx context.Context, l nutrition.Log) (nutrition.Log, error) {
	existing, err := s.GetNutritionLog(ctx, l.ID)
	if err != nil {
		return nutrition.Log{}, err
	}
	l.UserID = existing.UserID
	l.CreatedAt = existing.CreatedAt

	result, err := s.db.ExecContext(ctx, `
		UPDATE nutrition_logs
		SET log_date = $2, meal_type = $3, food_name = $4, serving_amount = $5, serving_unit = $6, calories_kcal = $7, protein_g = $8, carbs_g = $9, fat_g = $10
		WHERE id = $1
	`, l.ID, l.LogDate, l.MealType, l.FoodName, l.ServingAmount, l.ServingUnit, l.CaloriesKcal, l.ProteinG, l.CarbsG, l.FatG)
	if err != nil {
		return nutrition.Log{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nutrition.Log{}, sql.ErrNoRows
	}
	return l, nil
}

func (s *Store) GetNutritionLog(ctx context.Context, id string) (nutrition.Log, error) {
	return scanNutritionLog(s.db.QueryRowContext(ctx, `SELECT `+nutritionColumns+` FROM nutrition_logs WHERE id = $1`, id))
}

func (s *Store) ListNutritionLogs(ctx context.Context, userID string) ([]nutrition.Log, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+nutritionColumns+`
		FROM nutrition_logs
		WHERE $1 = '' OR user_id = $1
		ORDER BY log_date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []nutrition.Log
	for rows.Next() {
		l, err := scanNutritionLog(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (s *Store) DeleteNutritionLog(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM nutrition_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// --- MeasurementStore -------------------------------------------------------

const measurementColumns = `id, user_id, measured_at, weight_kg, body_fat_percent, waist_cm, hips_cm, bicep_cm, chest_cm, notes, created_at`

func scanMeasurement(row interface{ Scan(...any) error }) (measurement.Measurement, error) {
	var m measurement.Measurement
	err := row.Scan(&m.ID, &m.UserID, &m.MeasuredAt, &m.WeightKg, &m.BodyFatPercent, &m.WaistCm, &m.HipsCm, &m.BicepCm, &m.ChestCm, &m.Notes, &m.CreatedAt)
	return m, err
}

func (s *Store) CreateMeasurement(ctx context.Context, m measurement.Measurement) (measurement.Measurement, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO body_measurements (id, user_id, measured_at, weight_kg, body_fat_percent, waist_cm, hips_cm, bicep_cm, chest_cm, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, m.ID, m.UserID, m.MeasuredAt, m.WeightKg, m.BodyFatPercent, m.WaistCm, m.HipsCm, m.BicepCm, m.ChestCm, m.Notes, m.CreatedAt)
	if err != nil {
		return measurement.Measurement{}, err
	}
	return m, nil
}

func (s *Store) UpdateMeasurement(ctx context.Context, m measurement.Measurement) (measurement.Measurement, error) {
	existing, err := s.GetMeasurement(ctx, m.ID)
	if err != nil {
		return measurement.Measurement{}, err
	}
	m.UserID = existing.UserID
	m.CreatedAt = existing.CreatedAt

	result, err := s.db.ExecContext(ctx, `
		UPDATE body_measurements
		SET measured_at = $2, weight_kg = $3, body_fat_percent = $4, waist_cm = $5, hips_cm = $6, bicep_cm = $7, chest_cm = $8, notes = $9
		WHERE id = $1
	`, m.ID, m.MeasuredAt, m.WeightKg, m.BodyFatPercent, m.WaistCm, m.HipsCm, m.BicepCm, m.ChestCm, m.Notes)
	if err != nil {
		return measurement.Measurement{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return measurement.Measurement{}, sql.ErrNoRows
	}
	return m, nil
}

func (s *Store) GetMeasurement(ctx context.Context, id string) (measurement.Measurement, error) {
	return scanMeasurement(s.db.QueryRowContext(ctx, `SELECT `+measurementColumns+` FROM body_measurements WHERE id = $1`, id))
}

func (s *Store) ListMeasurements(ctx context.Context, userID string) ([]measurement.Measurement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+measurementColumns+`
		FROM body_measurements
		WHERE $1 = '' OR user_id = $1
		ORDER BY measured_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []measurement.Measurement
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func (s *Store) DeleteMeasurement(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM body_measurements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// --- DashboardStore ---------------------------------------------------------

func (s *Store) GetDashboardSummary(ctx context.Context, userID string) (dashboard.Summary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, username, full_name, current_weight_kg, target_weight_kg, activity_level, workouts_last_30_days, calories_this_week, active_goals, latest_weight_kg, last_measured_at
		FROM vw_user_dashboard
		WHERE user_id = $1
	`, userID)

	var (
		d        dashboard.Summary
		fullName *string
		level    *string
	)
	if err := row.Scan(&d.UserID, &d.Username, &fullName, &d.CurrentWeightKg, &d.TargetWeightKg, &level, &d.WorkoutsLast30Days, &d.CaloriesThisWeek, &d.ActiveGoals, &d.LatestWeightKg, &d.LastMeasuredAt); err != nil {
		return dashboard.Summary{}, err
	}
	if fullName != nil {
		d.FullName = *fullName
	}
	if level != nil {
		d.ActivityLevel = *level
	}
	return d, nil
}

func (s *Store) ListWeeklyTrend(ctx context.Context, userID string) ([]dashboard.WeeklyTrend, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, year, week_number, week_start, workout_count, total_minutes, total_calories
		FROM vw_weekly_calorie_trend
		WHERE user_id = $1
		ORDER BY week_start
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []dashboard.WeeklyTrend
	for rows.Next() {
		var t dashboard.WeeklyTrend
		if err := rows.Scan(&t.UserID, &t.Year, &t.WeekNumber, &t.WeekStart, &t.WorkoutCount, &t.TotalMinutes, &t.TotalCalories); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}
