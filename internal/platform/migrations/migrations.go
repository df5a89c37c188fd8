// Package migrations applies the schema in order. Statements are
// idempotent so startup can always run the full list.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		is_email_verified BOOLEAN NOT NULL DEFAULT FALSE,
		last_login_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS user_profiles (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL DEFAULT '',
		date_of_birth DATE NOT NULL,
		gender TEXT NOT NULL DEFAULT '',
		height_cm NUMERIC(5,2),
		current_weight_kg NUMERIC(5,2),
		target_weight_kg NUMERIC(5,2),
		activity_level TEXT NOT NULL,
		preferred_units TEXT NOT NULL,
		profile_pic_url TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS exercise_library (
		id UUID PRIMARY KEY,
		exercise_name TEXT NOT NULL UNIQUE,
		category TEXT NOT NULL,
		muscle_group TEXT NOT NULL DEFAULT '',
		met_value NUMERIC(5,2) NOT NULL DEFAULT 0,
		difficulty_level TEXT NOT NULL,
		instructions TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS workout_logs (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		workout_date TIMESTAMPTZ NOT NULL,
		start_time TIMESTAMPTZ NOT NULL,
		end_time TIMESTAMPTZ,
		duration_minutes INTEGER,
		total_calories_burned NUMERIC(7,2),
		workout_type TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_workout_logs_user_date ON workout_logs (user_id, workout_date DESC)`,

	`CREATE TABLE IF NOT EXISTS workout_exercises (
		id UUID PRIMARY KEY,
		workout_log_id UUID NOT NULL REFERENCES workout_logs(id) ON DELETE CASCADE,
		exercise_id UUID NOT NULL REFERENCES exercise_library(id),
		order_index INTEGER NOT NULL DEFAULT 0,
		sets INTEGER,
		reps INTEGER,
		weight_kg NUMERIC(6,2),
		duration_seconds INTEGER,
		distance_km NUMERIC(6,2),
		calories_burned NUMERIC(7,2),
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_workout_exercises_log ON workout_exercises (workout_log_id, order_index)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		goal_type TEXT NOT NULL,
		goal_name TEXT NOT NULL,
		target_value NUMERIC(8,2) NOT NULL,
		current_value NUMERIC(8,2) NOT NULL DEFAULT 0,
		unit TEXT NOT NULL DEFAULT '',
		start_date TIMESTAMPTZ NOT NULL,
		target_date TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_user ON goals (user_id, target_date)`,

	`CREATE TABLE IF NOT EXISTS nutrition_logs (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		log_date TIMESTAMPTZ NOT NULL,
		meal_type TEXT NOT NULL,
		food_name TEXT NOT NULL,
		serving_amount NUMERIC(7,2) NOT NULL,
		serving_unit TEXT NOT NULL DEFAULT '',
		calories_kcal NUMERIC(7,2) NOT NULL,
		protein_g NUMERIC(6,2),
		carbs_g NUMERIC(6,2),
		fat_g NUMERIC(6,2),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_nutrition_logs_user_date ON nutrition_logs (user_id, log_date DESC)`,

	`CREATE TABLE IF NOT EXISTS body_measurements (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		measured_at TIMESTAMPTZ NOT NULL,
		weight_kg NUMERIC(5,2),
		body_fat_percent NUMERIC(4,1),
		waist_cm NUMERIC(5,2),
		hips_cm NUMERIC(5,2),
		bicep_cm NUMERIC(5,2),
		chest_cm NUMERIC(5,2),
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_body_measurements_user ON body_measurements (user_id, measured_at DESC)`,

	`CREATE OR REPLACE VIEW vw_user_dashboard AS
	SELECT
		u.id AS user_id,
		u.username,
		NULLIF(TRIM(COALESCE(p.first_name, '') || ' ' || COALESCE(p.last_name, '')), '') AS full_name,
		p.current_weight_kg,
		p.target_weight_kg,
		p.activity_level,
		COALESCE(w.workouts_last_30_days, 0) AS workouts_last_30_days,
		COALESCE(c.calories_this_week, 0) AS calories_this_week,
		COALESCE(g.active_goals, 0) AS active_goals,
		m.latest_weight_kg,
		m.last_measured_at
	FROM users u
	LEFT JOIN user_profiles p ON p.user_id = u.id
	LEFT JOIN (
		SELECT user_id, COUNT(*) AS workouts_last_30_days
		FROM workout_logs
		WHERE workout_date > NOW() - INTERVAL '30 days'
		GROUP BY user_id
	) w ON w.user_id = u.id
	LEFT JOIN (
		SELECT user_id, SUM(total_calories_burned) AS calories_this_week
		FROM workout_logs
		WHERE workout_date >= DATE_TRUNC('week', NOW())
		GROUP BY user_id
	) c ON c.user_id = u.id
	LEFT JOIN (
		SELECT user_id, COUNT(*) AS active_goals
		FROM goals
		WHERE status = 'Active'
		GROUP BY user_id
	) g ON g.user_id = u.id
	LEFT JOIN (
		SELECT DISTINCT ON (user_id) user_id, weight_kg AS latest_weight_kg, measured_at AS last_measured_at
		FROM body_measurements
		WHERE weight_kg IS NOT NULL
		ORDER BY user_id, measured_at DESC
	) m ON m.user_id = u.id`,

	`CREATE OR REPLACE VIEW vw_weekly_calorie_trend AS
	SELECT
		user_id,
		EXTRACT(ISOYEAR FROM workout_date)::INT AS year,
		EXTRACT(WEEK FROM workout_date)::INT AS week_number,
		DATE_TRUNC('week', workout_date) AS week_start,
		COUNT(*) AS workout_count,
		COALESCE(SUM(duration_minutes), 0)::FLOAT AS total_minutes,
		COALESCE(SUM(total_calories_burned), 0)::FLOAT AS total_calories
	FROM workout_logs
	GROUP BY user_id, 2, 3, 4`,
}

// Apply runs every statement in order inside one transaction.
func Apply(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration statement %d: %w", i, err)
		}
	}
	return tx.Commit()
}
