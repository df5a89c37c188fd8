package client

import (
	"time"

	"github.com/fittrack-app/fittrack/pkg/stats"
)

// User is an account as returned by the API. The password hash never
// crosses the wire.
type User struct {
	ID              string     `json:"userId"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	IsActive        bool       `json:"isActive"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// RegisterRequest creates an account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate is a partial account update. Nil fields stay unchanged.
type UserUpdate struct {
	Username        *string `json:"username,omitempty"`
	Email           *string `json:"email,omitempty"`
	Password        *string `json:"password,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
	IsEmailVerified *bool   `json:"isEmailVerified,omitempty"`
}

// Profile is a user profile record.
type Profile struct {
	ID              string    `json:"profileId"`
	UserID          string    `json:"userId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	DateOfBirth     time.Time `json:"dateOfBirth"`
	Gender          string    `json:"gender,omitempty"`
	HeightCm        *float64  `json:"heightCm,omitempty"`
	CurrentWeightKg *float64  `json:"currentWeightKg,omitempty"`
	TargetWeightKg  *float64  `json:"targetWeightKg,omitempty"`
	ActivityLevel   string    `json:"activityLevel"`
	PreferredUnits  string    `json:"preferredUnits"`
	ProfilePicURL   string    `json:"profilePicUrl,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BMI returns the profile's body mass index, or 0 when height or
// weight is missing.
func (p Profile) BMI() float64 {
	if p.HeightCm == nil || p.CurrentWeightKg == nil {
		return 0
	}
	return stats.BMI(*p.CurrentWeightKg, *p.HeightCm)
}

// BMICategory returns the display category for the profile's BMI.
func (p Profile) BMICategory() string { return stats.BMICategory(p.BMI()) }

// ProfileCreate creates a profile.
type ProfileCreate struct {
	UserID          string     `json:"userId"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName,omitempty"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty"`
	Gender          string     `json:"gender,omitempty"`
	HeightCm        *float64   `json:"heightCm,omitempty"`
	CurrentWeightKg *float64   `json:"currentWeightKg,omitempty"`
	TargetWeightKg  *float64   `json:"targetWeightKg,omitempty"`
	ActivityLevel   string     `json:"activityLevel,omitempty"`
	PreferredUnits  string     `json:"preferredUnits,omitempty"`
	ProfilePicURL   string     `json:"profilePicUrl,omitempty"`
}

// ProfileUpdate is a partial profile update.
type ProfileUpdate struct {
	FirstName       *string    `json:"firstName,omitempty"`
	LastName        *string    `json:"lastName,omitempty"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty"`
	Gender          *string    `json:"gender,omitempty"`
	HeightCm        *float64   `json:"heightCm,omitempty"`
	CurrentWeightKg *float64   `json:"currentWeightKg,omitempty"`
	TargetWeightKg  *float64   `json:"targetWeightKg,omitempty"`
	ActivityLevel   *string    `json:"activityLevel,omitempty"`
	PreferredUnits  *string    `json:"preferredUnits,omitempty"`
	ProfilePicURL   *string    `json:"profilePicUrl,omitempty"`
}

// Exercise is a library entry.
type Exercise struct {
	ID              string    `json:"exerciseId"`
	Name            string    `json:"exerciseName"`
	Category        string    `json:"category"`
	MuscleGroup     string    `json:"muscleGroup,omitempty"`
	MetValue        float64   `json:"metValue"`
	DifficultyLevel string    `json:"difficultyLevel"`
	Instructions    string    `json:"instructions,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ExerciseCreate creates a library entry.
type ExerciseCreate struct {
	Name            string  `json:"exerciseName"`
	Category        string  `json:"category"`
	MuscleGroup     string  `json:"muscleGroup,omitempty"`
	MetValue        float64 `json:"metValue,omitempty"`
	DifficultyLevel string  `json:"difficultyLevel,omitempty"`
	Instructions    string  `json:"instructions,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
}

// ExerciseUpdate is a partial library entry update.
type ExerciseUpdate struct {
	Name            *string  `json:"exerciseName,omitempty"`
	Category        *string  `json:"category,omitempty"`
	MuscleGroup     *string  `json:"muscleGroup,omitempty"`
	MetValue        *float64 `json:"metValue,omitempty"`
	DifficultyLevel *string  `json:"difficultyLevel,omitempty"`
	Instructions    *string  `json:"instructions,omitempty"`
	IsActive        *bool    `json:"isActive,omitempty"`
}

// WorkoutLog is a workout session.
type WorkoutLog struct {
	ID                  string     `json:"workoutLogId"`
	UserID              string     `json:"userId"`
	WorkoutDate         time.Time  `json:"workoutDate"`
	StartTime           time.Time  `json:"startTime"`
	EndTime             *time.Time `json:"endTime,omitempty"`
	DurationMinutes     *int       `json:"durationMinutes,omitempty"`
	TotalCaloriesBurned *float64   `json:"totalCaloriesBurned,omitempty"`
	WorkoutType         string     `json:"workoutType"`
	Notes               string     `json:"notes,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// WorkoutLogCreate creates a workout log.
type WorkoutLogCreate struct {
	UserID              string     `json:"userId"`
	WorkoutDate         *time.Time `json:"workoutDate,omitempty"`
	StartTime           *time.Time `json:"startTime,omitempty"`
	EndTime             *time.Time `json:"endTime,omitempty"`
	DurationMinutes     *int       `json:"durationMinutes,omitempty"`
	TotalCaloriesBurned *float64   `json:"totalCaloriesBurned,omitempty"`
	WorkoutType         string     `json:"workoutType"`
	Notes               string     `json:"notes,omitempty"`
}

// WorkoutLogUpdate is a partial workout log update.
type WorkoutLogUpdate struct {
	WorkoutDate         *time.Time `json:"workoutDate,omitempty"`
	StartTime           *time.Time `json:"startTime,omitempty"`
	EndTime             *time.Time `json:"endTime,omitempty"`
	DurationMinutes     *int       `json:"durationMinutes,omitempty"`
	TotalCaloriesBurned *float64   `json:"totalCaloriesBurned,omitempty"`
	WorkoutType         *string    `json:"workoutType,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
}

// WorkoutExercise is one exercise performed inside a workout log.
type WorkoutExercise struct {
	ID              string    `json:"workoutExerciseId"`
	WorkoutLogID    string    `json:"workoutLogId"`
	ExerciseID      string    `json:"exerciseId"`
	OrderIndex      int       `json:"orderIndex"`
	Sets            *int      `json:"sets,omitempty"`
	Reps            *int      `json:"reps,omitempty"`
	WeightKg        *float64  `json:"weightKg,omitempty"`
	DurationSeconds *int      `json:"durationSeconds,omitempty"`
	DistanceKm      *float64  `json:"distanceKm,omitempty"`
	CaloriesBurned  *float64  `json:"caloriesBurned,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// WorkoutExerciseCreate creates an entry within a log.
type WorkoutExerciseCreate struct {
	WorkoutLogID    string   `json:"workoutLogId"`
	ExerciseID      string   `json:"exerciseId"`
	OrderIndex      int      `json:"orderIndex"`
	Sets            *int     `json:"sets,omitempty"`
	Reps            *int     `json:"reps,omitempty"`
	WeightKg        *float64 `json:"weightKg,omitempty"`
	DurationSeconds *int     `json:"durationSeconds,omitempty"`
	DistanceKm      *float64 `json:"distanceKm,omitempty"`
	CaloriesBurned  *float64 `json:"caloriesBurned,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

// WorkoutExerciseUpdate is a partial entry update.
type WorkoutExerciseUpdate struct {
	OrderIndex      *int     `json:"orderIndex,omitempty"`
	Sets            *int     `json:"sets,omitempty"`
	Reps            *int     `json:"reps,omitempty"`
	WeightKg        *float64 `json:"weightKg,omitempty"`
	DurationSeconds *int     `json:"durationSeconds,omitempty"`
	DistanceKm      *float64 `json:"distanceKm,omitempty"`
	CaloriesBurned  *float64 `json:"caloriesBurned,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
}

// Goal is a fitness goal.
type Goal struct {
	ID           string    `json:"goalId"`
	UserID       string    `json:"userId"`
	GoalType     string    `json:"goalType"`
	GoalName     string    `json:"goalName"`
	TargetValue  float64   `json:"targetValue"`
	CurrentValue float64   `json:"currentValue"`
	Unit         string    `json:"unit"`
	StartDate    time.Time `json:"startDate"`
	TargetDate   time.Time `json:"targetDate"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Progress returns goal completion as a clamped whole percentage.
func (g Goal) Progress() int { return stats.GoalProgress(g.CurrentValue, g.TargetValue) }

// GoalCreate creates a goal.
type GoalCreate struct {
	UserID       string     `json:"userId"`
	GoalType     string     `json:"goalType"`
	GoalName     string     `json:"goalName"`
	TargetValue  float64    `json:"targetValue"`
	CurrentValue float64    `json:"currentValue,omitempty"`
	Unit         string     `json:"unit,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	TargetDate   *time.Time `json:"targetDate,omitempty"`
	Status       string     `json:"status,omitempty"`
}

// GoalUpdate is a partial goal update.
type GoalUpdate struct {
	GoalType     *string    `json:"goalType,omitempty"`
	GoalName     *string    `json:"goalName,omitempty"`
	TargetValue  *float64   `json:"targetValue,omitempty"`
	CurrentValue *float64   `json:"currentValue,omitempty"`
	Unit         *string    `json:"unit,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	TargetDate   *time.Time `json:"targetDate,omitempty"`
	Status       *string    `json:"status,omitempty"`
}

// NutritionLog is a single food entry.
type NutritionLog struct {
	ID            string    `json:"nutritionLogId"`
	UserID        string    `json:"userId"`
	LogDate       time.Time `json:"logDate"`
	MealType      string    `json:"mealType"`
	FoodName      string    `json:"foodName"`
	ServingAmount float64   `json:"servingAmount"`
	ServingUnit   string    `json:"servingUnit"`
	CaloriesKcal  float64   `json:"caloriesKcal"`
	ProteinG      *float64  `json:"proteinG,omitempty"`
	CarbsG        *float64  `json:"carbsG,omitempty"`
	FatG          *float64  `json:"fatG,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NutritionLogCreate creates a food entry.
type NutritionLogCreate struct {
	UserID        string     `json:"userId"`
	LogDate       *time.Time `json:"logDate,omitempty"`
	MealType      string     `json:"mealType"`
	FoodName      string     `json:"foodName"`
	ServingAmount float64    `json:"servingAmount"`
	ServingUnit   string     `json:"servingUnit,omitempty"`
	CaloriesKcal  float64    `json:"caloriesKcal"`
	ProteinG      *float64   `json:"proteinG,omitempty"`
	CarbsG        *float64   `json:"carbsG,omitempty"`
	FatG          *float64   `json:"fatG,omitempty"`
}

// NutritionLogUpdate is a partial food entry update.
type NutritionLogUpdate struct {
	LogDate       *time.Time `json:"logDate,omitempty"`
	MealType      *string    `json:"mealType,omitempty"`
	FoodName      *string    `json:"foodName,omitempty"`
	ServingAmount *float64   `json:"servingAmount,omitempty"`
	ServingUnit   *string    `json:"servingUnit,omitempty"`
	CaloriesKcal  *float64   `json:"caloriesKcal,omitempty"`
	ProteinG      *float64   `json:"proteinG,omitempty"`
	CarbsG        *float64   `json:"carbsG,omitempty"`
	FatG          *float64   `json:"fatG,omitempty"`
}

// BodyMeasurement is a point-in-time measurement record.
type BodyMeasurement struct {
	ID             string    `json:"measurementId"`
	UserID         string    `json:"userId"`
	MeasuredAt     time.Time `json:"measuredAt"`
	WeightKg       *float64  `json:"weightKg,omitempty"`
	BodyFatPercent *float64  `json:"bodyFatPercent,omitempty"`
	WaistCm        *float64  `json:"waistCm,omitempty"`
	HipsCm         *float64  `json:"hipsCm,omitempty"`
	BicepCm        *float64  `json:"bicepCm,omitempty"`
	ChestCm        *float64  `json:"chestCm,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BodyMeasurementCreate creates a measurement record.
type BodyMeasurementCreate struct {
	UserID         string     `json:"userId"`
	MeasuredAt     *time.Time `json:"measuredAt,omitempty"`
	WeightKg       *float64   `json:"weightKg,omitempty"`
	BodyFatPercent *float64   `json:"bodyFatPercent,omitempty"`
	WaistCm        *float64   `json:"waistCm,omitempty"`
	HipsCm         *float64   `json:"hipsCm,omitempty"`
	BicepCm        *float64   `json:"bicepCm,omitempty"`
	ChestCm        *float64   `json:"chestCm,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

// BodyMeasurementUpdate is a partial measurement update.
type BodyMeasurementUpdate struct {
	MeasuredAt     *time.Time `json:"measuredAt,omitempty"`
	WeightKg       *float64   `json:"weightKg,omitempty"`
	BodyFatPercent *float64   `json:"bodyFatPercent,omitempty"`
	WaistCm        *float64   `json:"waistCm,omitempty"`
	HipsCm         *float64   `json:"hipsCm,omitempty"`
	BicepCm        *float64   `json:"bicepCm,omitempty"`
	ChestCm        *float64   `json:"chestCm,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

// WeightDelta returns latest minus previous weight across history,
// skipping records without a weight.
func WeightDelta(history []BodyMeasurement) (float64, bool) {
	var samples []stats.WeightSample
	for _, m := range history {
		if m.WeightKg != nil {
			samples = append(samples, stats.WeightSample{At: m.MeasuredAt, Kg: *m.WeightKg})
		}
	}
	return stats.WeightDelta(samples)
}

// WeeklyActivity buckets workout logs into the seven calendar days
// ending at ref, oldest first.
func WeeklyActivity(logs []WorkoutLog, ref time.Time) []stats.DayActivity {
	records := make([]stats.Activity, 0, len(logs))
	for _, l := range logs {
		rec := stats.Activity{Date: l.WorkoutDate}
		if l.DurationMinutes != nil {
			rec.Minutes = *l.DurationMinutes
		}
		if l.TotalCaloriesBurned != nil {
			rec.Calories = *l.TotalCaloriesBurned
		}
		records = append(records, rec)
	}
	return stats.WeeklyActivity(records, ref)
}

// DashboardSummary is the single-row per-user dashboard.
type DashboardSummary struct {
	UserID             string     `json:"userId"`
	Username           string     `json:"username"`
	FullName           string     `json:"fullName,omitempty"`
	CurrentWeightKg    *float64   `json:"currentWeightKg,omitempty"`
	TargetWeightKg     *float64   `json:"targetWeightKg,omitempty"`
	ActivityLevel      string     `json:"activityLevel,omitempty"`
	WorkoutsLast30Days int64      `json:"workoutsLast30Days"`
	CaloriesThisWeek   float64    `json:"caloriesThisWeek"`
	ActiveGoals        int64      `json:"activeGoals"`
	LatestWeightKg     *float64   `json:"latestWeightKg,omitempty"`
	LastMeasuredAt     *time.Time `json:"lastMeasuredAt,omitempty"`
}

// WeeklyTrend is one week of aggregated workout activity.
type WeeklyTrend struct {
	UserID        string    `json:"userId"`
	Year          int       `json:"year"`
	WeekNumber    int       `json:"weekNumber"`
	WeekStart     time.Time `json:"weekStart"`
	WorkoutCount  int64     `json:"workoutCount"`
	TotalMinutes  float64   `json:"totalMinutes"`
	TotalCalories float64   `json:"totalCalories"`
}
