// Package client is the typed Go client for the FitTrack REST API.
// One method per endpoint; no retries, no caching.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to one API server. Safe for concurrent use once the
// session is established.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	session Session
}

// Session is the authenticated state returned by Login.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires"`
}

// Authenticated reports whether the session holds a token.
func (s Session) Authenticated() bool { return s.Token != "" }

// Expired reports whether an authenticated session is past its expiry.
func (s Session) Expired(now time.Time) bool {
	return s.Authenticated() && now.After(s.ExpiresAt)
}

// APIError is a non-2xx response decoded from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// New creates a Client for the given base URL, e.g.
// "http://localhost:8080".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	c := &Client{baseURL: u, http: &http.Client{Timeout: 30 * time.Second}}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithSession resumes a previously saved session.
func WithSession(s Session) Option {
	return func(c *Client) { c.session = s }
}

// Session returns the current session state.
func (c *Client) Session() Session { return c.session }

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		buf = bytes.NewReader(data)
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, u.String(), buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload struct {
			Error string `json:"error"`
		}
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
			msg = payload.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// --- auth -------------------------------------------------------------------

// Register creates an account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (User, error) {
	var u User
	err := c.do(ctx, http.MethodPost, "/api/User", req, &u)
	return u, err
}

// Login authenticates and stores the session for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var s Session
	err := c.do(ctx, http.MethodPost, "/api/User/login", map[string]string{
		"email":    email,
		"password": password,
	}, &s)
	if err != nil {
		return Session{}, err
	}
	c.session = s
	return s, nil
}

// Logout drops the stored session. Purely client side; tokens are not
// revocable server side.
func (c *Client) Logout() { c.session = Session{} }

// --- users ------------------------------------------------------------------

func (c *Client) GetUser(ctx context.Context, id string) (User, error) {
	var u User
	err := c.do(ctx, http.MethodGet, "/api/User/"+url.PathEscape(id), nil, &u)
	return u, err
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var list []User
	err := c.do(ctx, http.MethodGet, "/api/User", nil, &list)
	return list, err
}

// UpdateUser applies a partial update. The server responds 204; call
// GetUser afterwards if the updated row is needed.
func (c *Client) UpdateUser(ctx context.Context, id string, req UserUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/User/"+url.PathEscape(id), req, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/User/"+url.PathEscape(id), nil, nil)
}

// --- profiles ---------------------------------------------------------------

func (c *Client) CreateProfile(ctx context.Context, req ProfileCreate) (Profile, error) {
	var p Profile
	err := c.do(ctx, http.MethodPost, "/api/UserProfile", req, &p)
	return p, err
}

func (c *Client) GetProfile(ctx context.Context, id string) (Profile, error) {
	var p Profile
	err := c.do(ctx, http.MethodGet, "/api/UserProfile/"+url.PathEscape(id), nil, &p)
	return p, err
}

func (c *Client) GetProfileByUser(ctx context.Context, userID string) (Profile, error) {
	var p Profile
	err := c.do(ctx, http.MethodGet, "/api/UserProfile/user/"+url.PathEscape(userID), nil, &p)
	return p, err
}

func (c *Client) ListProfiles(ctx context.Context) ([]Profile, error) {
	var list []Profile
	err := c.do(ctx, http.MethodGet, "/api/UserProfile", nil, &list)
	return list, err
}

func (c *Client) UpdateProfile(ctx context.Context, id string, req ProfileUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/UserProfile/"+url.PathEscape(id), req, nil)
}

func (c *Client) DeleteProfile(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/UserProfile/"+url.PathEscape(id), nil, nil)
}

// --- exercise library -------------------------------------------------------

func (c *Client) CreateExercise(ctx context.Context, req ExerciseCreate) (Exercise, error) {
	var e Exercise
	err := c.do(ctx, http.MethodPost, "/api/ExerciseLibrary", req, &e)
	return e, err
}

func (c *Client) GetExercise(ctx context.Context, id string) (Exercise, error) {
	var e Exercise
	err := c.do(ctx, http.MethodGet, "/api/ExerciseLibrary/"+url.PathEscape(id), nil, &e)
	return e, err
}

func (c *Client) ListExercises(ctx context.Context) ([]Exercise, error) {
	var list []Exercise
	err := c.do(ctx, http.MethodGet, "/api/ExerciseLibrary", nil, &list)
	return list, err
}

func (c *Client) UpdateExercise(ctx context.Context, id string, req ExerciseUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/ExerciseLibrary/"+url.PathEscape(id), req, nil)
}

func (c *Client) DeleteExercise(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/ExerciseLibrary/"+url.PathEscape(id), nil, nil)
}

// --- workout logs -----------------------------------------------------------

func (c *Client) CreateWorkoutLog(ctx context.Context, req WorkoutLogCreate) (WorkoutLog, error) {
	var l WorkoutLog
	err := c.do(ctx, http.MethodPost, "/api/WorkoutLog", req, &l)
	return l, err
}

func (c *Client) GetWorkoutLog(ctx context.Context, id string) (WorkoutLog, error) {
	var l WorkoutLog
	err := c.do(ctx, http.MethodGet, "/api/WorkoutLog/"+url.PathEscape(id), nil, &l)
	return l, err
}

func (c *Client) ListWorkoutLogs(ctx context.Context) ([]WorkoutLog, error) {
	var list []WorkoutLog
	err := c.do(ctx, http.MethodGet, "/api/WorkoutLog", nil, &list)
	return list, err
}

func (c *Client) ListWorkoutLogsByUser(ctx context.Context, userID string) ([]WorkoutLog, error) {
	var list []WorkoutLog
	err := c.do(ctx, http.MethodGet, "/api/WorkoutLog/user/"+url.PathEscape(userID), nil, &list)
	return list, err
}

func (c *Client) UpdateWorkoutLog(ctx context.Context, id string, req WorkoutLogUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/WorkoutLog/"+url.PathEscape(id), req, nil)
}

func (c *Client) DeleteWorkoutLog(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/WorkoutLog/"+url.PathEscape(id), nil, nil)
}

// --- workout exercises ------------------------------------------------------

func (c *Client) CreateWorkoutExercise(ctx context.Context, req WorkoutExerciseCreate) (WorkoutExercise, error) {
	var e WorkoutExercise
	err := c.do(ctx, http.MethodPost, "/api/WorkoutExercise", req, &e)
	return e, err
}

func (c *Client) GetWorkoutExercise(ctx context.Context, id string) (WorkoutExercise, error) {
	var e WorkoutExercise
	err := c.do(ctx, http.MethodGet, "/api/WorkoutExercise/"+url.PathEscape(id), nil, &e)
	return e, err
}

func (c *Client) ListWorkoutExercises(ctx context.Context) ([]WorkoutExercise, error) {
	var list []WorkoutExercise
	err := c.do(ctx, http.MethodGet, "/api/WorkoutExercise", nil, &list)
	return list, err
}

func (c *Client) ListWorkoutExercisesByLog(ctx context.Context, workoutLogID string) ([]WorkoutExercise, error) {
	var list []WorkoutExercise
	err := c.do(ctx, http.MethodGet, "/api/WorkoutExercise/log/"+url.PathEscape(workoutLogID), nil, &list)
	return list, err
}

func (c *Client) UpdateWorkoutExercise(ctx context.Context, id string, req WorkoutExerciseUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/WorkoutExercise/"+url.PathEscape(id), req, nil)
}

func (c *Client) DeleteWorkoutExercise(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/WorkoutExercise/"+url.PathEscape(id), nil, nil)
}

// --- goals ------------------------------------------------------------------

func (c *Client) CreateGoal(ctx context.Context, req GoalCreate) (Goal, error) {
	var g Goal
	err := c.do(ctx, http.MethodPost, "/api/Goal", req, &g)
	return g, err
}

func (c *Client) GetGoal(ctx context.Context, id string) (Goal, error) {
	var g Goal
	err := c.do(ctx, http.MethodGet, "/api/Goal/"+url.PathEscape(id), nil, &g)
	return g, err
}

func (c *Client) ListGoals(ctx context.Context) ([]Goal, error) {
	var list []Goal
	err := c.do(ctx, http.MethodGet, "/api/Goal", nil, &list)
	return list, err
}

func (c *Client) ListGoalsByUser(ctx context.Context, userID string) ([]Goal, error) {
	var list []Goal
	err := c.do(ctx, http.MethodGet, "/api/Goal/user/"+url.PathEscape(userID), nil, &list)
	return list, err
}

func (c *Client) UpdateGoal(ctx context.Context, id string, req GoalUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/Goal/"+url.PathEscape(id), req, nil)
}

func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/Goal/"+url.PathEscape(id), nil, nil)
}

// --- nutrition logs ---------------------------------------------------------

func (c *Client) CreateNutritionLog(ctx context.Context, req NutritionLogCreate) (NutritionLog, error) {
	var l NutritionLog
	err := c.do(ctx, http.MethodPost, "/api/NutritionLog", req, &l)
	return l, err
}

func (c *Client) GetNutritionLog(ctx context.Context, id string) (NutritionLog, error) {
	var l NutritionLog
	err := c.do(ctx, http.MethodGet, "/api/NutritionLog/"+url.PathEscape(id), nil, &l)
	return l, err
}

func (c *Client) ListNutritionLogs(ctx context.Context) ([]NutritionLog, error) {
	var list []NutritionLog
	err := c.do(ctx, http.MethodGet, "/api/NutritionLog", nil, &list)
	return list, err
}

func (c *Client) ListNutritionLogsByUser(ctx context.Context, userID string) ([]NutritionLog, error) {
	var list []NutritionLog
	err := c.do(ctx, http.MethodGet, "/api/NutritionLog/user/"+url.PathEscape(userID), nil, &list)
	return list, err
}

func (c *Client) UpdateNutritionLog(ctx context.Context, id string, req NutritionLogUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/NutritionLog/"+url.PathEscape(id), req, nil)
}

func (c *Client) DeleteNutritionLog(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/NutritionLog/"+url.PathEscape(id), nil, nil)
}

// --- body measurements ------------------------------------------------------

func (c *Client) CreateBodyMeasurement(ctx context.Context, req BodyMeasurementCreate) (BodyMeasurement, error) {
	var m BodyMeasurement
	err := c.do(ctx, http.MethodPost, "/api/BodyMeasurement", req, &m)
	return m, err
}

func (c *Client) GetBodyMeasurement(ctx context.Context, id string) (BodyMeasurement, error) {
	var m BodyMeasurement
	err := c.do(ctx, http.MethodGet, "/api/BodyMeasurement/"+url.PathEscape(id), nil, &m)
	return m, err
}

func (c *Client) ListBodyMeasurements(ctx context.Context) ([]BodyMeasurement, error) {
	var list []BodyMeasurement
	err := c.do(ctx, http.MethodGet, "/api/BodyMeasurement", nil, &list)
	return list, err
}

func (c *Client) ListBodyMeasurementsByUser(ctx context.Context, userID string) ([]BodyMeasurement, error) {
	var list []BodyMeasurement
	err := c.do(ctx, http.MethodGet, "/api/BodyMeasurement/user/"+url.PathEscape(userID), nil, &list)
	return list, err
}

func (c *Client) UpdateBodyMeasurement(ctx context.Context, id string, req BodyMeasurementUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/BodyMeasurement/"+url.PathEscape(id), req, nil)
}

func (c *Client) DeleteBodyMeasurement(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/BodyMeasurement/"+url.PathEscape(id), nil, nil)
}

// --- dashboards -------------------------------------------------------------

func (c *Client) DashboardSummary(ctx context.Context, userID string) (DashboardSummary, error) {
	var d DashboardSummary
	err := c.do(ctx, http.MethodGet, "/api/Dashboard/user/"+url.PathEscape(userID), nil, &d)
	return d, err
}

func (c *Client) WeeklyCalorieTrend(ctx context.Context, userID string) ([]WeeklyTrend, error) {
	var list []WeeklyTrend
	err := c.do(ctx, http.MethodGet, "/api/Dashboard/user/"+url.PathEscape(userID)+"/weekly", nil, &list)
	return list, err
}
