// Package httpapi exposes the REST surface. Handlers decode, call one
// service method and encode; all policy lives in the services.
package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fittrack-app/fittrack/internal/app"
	"github.com/fittrack-app/fittrack/internal/app/apperr"
	"github.com/fittrack-app/fittrack/internal/app/services/exercises"
	"github.com/fittrack-app/fittrack/internal/app/services/goals"
	"github.com/fittrack-app/fittrack/internal/app/services/measurements"
	"github.com/fittrack-app/fittrack/internal/app/services/nutrition"
	"github.com/fittrack-app/fittrack/internal/app/services/profiles"
	"github.com/fittrack-app/fittrack/internal/app/services/users"
	"github.com/fittrack-app/fittrack/internal/app/services/workouts"
	"github.com/fittrack-app/fittrack/internal/logging"
)

// Handler serves the REST API.
type Handler struct {
	app *app.Application
	log *logging.Logger
}

// New builds a Handler.
func New(application *app.Application, log *logging.Logger) *Handler {
	if log == nil {
		log = logging.NewNop()
	}
	return &Handler{app: application, log: log}
}

// Register attaches every route to r. Middleware is layered by the
// caller.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/User", h.registerUser).Methods(http.MethodPost)
	api.HandleFunc("/User", h.listUsers).Methods(http.MethodGet)
	api.HandleFunc("/User/login", h.login).Methods(http.MethodPost)
	api.HandleFunc("/User/{id}", h.getUser).Methods(http.MethodGet)
	api.HandleFunc("/User/{id}", h.updateUser).Methods(http.MethodPut)
	api.HandleFunc("/User/{id}", h.deleteUser).Methods(http.MethodDelete)

	api.HandleFunc("/UserProfile", h.createProfile).Methods(http.MethodPost)
	api.HandleFunc("/UserProfile", h.listProfiles).Methods(http.MethodGet)
	api.HandleFunc("/UserProfile/user/{userId}", h.getProfileByUser).Methods(http.MethodGet)
	api.HandleFunc("/UserProfile/{id}", h.getProfile).Methods(http.MethodGet)
	api.HandleFunc("/UserProfile/{id}", h.updateProfile).Methods(http.MethodPut)
	api.HandleFunc("/UserProfile/{id}", h.deleteProfile).Methods(http.MethodDelete)

	api.HandleFunc("/ExerciseLibrary", h.createExercise).Methods(http.MethodPost)
	api.HandleFunc("/ExerciseLibrary", h.listExercises).Methods(http.MethodGet)
	api.HandleFunc("/ExerciseLibrary/{id}", h.getExercise).Methods(http.MethodGet)
	api.HandleFunc("/ExerciseLibrary/{id}", h.updateExercise).Methods(http.MethodPut)
	api.HandleFunc("/ExerciseLibrary/{id}", h.deleteExercise).Methods(http.MethodDelete)

	api.HandleFunc("/WorkoutLog", h.createWorkoutLog).Methods(http.MethodPost)
	api.HandleFunc("/WorkoutLog", h.listWorkoutLogs).Methods(http.MethodGet)
	api.HandleFunc("/WorkoutLog/user/{userId}", h.listWorkoutLogsByUser).Methods(http.MethodGet)
	api.HandleFunc("/WorkoutLog/{id}", h.getWorkoutLog).Methods(http.MethodGet)
	api.HandleFunc("/WorkoutLog/{id}", h.updateWorkoutLog).Methods(http.MethodPut)
	api.HandleFunc("/WorkoutLog/{id}", h.deleteWorkoutLog).Methods(http.MethodDelete)

	api.HandleFunc("/WorkoutExercise", h.createWorkoutEntry).Methods(http.MethodPost)
	api.HandleFunc("/WorkoutExercise", h.listWorkoutEntries).Methods(http.MethodGet)
	api.HandleFunc("/WorkoutExercise/log/{workoutLogId}", h.listWorkoutEntriesByLog).Methods(http.MethodGet)
	api.HandleFunc("/WorkoutExercise/{id}", h.getWorkoutEntry).Methods(http.MethodGet)
	api.HandleFunc("/WorkoutExercise/{id}", h.updateWorkoutEntry).Methods(http.MethodPut)
	api.HandleFunc("/WorkoutExercise/{id}", h.deleteWorkoutEntry).Methods(http.MethodDelete)

	api.HandleFunc("/Goal", h.createGoal).Methods(http.MethodPost)
	api.HandleFunc("/Goal", h.listGoals).Methods(http.MethodGet)
	api.HandleFunc("/Goal/user/{userId}", h.listGoalsByUser).Methods(http.MethodGet)
	api.HandleFunc("/Goal/{id}", h.getGoal).Methods(http.MethodGet)
	api.HandleFunc("/Goal/{id}", h.updateGoal).Methods(http.MethodPut)
	api.HandleFunc("/Goal/{id}", h.deleteGoal).Methods(http.MethodDelete)

	api.HandleFunc("/NutritionLog", h.createNutritionLog).Methods(http.MethodPost)
	api.HandleFunc("/NutritionLog", h.listNutritionLogs).Methods(http.MethodGet)
	api.HandleFunc("/NutritionLog/user/{userId}", h.listNutritionLogsByUser).Methods(http.MethodGet)
	api.HandleFunc("/NutritionLog/{id}", h.getNutritionLog).Methods(http.MethodGet)
	api.HandleFunc("/NutritionLog/{id}", h.updateNutritionLog).Methods(http.MethodPut)
	api.HandleFunc("/NutritionLog/{id}", h.deleteNutritionLog).Methods(http.MethodDelete)

	api.HandleFunc("/BodyMeasurement", h.createMeasurement).Methods(http.MethodPost)
	api.HandleFunc("/BodyMeasurement", h.listMeasurements).Methods(http.MethodGet)
	api.HandleFunc("/BodyMeasurement/user/{userId}", h.listMeasurementsByUser).Methods(http.MethodGet)
	api.HandleFunc("/BodyMeasurement/{id}", h.getMeasurement).Methods(http.MethodGet)
	api.HandleFunc("/BodyMeasurement/{id}", h.updateMeasurement).Methods(http.MethodPut)
	api.HandleFunc("/BodyMeasurement/{id}", h.deleteMeasurement).Methods(http.MethodDelete)

	api.HandleFunc("/Dashboard/user/{userId}", h.dashboardSummary).Methods(http.MethodGet)
	api.HandleFunc("/Dashboard/user/{userId}/weekly", h.dashboardWeekly).Methods(http.MethodGet)
}

// Router returns a fresh router with every route registered.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	h.Register(r)
	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- users ------------------------------------------------------------------

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var p users.RegisterParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	u, err := h.app.Users.Register(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/User/%s", u.ID))
	h.writeJSON(w, http.StatusCreated, u)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var p users.LoginParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	session, err := h.app.Users.Login(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, session)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.app.Users.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, u)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Users.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var p users.UpdateParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	if _, err := h.app.Users.Update(r.Context(), mux.Vars(r)["id"], p); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Users.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- profiles ---------------------------------------------------------------

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	var p profiles.CreateParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	created, err := h.app.Profiles.Create(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/UserProfile/%s", created.ID))
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.app.Profiles.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *Handler) getProfileByUser(w http.ResponseWriter, r *http.Request) {
	p, err := h.app.Profiles.GetByUser(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Profiles.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var p profiles.UpdateParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	if _, err := h.app.Profiles.Update(r.Context(), mux.Vars(r)["id"], p); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Profiles.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- exercise library -------------------------------------------------------

func (h *Handler) createExercise(w http.ResponseWriter, r *http.Request) {
	var p exercises.CreateParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	created, err := h.app.Exercises.Create(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/ExerciseLibrary/%s", created.ID))
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getExercise(w http.ResponseWriter, r *http.Request) {
	e, err := h.app.Exercises.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, e)
}

func (h *Handler) listExercises(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Exercises.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) updateExercise(w http.ResponseWriter, r *http.Request) {
	var p exercises.UpdateParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	if _, err := h.app.Exercises.Update(r.Context(), mux.Vars(r)["id"], p); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteExercise(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Exercises.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- workout logs -----------------------------------------------------------

func (h *Handler) createWorkoutLog(w http.ResponseWriter, r *http.Request) {
	var p workouts.CreateLogParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	created, err := h.app.Workouts.CreateLog(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/WorkoutLog/%s", created.ID))
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getWorkoutLog(w http.ResponseWriter, r *http.Request) {
	l, err := h.app.Workouts.GetLog(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, l)
}

func (h *Handler) listWorkoutLogs(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Workouts.ListLogs(r.Context(), "")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) listWorkoutLogsByUser(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Workouts.ListLogs(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) updateWorkoutLog(w http.ResponseWriter, r *http.Request) {
	var p workouts.UpdateLogParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	if _, err := h.app.Workouts.UpdateLog(r.Context(), mux.Vars(r)["id"], p); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteWorkoutLog(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Workouts.DeleteLog(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- workout exercises ------------------------------------------------------

func (h *Handler) createWorkoutEntry(w http.ResponseWriter, r *http.Request) {
	var p workouts.CreateEntryParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	created, err := h.app.Workouts.CreateEntry(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/WorkoutExercise/%s", created.ID))
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getWorkoutEntry(w http.ResponseWriter, r *http.Request) {
	e, err := h.app.Workouts.GetEntry(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, e)
}

func (h *Handler) listWorkoutEntries(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Workouts.ListEntries(r.Context(), "")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) listWorkoutEntriesByLog(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Workouts.ListEntries(r.Context(), mux.Vars(r)["workoutLogId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) updateWorkoutEntry(w http.ResponseWriter, r *http.Request) {
	var p workouts.UpdateEntryParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	if _, err := h.app.Workouts.UpdateEntry(r.Context(), mux.Vars(r)["id"], p); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteWorkoutEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Workouts.DeleteEntry(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- goals ------------------------------------------------------------------

func (h *Handler) createGoal(w http.ResponseWriter, r *http.Request) {
	var p goals.CreateParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	created, err := h.app.Goals.Create(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/Goal/%s", created.ID))
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getGoal(w http.ResponseWriter, r *http.Request) {
	g, err := h.app.Goals.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, g)
}

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Goals.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) listGoalsByUser(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Goals.ListByUser(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) updateGoal(w http.ResponseWriter, r *http.Request) {
	var p goals.UpdateParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	if _, err := h.app.Goals.Update(r.Context(), mux.Vars(r)["id"], p); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Goals.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- nutrition logs ---------------------------------------------------------

func (h *Handler) createNutritionLog(w http.ResponseWriter, r *http.Request) {
	var p nutrition.CreateParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	created, err := h.app.Nutrition.Create(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/NutritionLog/%s", created.ID))
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getNutritionLog(w http.ResponseWriter, r *http.Request) {
	l, err := h.app.Nutrition.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, l)
}

func (h *Handler) listNutritionLogs(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Nutrition.List(r.Context(), "")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) listNutritionLogsByUser(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Nutrition.List(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) updateNutritionLog(w http.ResponseWriter, r *http.Request) {
	var p nutrition.UpdateParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	if _, err := h.app.Nutrition.Update(r.Context(), mux.Vars(r)["id"], p); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteNutritionLog(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Nutrition.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- body measurements ------------------------------------------------------

func (h *Handler) createMeasurement(w http.ResponseWriter, r *http.Request) {
	var p measurements.CreateParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	created, err := h.app.Measurements.Create(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/BodyMeasurement/%s", created.ID))
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getMeasurement(w http.ResponseWriter, r *http.Request) {
	m, err := h.app.Measurements.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, m)
}

func (h *Handler) listMeasurements(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Measurements.List(r.Context(), "")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) listMeasurementsByUser(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Measurements.List(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) updateMeasurement(w http.ResponseWriter, r *http.Request) {
	var p measurements.UpdateParams
	if !h.decodeJSON(w, r, &p) {
		return
	}
	if _, err := h.app.Measurements.Update(r.Context(), mux.Vars(r)["id"], p); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteMeasurement(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Measurements.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- dashboards -------------------------------------------------------------

func (h *Handler) dashboardSummary(w http.ResponseWriter, r *http.Request) {
	d, err := h.app.Dashboards.Summary(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, d)
}

func (h *Handler) dashboardWeekly(w http.ResponseWriter, r *http.Request) {
	trend, err := h.app.Dashboards.WeeklyTrend(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, trend)
}

// --- helpers ----------------------------------------------------------------

func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		h.writeError(w, r, apperr.Invalidf("invalid request body: %v", err))
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.WithError(err).Error("encode response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.log.WithContext(r.Context()).WithError(err).Error("internal error")
		msg = "internal server error"
	}
	h.writeJSON(w, status, map[string]string{"error": msg})
}
