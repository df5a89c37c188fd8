package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack-app/fittrack/internal/app/auth"
	"github.com/fittrack-app/fittrack/internal/logging"
)

func newAuthHandler(t *testing.T) (*auth.Manager, http.Handler, *string) {
	t.Helper()
	tokens := auth.NewManager("test-secret", "fittrack", "fittrack-clients")
	var seenUserID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = logging.GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return tokens, Auth(tokens, logging.NewNop())(inner), &seenUserID
}

func TestAuthSkipsOpenRoutes(t *testing.T) {
	_, handler, _ := newAuthHandler(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/User"},
		{http.MethodPost, "/api/User/login"},
		{http.MethodGet, "/healthz"},
		{http.MethodGet, "/metrics"},
	} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestAuthProtectsEverythingElse(t *testing.T) {
	_, handler, _ := newAuthHandler(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/User"},
		{http.MethodGet, "/api/User/some-id"},
		{http.MethodPut, "/api/User/some-id"},
		{http.MethodPost, "/api/WorkoutLog"},
		{http.MethodGet, "/api/Dashboard/user/some-id"},
	} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestAuthAcceptsValidToken(t *testing.T) {
	tokens, handler, seenUserID := newAuthHandler(t)

	token, _, err := tokens.Issue("user-1", "a@b.example", "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/WorkoutLog", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", *seenUserID, "user id threaded onto context")
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	_, handler, _ := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/WorkoutLog", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/WorkoutLog", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://app.example.com"})(inner)

	req := httptest.NewRequest(http.MethodOptions, "/api/User", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	// Unlisted origins get no allow headers.
	req = httptest.NewRequest(http.MethodGet, "/api/User", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
