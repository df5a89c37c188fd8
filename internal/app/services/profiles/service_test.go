package profiles

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack-app/fittrack/internal/app/apperr"
	"github.com/fittrack-app/fittrack/internal/app/domain/user"
	"github.com/fittrack-app/fittrack/internal/app/storage/memory"
	"github.com/fittrack-app/fittrack/internal/logging"
)

func ptr[T any](v T) *T { return &v }

func newFixture(t *testing.T) (*Service, string) {
	t.Helper()
	store := memory.New()
	u, err := store.CreateUser(context.Background(), user.User{Username: "alice", Email: "a@b.example", IsActive: true})
	require.NoError(t, err)
	return New(store, store, logging.NewNop()), u.ID
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc, userID := newFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateParams{
		UserID:      userID,
		FirstName:   "Alice",
		DateOfBirth: ptr(time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultActivityLevel, p.ActivityLevel)
	assert.Equal(t, DefaultPreferredUnits, p.PreferredUnits)
}

func TestCreateValidation(t *testing.T) {
	svc, userID := newFixture(t)
	ctx := context.Background()
	dob := ptr(time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC))

	_, err := svc.Create(ctx, CreateParams{FirstName: "Alice", DateOfBirth: dob})
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err))

	_, err = svc.Create(ctx, CreateParams{UserID: userID, DateOfBirth: dob})
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err))

	_, err = svc.Create(ctx, CreateParams{UserID: userID, FirstName: "Alice"})
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err))

	_, err = svc.Create(ctx, CreateParams{UserID: "ghost", FirstName: "Alice", DateOfBirth: dob})
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err), "dangling user reference")
}

func TestCreateSecondProfileConflicts(t *testing.T) {
	svc, userID := newFixture(t)
	ctx := context.Background()
	dob := ptr(time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC))

	_, err := svc.Create(ctx, CreateParams{UserID: userID, FirstName: "Alice", DateOfBirth: dob})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateParams{UserID: userID, FirstName: "Alice", DateOfBirth: dob})
	assert.Equal(t, http.StatusConflict, apperr.HTTPStatus(err))
}

func TestUpdateFreeTextFields(t *testing.T) {
	svc, userID := newFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateParams{
		UserID:        userID,
		FirstName:     "Alice",
		DateOfBirth:   ptr(time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)),
		Gender:        "Female",
		ProfilePicURL: "https://example.com/a.png",
	})
	require.NoError(t, err)

	// Gender and pic URL accept explicit empties; names ignore blanks.
	updated, err := svc.Update(ctx, p.ID, UpdateParams{
		Gender:        ptr(""),
		ProfilePicURL: ptr(""),
		FirstName:     ptr("  "),
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Gender)
	assert.Empty(t, updated.ProfilePicURL)
	assert.Equal(t, "Alice", updated.FirstName)
}

func TestUpdateNumericPointers(t *testing.T) {
	svc, userID := newFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateParams{
		UserID:      userID,
		FirstName:   "Alice",
		DateOfBirth: ptr(time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)),
		HeightCm:    ptr(170.0),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, p.ID, UpdateParams{CurrentWeightKg: ptr(68.5)})
	require.NoError(t, err)
	require.NotNil(t, updated.HeightCm)
	assert.InDelta(t, 170.0, *updated.HeightCm, 1e-9, "omitted field unchanged")
	require.NotNil(t, updated.CurrentWeightKg)
	assert.InDelta(t, 68.5, *updated.CurrentWeightKg, 1e-9)
}

func TestGetByUser(t *testing.T) {
	svc, userID := newFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateParams{
		UserID:      userID,
		FirstName:   "Alice",
		DateOfBirth: ptr(time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	got, err := svc.GetByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByUser(ctx, "ghost")
	assert.Equal(t, http.StatusNotFound, apperr.HTTPStatus(err))
}
