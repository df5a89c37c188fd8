package exercises

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack-app/fittrack/internal/app/apperr"
	"github.com/fittrack-app/fittrack/internal/app/storage/memory"
	"github.com/fittrack-app/fittrack/internal/logging"
)

func ptr[T any](v T) *T { return &v }

func newService() *Service {
	return New(memory.New(), logging.NewNop())
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	e, err := svc.Create(ctx, CreateParams{Name: "Squat", Category: "Strength", MetValue: 5})
	require.NoError(t, err)
	assert.Equal(t, DefaultDifficulty, e.DifficultyLevel)
	assert.True(t, e.IsActive)

	inactive, err := svc.Create(ctx, CreateParams{Name: "Plank", Category: "Core", IsActive: ptr(false)})
	require.NoError(t, err)
	assert.False(t, inactive.IsActive)
}

func TestCreateValidation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateParams{Category: "Strength"})
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err))

	_, err = svc.Create(ctx, CreateParams{Name: "Squat"})
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err))

	_, err = svc.Create(ctx, CreateParams{Name: "Squat", Category: "Strength", MetValue: -1})
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err))
}

func TestCreateDuplicateNameConflicts(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateParams{Name: "Squat", Category: "Strength"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateParams{Name: "squat", Category: "Strength"})
	assert.Equal(t, http.StatusConflict, apperr.HTTPStatus(err), "case-insensitive")
}

func TestUpdatePartial(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	e, err := svc.Create(ctx, CreateParams{Name: "Squat", Category: "Strength", Instructions: "keep back straight"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, e.ID, UpdateParams{MetValue: ptr(6.5), Instructions: ptr("")})
	require.NoError(t, err)
	assert.InDelta(t, 6.5, updated.MetValue, 1e-9)
	assert.Empty(t, updated.Instructions, "instructions accepts explicit empty")
	assert.Equal(t, "Squat", updated.Name)

	// Re-submitting the current name is not a conflict.
	_, err = svc.Update(ctx, e.ID, UpdateParams{Name: ptr("Squat")})
	assert.NoError(t, err)
}

func TestUpdateRenameConflicts(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateParams{Name: "Squat", Category: "Strength"})
	require.NoError(t, err)
	e, err := svc.Create(ctx, CreateParams{Name: "Lunge", Category: "Strength"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, e.ID, UpdateParams{Name: ptr("Squat")})
	assert.Equal(t, http.StatusConflict, apperr.HTTPStatus(err))
}

func TestNotFound(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	assert.Equal(t, http.StatusNotFound, apperr.HTTPStatus(err))

	_, err = svc.Update(ctx, "missing", UpdateParams{})
	assert.Equal(t, http.StatusNotFound, apperr.HTTPStatus(err))

	err = svc.Delete(ctx, "missing")
	assert.Equal(t, http.StatusNotFound, apperr.HTTPStatus(err))
}
