package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/internal/validators"
	"github.com/MKhiriev/kitchenhub/models"
)

func newTestRecipeService(repo *fakeRecipeRepo, notifier *stubNotifier, now time.Time) RecipeService {
	svc := NewRecipeService(repo, validators.NewKitchenValidator(), notifier, logger.Nop()).(*recipeService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestRecipeService_Create_StampsIdentityAndNotifies(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	repo := &fakeRecipeRepo{}
	notifier := &stubNotifier{}
	svc := newTestRecipeService(repo, notifier, now)

	created, err := svc.Create(context.Background(), models.Recipe{Name: "Soup", Servings: 4})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, now, created.UpdatedAt)
	assert.Equal(t, 1, notifier.count())
}

func TestRecipeService_Create_InvalidSkipsSaveAndNotify(t *testing.T) {
	repo := &fakeRecipeRepo{}
	notifier := &stubNotifier{}
	svc := newTestRecipeService(repo, notifier, time.Now())

	_, err := svc.Create(context.Background(), models.Recipe{Servings: 4})

	assert.ErrorIs(t, err, validators.ErrEmptyRecipeName)
	assert.Equal(t, 0, notifier.count())
}

func TestRecipeService_Update_RefreshesTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	repo := &fakeRecipeRepo{}
	notifier := &stubNotifier{}
	svc := newTestRecipeService(repo, notifier, now)

	updated, err := svc.Update(context.Background(), models.Recipe{
		ID:        "recipe-1",
		Name:      "Soup v2",
		Servings:  2,
		CreatedAt: now.Add(-24 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, now, updated.UpdatedAt)
	assert.Equal(t, 1, notifier.count())
}

func TestRecipeService_Delete_Notifies(t *testing.T) {
	notifier := &stubNotifier{}
	svc := newTestRecipeService(&fakeRecipeRepo{}, notifier, time.Now())

	require.NoError(t, svc.Delete(context.Background(), "recipe-1"))
	assert.Equal(t, 1, notifier.count())
}
