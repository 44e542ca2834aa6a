package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/internal/store"
	"github.com/MKhiriev/kitchenhub/models"
)

// fakeRecipeRepo реализует store.RecipeRepository поверх среза.
type fakeRecipeRepo struct {
	recipes  []models.Recipe
	replaced []models.Recipe
	replaces int
}

func (f *fakeRecipeRepo) Save(context.Context, models.Recipe) error   { return nil }
func (f *fakeRecipeRepo) Update(context.Context, models.Recipe) error { return nil }
func (f *fakeRecipeRepo) Delete(context.Context, string) error        { return nil }
func (f *fakeRecipeRepo) Get(_ context.Context, id string) (models.Recipe, error) {
	for _, r := range f.recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Recipe{}, store.ErrRecipeNotFound
}
func (f *fakeRecipeRepo) GetAll(context.Context) ([]models.Recipe, error) {
	out := make([]models.Recipe, len(f.recipes))
	copy(out, f.recipes)
	return out, nil
}
func (f *fakeRecipeRepo) ReplaceAll(_ context.Context, recipes []models.Recipe) error {
	f.replaced = recipes
	f.replaces++
	return nil
}

type fakeMealPlanRepo struct {
	plans    []models.MealPlan
	replaced []models.MealPlan
}

func (f *fakeMealPlanRepo) Save(context.Context, models.MealPlan) error { return nil }
func (f *fakeMealPlanRepo) Delete(context.Context, string) error        { return nil }
func (f *fakeMealPlanRepo) Get(context.Context, string) (models.MealPlan, error) {
	return models.MealPlan{}, store.ErrMealPlanNotFound
}
func (f *fakeMealPlanRepo) GetAll(context.Context) ([]models.MealPlan, error) {
	return f.plans, nil
}
func (f *fakeMealPlanRepo) GetRange(context.Context, string, string) ([]models.MealPlan, error) {
	return f.plans, nil
}
func (f *fakeMealPlanRepo) ReplaceAll(_ context.Context, plans []models.MealPlan) error {
	f.replaced = plans
	return nil
}

type fakeShoppingRepo struct {
	items    []models.ShoppingItem
	replaced []models.ShoppingItem
}

func (f *fakeShoppingRepo) Save(context.Context, models.ShoppingItem) error   { return nil }
func (f *fakeShoppingRepo) Update(context.Context, models.ShoppingItem) error { return nil }
func (f *fakeShoppingRepo) Delete(context.Context, string) error              { return nil }
func (f *fakeShoppingRepo) GetAll(context.Context) ([]models.ShoppingItem, error) {
	return f.items, nil
}
func (f *fakeShoppingRepo) GetFiltered(context.Context, store.ShoppingFilter) ([]models.ShoppingItem, error) {
	return f.items, nil
}
func (f *fakeShoppingRepo) SetChecked(context.Context, string, bool) error { return nil }
func (f *fakeShoppingRepo) ClearChecked(context.Context) error             { return nil }
func (f *fakeShoppingRepo) ReplaceAll(_ context.Context, items []models.ShoppingItem) error {
	f.replaced = items
	return nil
}

func newSnapshotFixture(recipes *fakeRecipeRepo, plans *fakeMealPlanRepo, items *fakeShoppingRepo) SnapshotService {
	return NewSnapshotService(&store.ClientStorages{
		RecipeRepository:   recipes,
		MealPlanRepository: plans,
		ShoppingRepository: items,
		SettingsRepository: newMemSettingsRepo(models.DefaultSettings()),
	}, logger.Nop())
}

// ── Export ───────────────────────────────────────────────────────────────────

func TestSnapshotService_Export_StripsPhotoID(t *testing.T) {
	photoID := "photo-1"
	repo := &fakeRecipeRepo{recipes: []models.Recipe{
		{ID: "r1", Name: "Soup", Servings: 4, PhotoID: &photoID},
	}}
	svc := newSnapshotFixture(repo, &fakeMealPlanRepo{}, &fakeShoppingRepo{})

	payload, err := svc.Export(context.Background(), models.DatasetRecipes)

	require.NoError(t, err)
	assert.NotContains(t, string(payload), "photoId")

	var exported []models.Recipe
	require.NoError(t, json.Unmarshal(payload, &exported))
	require.Len(t, exported, 1)
	assert.Nil(t, exported[0].PhotoID)
}

func TestSnapshotService_Export_EmptyDatasetIsEmptyArray(t *testing.T) {
	svc := newSnapshotFixture(&fakeRecipeRepo{}, &fakeMealPlanRepo{}, &fakeShoppingRepo{})

	for _, dataset := range []models.Dataset{models.DatasetRecipes, models.DatasetMealPlans, models.DatasetShopping} {
		payload, err := svc.Export(context.Background(), dataset)
		require.NoError(t, err)
		// пустой набор сериализуется как [], не null
		assert.JSONEq(t, `[]`, string(payload))
	}
}

func TestSnapshotService_Export_UnknownDataset(t *testing.T) {
	svc := newSnapshotFixture(&fakeRecipeRepo{}, &fakeMealPlanRepo{}, &fakeShoppingRepo{})

	_, err := svc.Export(context.Background(), models.Dataset("bogus"))

	assert.Error(t, err)
}

func TestSnapshotService_ExportImportRoundTrip(t *testing.T) {
	photoID := "photo-1"
	original := []models.Recipe{
		{
			ID:       "r1",
			Name:     "Суп",
			Servings: 4,
			Ingredients: []models.Ingredient{
				{Name: "carrot", Quantity: 200, Unit: "g", Category: "produce"},
			},
			Steps:     []string{"chop", "boil"},
			Tags:      models.RecipeTags{MealType: []string{"dinner"}},
			PhotoID:   &photoID,
			CreatedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:        "r2",
			Name:      "Салат",
			Servings:  2,
			CreatedAt: time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC),
		},
	}
	repo := &fakeRecipeRepo{recipes: original}
	svc := newSnapshotFixture(repo, &fakeMealPlanRepo{}, &fakeShoppingRepo{})

	payload, err := svc.Export(context.Background(), models.DatasetRecipes)
	require.NoError(t, err)
	require.NoError(t, svc.Import(context.Background(), models.DatasetRecipes, payload))

	// импорт собственной выгрузки восстанавливает всё, кроме ссылки на фото
	want := make([]models.Recipe, len(original))
	copy(want, original)
	want[0].PhotoID = nil
	assert.Equal(t, want, repo.replaced)
}

// ── Import ───────────────────────────────────────────────────────────────────

func TestSnapshotService_Import_ReplacesDataset(t *testing.T) {
	recipes := &fakeRecipeRepo{recipes: []models.Recipe{{ID: "local-1", Name: "Old"}}}
	svc := newSnapshotFixture(recipes, &fakeMealPlanRepo{}, &fakeShoppingRepo{})

	err := svc.Import(context.Background(), models.DatasetRecipes,
		[]byte(`[{"id":"remote-1","name":"New","servings":2}]`))

	require.NoError(t, err)
	require.Len(t, recipes.replaced, 1)
	assert.Equal(t, "remote-1", recipes.replaced[0].ID)
}

func TestSnapshotService_Import_BadPayloadLeavesDataUntouched(t *testing.T) {
	recipes := &fakeRecipeRepo{}
	svc := newSnapshotFixture(recipes, &fakeMealPlanRepo{}, &fakeShoppingRepo{})

	err := svc.Import(context.Background(), models.DatasetRecipes, []byte("corrupt"))

	assert.ErrorIs(t, err, ErrSnapshotDecodeFailed)
	assert.Equal(t, 0, recipes.replaces)
}

func TestSnapshotService_Import_AllDatasets(t *testing.T) {
	recipes := &fakeRecipeRepo{}
	plans := &fakeMealPlanRepo{}
	items := &fakeShoppingRepo{}
	svc := newSnapshotFixture(recipes, plans, items)

	require.NoError(t, svc.Import(context.Background(), models.DatasetMealPlans,
		[]byte(`[{"id":"p1","date":"2026-08-31","slot":"dinner","recipeId":"r1"}]`)))
	require.NoError(t, svc.Import(context.Background(), models.DatasetShopping,
		[]byte(`[{"id":"i1","name":"carrot"}]`)))

	require.Len(t, plans.replaced, 1)
	assert.Equal(t, models.SlotDinner, plans.replaced[0].Slot)
	require.Len(t, items.replaced, 1)
	assert.Equal(t, "carrot", items.replaced[0].Name)
}
