package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kitchenhub/models"
)

func validRecipe() models.Recipe {
	return models.Recipe{
		ID:       "recipe-1",
		Name:     "Carrot soup",
		Servings: 4,
		Ingredients: []models.Ingredient{
			{Name: "carrot", Quantity: 500, Unit: "g"},
		},
	}
}

func TestKitchenValidator_Recipe(t *testing.T) {
	v := NewKitchenValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Recipe)
		wantErr error
	}{
		{name: "valid recipe", mutate: func(r *models.Recipe) {}, wantErr: nil},
		{name: "empty name", mutate: func(r *models.Recipe) { r.Name = "" }, wantErr: ErrEmptyRecipeName},
		{name: "zero servings", mutate: func(r *models.Recipe) { r.Servings = 0 }, wantErr: ErrInvalidServings},
		{name: "negative prep time", mutate: func(r *models.Recipe) { r.PrepMinutes = -5 }, wantErr: ErrNegativeMinutes},
		{name: "unnamed ingredient", mutate: func(r *models.Recipe) { r.Ingredients[0].Name = "" }, wantErr: ErrEmptyIngredient},
		{name: "negative quantity", mutate: func(r *models.Recipe) { r.Ingredients[0].Quantity = -1 }, wantErr: ErrNegativeQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe := validRecipe()
			tt.mutate(&recipe)

			err := v.Validate(ctx, recipe)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestKitchenValidator_Recipe_FieldScoping(t *testing.T) {
	v := NewKitchenValidator()

	recipe := validRecipe()
	recipe.Name = ""

	// проверяем только servings — пустое имя не должно мешать
	err := v.Validate(context.Background(), recipe, FieldServings)
	assert.NoError(t, err)

	err = v.Validate(context.Background(), recipe, FieldName)
	assert.ErrorIs(t, err, ErrEmptyRecipeName)
}

func TestKitchenValidator_MealPlan(t *testing.T) {
	v := NewKitchenValidator()
	ctx := context.Background()

	valid := models.MealPlan{
		ID:       "plan-1",
		Date:     "2026-08-31",
		Slot:     models.SlotDinner,
		RecipeID: "recipe-1",
	}
	require.NoError(t, v.Validate(ctx, valid))

	tests := []struct {
		name    string
		mutate  func(*models.MealPlan)
		wantErr error
	}{
		{name: "bad date format", mutate: func(p *models.MealPlan) { p.Date = "31.08.2026" }, wantErr: ErrInvalidDate},
		{name: "unknown slot", mutate: func(p *models.MealPlan) { p.Slot = "brunch" }, wantErr: ErrInvalidSlot},
		{name: "missing recipe", mutate: func(p *models.MealPlan) { p.RecipeID = "" }, wantErr: ErrEmptyRecipeID},
		{name: "negative servings", mutate: func(p *models.MealPlan) { p.Servings = -1 }, wantErr: ErrInvalidServings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := valid
			tt.mutate(&plan)
			assert.ErrorIs(t, v.Validate(ctx, plan), tt.wantErr)
		})
	}
}

func TestKitchenValidator_ShoppingItem(t *testing.T) {
	v := NewKitchenValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ShoppingItem{ID: "item-1", Name: "carrot", Quantity: 2}))
	assert.ErrorIs(t, v.Validate(ctx, models.ShoppingItem{ID: "item-1"}), ErrEmptyItemName)
	assert.ErrorIs(t, v.Validate(ctx, models.ShoppingItem{ID: "item-1", Name: "carrot", Quantity: -2}), ErrNegativeQuantity)
}

func TestKitchenValidator_Settings(t *testing.T) {
	v := NewKitchenValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DefaultSettings()))

	bad := models.DefaultSettings()
	bad.ShoppingDays = 0
	assert.ErrorIs(t, v.Validate(ctx, bad), ErrInvalidShopWindow)

	bad = models.DefaultSettings()
	bad.DefaultServings = -1
	assert.ErrorIs(t, v.Validate(ctx, bad), ErrInvalidDefServings)
}

func TestKitchenValidator_UnsupportedType(t *testing.T) {
	v := NewKitchenValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestKitchenValidator_PointerValues(t *testing.T) {
	v := NewKitchenValidator()
	recipe := validRecipe()
	assert.NoError(t, v.Validate(context.Background(), &recipe))
}

func TestKitchenValidator_UnknownField(t *testing.T) {
	v := NewKitchenValidator()
	err := v.Validate(context.Background(), validRecipe(), "nonexistent")
	assert.ErrorIs(t, err, ErrUnknownField)
}
