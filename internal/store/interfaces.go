package store

import (
	"context"

	"github.com/MKhiriev/kitchenhub/models"
)

// RecipeRepository is the SQLite-backed store of user-authored recipes.
type RecipeRepository interface {
	// Save inserts a new recipe.
	Save(ctx context.Context, recipe models.Recipe) error
	// Update overwrites every mutable column of an existing recipe.
	// Returns [ErrRecipeNotFound] if no row matches the ID.
	Update(ctx context.Context, recipe models.Recipe) error
	// Delete removes a recipe by ID.
	Delete(ctx context.Context, id string) error
	// Get returns a single recipe by ID, or [ErrRecipeNotFound].
	Get(ctx context.Context, id string) (models.Recipe, error)
	// GetAll returns all recipes ordered by name.
	GetAll(ctx context.Context) ([]models.Recipe, error)
	// ReplaceAll atomically swaps the whole table contents for the given
	// snapshot. Used when importing a downloaded dataset.
	ReplaceAll(ctx context.Context, recipes []models.Recipe) error
}

// MealPlanRepository stores recipe-to-day assignments. At most one entry
// exists per (date, slot) pair; Save upserts on that pair.
type MealPlanRepository interface {
	Save(ctx context.Context, plan models.MealPlan) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.MealPlan, error)
	GetAll(ctx context.Context) ([]models.MealPlan, error)
	// GetRange returns entries whose date falls within [from, to],
	// both in "2006-01-02" format, ordered by date then slot.
	GetRange(ctx context.Context, from, to string) ([]models.MealPlan, error)
	ReplaceAll(ctx context.Context, plans []models.MealPlan) error
}

// ShoppingFilter narrows shopping-list queries.
type ShoppingFilter struct {
	// Categories keeps only items in the given aisle groupings. Empty
	// means all categories.
	Categories []string
	// OnlyUnchecked drops items already picked up.
	OnlyUnchecked bool
}

// ShoppingRepository stores the shopping list.
type ShoppingRepository interface {
	Save(ctx context.Context, item models.ShoppingItem) error
	Update(ctx context.Context, item models.ShoppingItem) error
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.ShoppingItem, error)
	// GetFiltered returns items matching the filter, ordered by category
	// then name.
	GetFiltered(ctx context.Context, filter ShoppingFilter) ([]models.ShoppingItem, error)
	// SetChecked flips the picked-up mark of a single item.
	SetChecked(ctx context.Context, id string, checked bool) error
	// ClearChecked removes every checked item from the list.
	ClearChecked(ctx context.Context) error
	ReplaceAll(ctx context.Context, items []models.ShoppingItem) error
}

// SettingsRepository persists installation settings as a single record.
type SettingsRepository interface {
	// Load returns the stored settings, or [models.DefaultSettings] when
	// nothing was saved yet.
	Load(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error
}
