package models

import "time"

// Recipe represents a single recipe record.
// It is the primary persistence model for user-authored recipes and is
// synchronised to the remote folder as part of the recipes snapshot.
type Recipe struct {
	// ID is the client-generated UUID identifying the recipe across devices.
	ID string `json:"id"`

	// Name is the human-readable recipe title.
	Name string `json:"name"`

	// Description is an optional free-text summary.
	Description string `json:"description,omitempty"`

	// Servings is the number of portions the ingredient amounts yield.
	Servings int `json:"servings"`

	// PrepMinutes is the estimated preparation time in minutes.
	PrepMinutes int `json:"prepMinutes,omitempty"`

	// CookMinutes is the estimated cooking time in minutes.
	CookMinutes int `json:"cookMinutes,omitempty"`

	// Ingredients lists the ingredient lines in display order.
	// Stored in the local DB as a JSON-encoded string.
	Ingredients []Ingredient `json:"ingredients"`

	// Steps lists the preparation steps in order.
	// Stored in the local DB as a JSON-encoded string.
	Steps []string `json:"steps"`

	// Tags holds classification labels such as the meal type.
	Tags RecipeTags `json:"tags"`

	// PhotoID references a locally stored photo. Photos never leave the
	// device, so this field is stripped from the remote snapshot.
	PhotoID *string `json:"photoId,omitempty"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Ingredient is a single ingredient line of a recipe.
type Ingredient struct {
	// Name is the ingredient name, e.g. "carrot".
	Name string `json:"name"`

	// Quantity is the amount in Unit for the recipe's Servings.
	Quantity float64 `json:"quantity"`

	// Unit is the measurement unit, e.g. "g" or "tbsp". Empty for counted items.
	Unit string `json:"unit,omitempty"`

	// Category is the shopping aisle grouping, e.g. "produce".
	Category string `json:"category,omitempty"`
}

// RecipeTags groups classification labels attached to a recipe.
type RecipeTags struct {
	// MealType holds labels like "breakfast", "dinner".
	MealType []string `json:"mealType,omitempty"`

	// Cuisine is an optional cuisine label, e.g. "italian".
	Cuisine string `json:"cuisine,omitempty"`
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r *Recipe) TableName() string {
	return "recipes"
}
