package models

import "time"

// MealPlan assigns a recipe to one slot of one calendar day.
// At most one entry exists per (Date, Slot) pair.
type MealPlan struct {
	// ID is the client-generated UUID of the entry.
	ID string `json:"id"`

	// Date is the plan day in "2006-01-02" format. Kept as a string so
	// range queries and the remote snapshot stay timezone-agnostic.
	Date string `json:"date"`

	// Slot is the meal slot within the day: "breakfast", "lunch" or "dinner".
	Slot string `json:"slot"`

	// RecipeID references the planned recipe.
	RecipeID string `json:"recipeId"`

	// Servings overrides the recipe's default serving count for this meal.
	Servings int `json:"servings,omitempty"`

	// CreatedAt is the timestamp when the entry was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meal slot values accepted in MealPlan.Slot.
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
)

// TableName returns the name of the database table
// associated with the MealPlan model.
func (m *MealPlan) TableName() string {
	return "meal_plans"
}
