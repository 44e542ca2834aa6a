package models

import "time"

// ShoppingItem is one line of the shopping list.
type ShoppingItem struct {
	// ID is the client-generated UUID of the item.
	ID string `json:"id"`

	// Name is the item name shown in the list.
	Name string `json:"name"`

	// Quantity is the amount to buy, in Unit.
	Quantity float64 `json:"quantity,omitempty"`

	// Unit is the measurement unit, empty for counted items.
	Unit string `json:"unit,omitempty"`

	// Category is the aisle grouping used for list ordering.
	Category string `json:"category,omitempty"`

	// Checked marks the item as already picked up.
	Checked bool `json:"checked"`

	// RecipeID optionally links the item back to the recipe that produced it.
	RecipeID *string `json:"recipeId,omitempty"`

	// CreatedAt is the timestamp when the item was added.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the ShoppingItem model.
func (s *ShoppingItem) TableName() string {
	return "shopping_items"
}
