package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyRecipeName    = errors.New("recipe name is required")
	ErrInvalidServings    = errors.New("servings must be positive")
	ErrNegativeMinutes    = errors.New("preparation and cooking minutes cannot be negative")
	ErrEmptyIngredient    = errors.New("ingredient name is required")
	ErrNegativeQuantity   = errors.New("quantity cannot be negative")
	ErrInvalidDate        = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidSlot        = errors.New("unknown meal slot")
	ErrEmptyRecipeID      = errors.New("recipe reference is required")
	ErrEmptyItemName      = errors.New("item name is required")
	ErrInvalidShopWindow  = errors.New("shopping window must be positive")
	ErrInvalidDefServings = errors.New("default servings must be positive")
)
