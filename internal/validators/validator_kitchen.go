package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/kitchenhub/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldName targets the display name of a recipe or shopping item.
	FieldName = "name"

	// FieldServings targets the serving count of a recipe or meal plan entry.
	FieldServings = "servings"

	// FieldMinutes targets the preparation and cooking time fields.
	FieldMinutes = "minutes"

	// FieldIngredients targets the ingredient lines of a recipe.
	FieldIngredients = "ingredients"

	// FieldDate targets the calendar day of a meal plan entry.
	FieldDate = "date"

	// FieldSlot targets the meal slot of a meal plan entry.
	FieldSlot = "slot"

	// FieldRecipeID targets the recipe reference of a meal plan entry.
	FieldRecipeID = "recipe_id"

	// FieldQuantity targets the amount of a shopping item.
	FieldQuantity = "quantity"

	// FieldShoppingDays targets the meal-plan window of the settings record.
	FieldShoppingDays = "shopping_days"

	// FieldDefaultServings targets the default serving count of the settings record.
	FieldDefaultServings = "default_servings"
)

// dateLayout is the calendar-day format used by meal plan entries.
const dateLayout = "2006-01-02"

var allowedSlots = []string{
	models.SlotBreakfast,
	models.SlotLunch,
	models.SlotDinner,
}

// KitchenValidator implements the Validator interface for the kitchen domain
// models: Recipe, MealPlan, ShoppingItem and Settings.
//
// It supports both value and pointer receivers for every model type and
// allows optional field-level scoping via variadic field name arguments.
type KitchenValidator struct {
}

// NewKitchenValidator constructs a new KitchenValidator
// and returns it as the Validator interface.
func NewKitchenValidator() Validator {
	return &KitchenValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
// Unknown types fail with ErrUnsupportedType.
func (v *KitchenValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Recipe:
		return v.validateRecipe(ctx, value, fields...)
	case *models.Recipe:
		return v.validateRecipe(ctx, *value, fields...)

	case models.MealPlan:
		return v.validateMealPlan(ctx, value, fields...)
	case *models.MealPlan:
		return v.validateMealPlan(ctx, *value, fields...)

	case models.ShoppingItem:
		return v.validateShoppingItem(ctx, value, fields...)
	case *models.ShoppingItem:
		return v.validateShoppingItem(ctx, *value, fields...)

	case models.Settings:
		return v.validateSettings(ctx, value, fields...)
	case *models.Settings:
		return v.validateSettings(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *KitchenValidator) validateRecipe(_ context.Context, recipe models.Recipe, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldServings, FieldMinutes, FieldIngredients}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if recipe.Name == "" {
				return ErrEmptyRecipeName
			}
		case FieldServings:
			if recipe.Servings <= 0 {
				return ErrInvalidServings
			}
		case FieldMinutes:
			if recipe.PrepMinutes < 0 || recipe.CookMinutes < 0 {
				return ErrNegativeMinutes
			}
		case FieldIngredients:
			for _, ingredient := range recipe.Ingredients {
				if ingredient.Name == "" {
					return ErrEmptyIngredient
				}
				if ingredient.Quantity < 0 {
					return fmt.Errorf("%w: %s", ErrNegativeQuantity, ingredient.Name)
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *KitchenValidator) validateMealPlan(_ context.Context, plan models.MealPlan, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate, FieldSlot, FieldRecipeID, FieldServings}
	}

	for _, field := range fields {
		switch field {
		case FieldDate:
			if _, err := time.Parse(dateLayout, plan.Date); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidDate, plan.Date)
			}
		case FieldSlot:
			if !isAllowedSlot(plan.Slot) {
				return fmt.Errorf("%w: %q", ErrInvalidSlot, plan.Slot)
			}
		case FieldRecipeID:
			if plan.RecipeID == "" {
				return ErrEmptyRecipeID
			}
		case FieldServings:
			// zero means "use the recipe's default"
			if plan.Servings < 0 {
				return ErrInvalidServings
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *KitchenValidator) validateShoppingItem(_ context.Context, item models.ShoppingItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldQuantity}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if item.Name == "" {
				return ErrEmptyItemName
			}
		case FieldQuantity:
			if item.Quantity < 0 {
				return ErrNegativeQuantity
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *KitchenValidator) validateSettings(_ context.Context, settings models.Settings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldShoppingDays, FieldDefaultServings}
	}

	for _, field := range fields {
		switch field {
		case FieldShoppingDays:
			if settings.ShoppingDays <= 0 {
				return ErrInvalidShopWindow
			}
		case FieldDefaultServings:
			if settings.DefaultServings <= 0 {
				return ErrInvalidDefServings
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func isAllowedSlot(slot string) bool {
	for _, s := range allowedSlots {
		if slot == s {
			return true
		}
	}
	return false
}
