// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	saveRecipe = `
		INSERT INTO recipes (
			id,
			name,
			description,
			servings,
			prep_minutes,
			cook_minutes,
			ingredients,
			steps,
			tags,
			photo_id,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`

	updateRecipe = `
		UPDATE recipes SET
			name         = $1,
			description  = $2,
			servings     = $3,
			prep_minutes = $4,
			cook_minutes = $5,
			ingredients  = $6,
			steps        = $7,
			tags         = $8,
			photo_id     = $9,
			updated_at   = $10
		WHERE id = $11;`

	deleteRecipe = `DELETE FROM recipes WHERE id = $1;`

	getSingleRecipe = `
		SELECT
			id,
			name,
			description,
			servings,
			prep_minutes,
			cook_minutes,
			ingredients,
			steps,
			tags,
			photo_id,
			created_at,
			updated_at
		FROM recipes
		WHERE id = $1;`

	getAllRecipes = `
		SELECT
			id,
			name,
			description,
			servings,
			prep_minutes,
			cook_minutes,
			ingredients,
			steps,
			tags,
			photo_id,
			created_at,
			updated_at
		FROM recipes
		ORDER BY name;`

	deleteAllRecipes = `DELETE FROM recipes;`

	saveMealPlan = `
		INSERT INTO meal_plans (
			id,
			date,
			slot,
			recipe_id,
			servings,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (date, slot) DO UPDATE SET
			id         = excluded.id,
			recipe_id  = excluded.recipe_id,
			servings   = excluded.servings,
			updated_at = excluded.updated_at;`

	deleteMealPlan = `DELETE FROM meal_plans WHERE id = $1;`

	getSingleMealPlan = `
		SELECT id, date, slot, recipe_id, servings, created_at, updated_at
		FROM meal_plans
		WHERE id = $1;`

	getAllMealPlans = `
		SELECT id, date, slot, recipe_id, servings, created_at, updated_at
		FROM meal_plans
		ORDER BY date, slot;`

	deleteAllMealPlans = `DELETE FROM meal_plans;`

	saveShoppingItem = `
		INSERT INTO shopping_items (
			id,
			name,
			quantity,
			unit,
			category,
			checked,
			recipe_id,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	updateShoppingItem = `
		UPDATE shopping_items SET
			name       = $1,
			quantity   = $2,
			unit       = $3,
			category   = $4,
			checked    = $5,
			recipe_id  = $6,
			updated_at = $7
		WHERE id = $8;`

	deleteShoppingItem = `DELETE FROM shopping_items WHERE id = $1;`

	getAllShoppingItems = `
		SELECT id, name, quantity, unit, category, checked, recipe_id, created_at, updated_at
		FROM shopping_items
		ORDER BY category, name;`

	setShoppingItemChecked = `
		UPDATE shopping_items SET
			checked    = $1,
			updated_at = $2
		WHERE id = $3;`

	clearCheckedShoppingItems = `DELETE FROM shopping_items WHERE checked = true;`

	deleteAllShoppingItems = `DELETE FROM shopping_items;`

	getSettings = `SELECT value FROM settings WHERE key = $1;`

	saveSettings = `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`
)

// settingsKey is the single record key the settings repository uses.
const settingsKey = "settings"

// queryBuilder returns a statement builder matching the $N placeholder style
// used by the constant queries above.
func queryBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// buildMealPlanRangeQuery builds the SELECT for meal plan entries whose date
// lies within [from, to] inclusive.
func buildMealPlanRangeQuery(from, to string) (string, []any, error) {
	return queryBuilder().
		Select("id", "date", "slot", "recipe_id", "servings", "created_at", "updated_at").
		From("meal_plans").
		Where(sq.GtOrEq{"date": from}).
		Where(sq.LtOrEq{"date": to}).
		OrderBy("date", "slot").
		ToSql()
}

// buildShoppingFilterQuery builds the SELECT for shopping items matching the
// given filter.
func buildShoppingFilterQuery(filter ShoppingFilter) (string, []any, error) {
	q := queryBuilder().
		Select("id", "name", "quantity", "unit", "category", "checked", "recipe_id", "created_at", "updated_at").
		From("shopping_items")

	if len(filter.Categories) > 0 {
		q = q.Where(sq.Eq{"category": filter.Categories})
	}
	if filter.OnlyUnchecked {
		q = q.Where(sq.Eq{"checked": false})
	}

	return q.OrderBy("category", "name").ToSql()
}
