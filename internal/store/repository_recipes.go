package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/models"
)

type recipeRepository struct {
	*DB
	logger *logger.Logger
}

func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	return &recipeRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *recipeRepository) Save(ctx context.Context, recipe models.Recipe) error {
	log := logger.FromContext(ctx)

	ingredients, steps, tags, err := encodeRecipeColumns(recipe)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.Save").
			Str("id", recipe.ID).
			Msg("failed to encode recipe columns")
		return err
	}

	_, err = r.DB.ExecContext(ctx, saveRecipe,
		recipe.ID,
		recipe.Name,
		recipe.Description,
		recipe.Servings,
		recipe.PrepMinutes,
		recipe.CookMinutes,
		ingredients,
		steps,
		tags,
		recipe.PhotoID,
		recipe.CreatedAt,
		recipe.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.Save").
			Str("id", recipe.ID).
			Msg("failed to execute insert for recipe")
		return fmt.Errorf("failed to save recipe (id=%s): %w", recipe.ID, err)
	}

	return nil
}

func (r *recipeRepository) Update(ctx context.Context, recipe models.Recipe) error {
	log := logger.FromContext(ctx)

	ingredients, steps, tags, err := encodeRecipeColumns(recipe)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.Update").
			Str("id", recipe.ID).
			Msg("failed to encode recipe columns")
		return err
	}

	result, err := r.DB.ExecContext(ctx, updateRecipe,
		recipe.Name,
		recipe.Description,
		recipe.Servings,
		recipe.PrepMinutes,
		recipe.CookMinutes,
		ingredients,
		steps,
		tags,
		recipe.PhotoID,
		recipe.UpdatedAt,
		recipe.ID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.Update").
			Str("id", recipe.ID).
			Msg("failed to execute update for recipe")
		return fmt.Errorf("failed to update recipe (id=%s): %w", recipe.ID, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

func (r *recipeRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteRecipe, id); err != nil {
		log.Err(err).
			Str("func", "recipeRepository.Delete").
			Str("id", id).
			Msg("failed to execute delete for recipe")
		return fmt.Errorf("failed to delete recipe (id=%s): %w", id, err)
	}

	return nil
}

func (r *recipeRepository) Get(ctx context.Context, id string) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getSingleRecipe, id)

	recipe, err := scanRecipe(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}
		log.Err(err).
			Str("func", "recipeRepository.Get").
			Str("id", id).
			Msg("failed to scan recipe row")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return recipe, nil
}

func (r *recipeRepository) GetAll(ctx context.Context) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllRecipes)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.GetAll").
			Msg("failed to execute query for getting all recipes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var recipes []models.Recipe
	for rows.Next() {
		recipe, scanErr := scanRecipe(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recipeRepository.GetAll").
				Msg("failed to scan recipe rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		recipes = append(recipes, recipe)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}

func (r *recipeRepository) ReplaceAll(ctx context.Context, recipes []models.Recipe) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.ReplaceAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllRecipes); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, recipe := range recipes {
		ingredients, steps, tags, encErr := encodeRecipeColumns(recipe)
		if encErr != nil {
			return encErr
		}

		_, err = tx.ExecContext(ctx, saveRecipe,
			recipe.ID,
			recipe.Name,
			recipe.Description,
			recipe.Servings,
			recipe.PrepMinutes,
			recipe.CookMinutes,
			ingredients,
			steps,
			tags,
			recipe.PhotoID,
			recipe.CreatedAt,
			recipe.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "recipeRepository.ReplaceAll").
				Str("id", recipe.ID).
				Msg("failed to insert recipe during replace")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// encodeRecipeColumns serialises the JSON-encoded columns of a recipe.
func encodeRecipeColumns(recipe models.Recipe) (ingredients, steps, tags string, err error) {
	rawIngredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: ingredients: %w", ErrEncodingColumn, err)
	}
	rawSteps, err := json.Marshal(recipe.Steps)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: steps: %w", ErrEncodingColumn, err)
	}
	rawTags, err := json.Marshal(recipe.Tags)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: tags: %w", ErrEncodingColumn, err)
	}
	return string(rawIngredients), string(rawSteps), string(rawTags), nil
}

// scanRecipe reads one recipe row using the supplied scan function, decoding
// the JSON-encoded columns back into their model fields.
func scanRecipe(scan func(dest ...any) error) (models.Recipe, error) {
	var (
		recipe      models.Recipe
		ingredients string
		steps       string
		tags        string
		photoID     sql.NullString
	)

	err := scan(
		&recipe.ID,
		&recipe.Name,
		&recipe.Description,
		&recipe.Servings,
		&recipe.PrepMinutes,
		&recipe.CookMinutes,
		&ingredients,
		&steps,
		&tags,
		&photoID,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	)
	if err != nil {
		return models.Recipe{}, err
	}

	if err = json.Unmarshal([]byte(ingredients), &recipe.Ingredients); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: ingredients: %w", ErrDecodingColumn, err)
	}
	if err = json.Unmarshal([]byte(steps), &recipe.Steps); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: steps: %w", ErrDecodingColumn, err)
	}
	if err = json.Unmarshal([]byte(tags), &recipe.Tags); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: tags: %w", ErrDecodingColumn, err)
	}
	if photoID.Valid {
		recipe.PhotoID = &photoID.String
	}

	return recipe, nil
}
