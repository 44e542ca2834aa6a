package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/internal/store"
	"github.com/MKhiriev/kitchenhub/internal/utils"
	"github.com/MKhiriev/kitchenhub/internal/validators"
	"github.com/MKhiriev/kitchenhub/models"
)

type recipeService struct {
	repo      store.RecipeRepository
	validator validators.Validator
	uuid      *utils.UUIDGenerator
	notifier  changeNotifier
	logger    *logger.Logger

	// now is replaceable in tests
	now func() time.Time
}

// NewRecipeService creates the recipe CRUD service. Every successful
// mutation notifies the sync session.
func NewRecipeService(repo store.RecipeRepository, validator validators.Validator, notifier changeNotifier, log *logger.Logger) RecipeService {
	return &recipeService{
		repo:      repo,
		validator: validator,
		uuid:      utils.NewUUIDGenerator(),
		notifier:  notifier,
		logger:    log,
		now:       time.Now,
	}
}

func (r *recipeService) Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if err := r.validator.Validate(ctx, recipe); err != nil {
		return models.Recipe{}, err
	}

	now := r.now()
	recipe.ID = r.uuid.Generate()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	if err := r.repo.Save(ctx, recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe: %w", err)
	}

	r.notifier.DataChanged()
	return recipe, nil
}

func (r *recipeService) Update(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if err := r.validator.Validate(ctx, recipe); err != nil {
		return models.Recipe{}, err
	}

	recipe.UpdatedAt = r.now()

	if err := r.repo.Update(ctx, recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("update recipe: %w", err)
	}

	r.notifier.DataChanged()
	return recipe, nil
}

func (r *recipeService) Delete(ctx context.Context, id string) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}

	r.notifier.DataChanged()
	return nil
}

func (r *recipeService) Get(ctx context.Context, id string) (models.Recipe, error) {
	return r.repo.Get(ctx, id)
}

func (r *recipeService) GetAll(ctx context.Context) ([]models.Recipe, error) {
	return r.repo.GetAll(ctx)
}
