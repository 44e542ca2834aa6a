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

const planDateLayout = "2006-01-02"

type mealPlanService struct {
	repo      store.MealPlanRepository
	recipes   store.RecipeRepository
	validator validators.Validator
	uuid      *utils.UUIDGenerator
	notifier  changeNotifier
	logger    *logger.Logger

	// now is replaceable in tests
	now func() time.Time
}

func NewMealPlanService(repo store.MealPlanRepository, recipes store.RecipeRepository, validator validators.Validator, notifier changeNotifier, log *logger.Logger) MealPlanService {
	return &mealPlanService{
		repo:      repo,
		recipes:   recipes,
		validator: validator,
		uuid:      utils.NewUUIDGenerator(),
		notifier:  notifier,
		logger:    log,
		now:       time.Now,
	}
}

// Plan assigns a recipe to a (date, slot) pair. The repository upserts on
// that pair, so planning over an occupied slot replaces the assignment.
// Servings left at zero inherit the recipe's own serving count.
func (m *mealPlanService) Plan(ctx context.Context, plan models.MealPlan) (models.MealPlan, error) {
	if err := m.validator.Validate(ctx, plan); err != nil {
		return models.MealPlan{}, err
	}

	recipe, err := m.recipes.Get(ctx, plan.RecipeID)
	if err != nil {
		return models.MealPlan{}, fmt.Errorf("plan meal: %w", err)
	}
	if plan.Servings == 0 {
		plan.Servings = recipe.Servings
	}

	now := m.now()
	plan.ID = m.uuid.Generate()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	if err = m.repo.Save(ctx, plan); err != nil {
		return models.MealPlan{}, fmt.Errorf("plan meal: %w", err)
	}

	m.notifier.DataChanged()
	return plan, nil
}

func (m *mealPlanService) Unplan(ctx context.Context, id string) error {
	if err := m.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("unplan meal: %w", err)
	}

	m.notifier.DataChanged()
	return nil
}

// GetWeek returns the seven days starting at from (inclusive).
func (m *mealPlanService) GetWeek(ctx context.Context, from string) ([]models.MealPlan, error) {
	start, err := time.Parse(planDateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", validators.ErrInvalidDate, from)
	}

	to := start.AddDate(0, 0, 6).Format(planDateLayout)
	return m.repo.GetRange(ctx, from, to)
}

func (m *mealPlanService) GetAll(ctx context.Context) ([]models.MealPlan, error) {
	return m.repo.GetAll(ctx)
}
