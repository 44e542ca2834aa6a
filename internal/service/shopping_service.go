package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/internal/store"
	"github.com/MKhiriev/kitchenhub/internal/utils"
	"github.com/MKhiriev/kitchenhub/internal/validators"
	"github.com/MKhiriev/kitchenhub/models"
)

type shoppingService struct {
	repo      store.ShoppingRepository
	plans     store.MealPlanRepository
	recipes   store.RecipeRepository
	settings  store.SettingsRepository
	validator validators.Validator
	uuid      *utils.UUIDGenerator
	notifier  changeNotifier
	logger    *logger.Logger

	// now is replaceable in tests
	now func() time.Time
}

func NewShoppingService(
	repo store.ShoppingRepository,
	plans store.MealPlanRepository,
	recipes store.RecipeRepository,
	settings store.SettingsRepository,
	validator validators.Validator,
	notifier changeNotifier,
	log *logger.Logger,
) ShoppingService {
	return &shoppingService{
		repo:      repo,
		plans:     plans,
		recipes:   recipes,
		settings:  settings,
		validator: validator,
		uuid:      utils.NewUUIDGenerator(),
		notifier:  notifier,
		logger:    log,
		now:       time.Now,
	}
}

func (s *shoppingService) Add(ctx context.Context, item models.ShoppingItem) (models.ShoppingItem, error) {
	if err := s.validator.Validate(ctx, item); err != nil {
		return models.ShoppingItem{}, err
	}

	now := s.now()
	item.ID = s.uuid.Generate()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.repo.Save(ctx, item); err != nil {
		return models.ShoppingItem{}, fmt.Errorf("add shopping item: %w", err)
	}

	s.notifier.DataChanged()
	return item, nil
}

func (s *shoppingService) Update(ctx context.Context, item models.ShoppingItem) (models.ShoppingItem, error) {
	if err := s.validator.Validate(ctx, item); err != nil {
		return models.ShoppingItem{}, err
	}

	item.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, item); err != nil {
		return models.ShoppingItem{}, fmt.Errorf("update shopping item: %w", err)
	}

	s.notifier.DataChanged()
	return item, nil
}

func (s *shoppingService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove shopping item: %w", err)
	}

	s.notifier.DataChanged()
	return nil
}

func (s *shoppingService) GetAll(ctx context.Context) ([]models.ShoppingItem, error) {
	return s.repo.GetAll(ctx)
}

func (s *shoppingService) GetFiltered(ctx context.Context, filter store.ShoppingFilter) ([]models.ShoppingItem, error) {
	return s.repo.GetFiltered(ctx, filter)
}

func (s *shoppingService) SetChecked(ctx context.Context, id string, checked bool) error {
	if err := s.repo.SetChecked(ctx, id, checked); err != nil {
		return err
	}

	s.notifier.DataChanged()
	return nil
}

func (s *shoppingService) ClearChecked(ctx context.Context) error {
	if err := s.repo.ClearChecked(ctx); err != nil {
		return err
	}

	s.notifier.DataChanged()
	return nil
}

// GenerateFromMealPlans walks the meals planned for the next ShoppingDays
// days, scales every ingredient by the planned-to-recipe serving ratio and
// merges equal (name, unit) lines into one item.
func (s *shoppingService) GenerateFromMealPlans(ctx context.Context) ([]models.ShoppingItem, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate shopping list: %w", err)
	}

	from := s.now().Format(planDateLayout)
	to := s.now().AddDate(0, 0, settings.ShoppingDays-1).Format(planDateLayout)

	plans, err := s.plans.GetRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("generate shopping list: %w", err)
	}

	type aggregated struct {
		item  models.ShoppingItem
		order int
	}
	merged := make(map[string]*aggregated)
	orderCounter := 0

	for _, plan := range plans {
		recipe, err := s.recipes.Get(ctx, plan.RecipeID)
		if err != nil {
			// the plan may reference a recipe deleted since planning
			s.logger.Warn().
				Str("func", "shoppingService.GenerateFromMealPlans").
				Str("recipe_id", plan.RecipeID).
				Msg("planned recipe not found, skipping")
			continue
		}

		scale := 1.0
		if recipe.Servings > 0 && plan.Servings > 0 {
			scale = float64(plan.Servings) / float64(recipe.Servings)
		}

		for _, ingredient := range recipe.Ingredients {
			key := strings.ToLower(ingredient.Name) + "|" + ingredient.Unit
			if agg, ok := merged[key]; ok {
				agg.item.Quantity += ingredient.Quantity * scale
				continue
			}

			recipeID := recipe.ID
			merged[key] = &aggregated{
				order: orderCounter,
				item: models.ShoppingItem{
					Name:     ingredient.Name,
					Quantity: ingredient.Quantity * scale,
					Unit:     ingredient.Unit,
					Category: ingredient.Category,
					RecipeID: &recipeID,
				},
			}
			orderCounter++
		}
	}

	generated := make([]*aggregated, 0, len(merged))
	for _, agg := range merged {
		generated = append(generated, agg)
	}
	sort.Slice(generated, func(i, j int) bool { return generated[i].order < generated[j].order })

	now := s.now()
	items := make([]models.ShoppingItem, 0, len(generated))
	for _, agg := range generated {
		item := agg.item
		item.ID = s.uuid.Generate()
		item.CreatedAt = now
		item.UpdatedAt = now

		if err = s.repo.Save(ctx, item); err != nil {
			return nil, fmt.Errorf("generate shopping list: %w", err)
		}
		items = append(items, item)
	}

	if len(items) > 0 {
		s.notifier.DataChanged()
	}
	return items, nil
}

// FormatList renders the unchecked items grouped by category, one item per
// line, for sharing via the clipboard.
func (s *shoppingService) FormatList(ctx context.Context) (string, error) {
	items, err := s.repo.GetFiltered(ctx, store.ShoppingFilter{OnlyUnchecked: true})
	if err != nil {
		return "", fmt.Errorf("format shopping list: %w", err)
	}

	var b strings.Builder
	lastCategory := "\x00"
	for _, item := range items {
		if item.Category != lastCategory {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			category := item.Category
			if category == "" {
				category = "other"
			}
			b.WriteString(strings.ToUpper(category) + "\n")
			lastCategory = item.Category
		}

		b.WriteString("- " + item.Name)
		if item.Quantity > 0 {
			b.WriteString(" " + utils.FormatQuantity(item.Quantity))
			if item.Unit != "" {
				b.WriteString(" " + item.Unit)
			}
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n"), nil
}
