package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/internal/store"
	"github.com/MKhiriev/kitchenhub/models"
)

type snapshotService struct {
	storages *store.ClientStorages
	logger   *logger.Logger
}

// NewSnapshotService creates the dataset codec backed by the local
// repositories.
func NewSnapshotService(storages *store.ClientStorages, log *logger.Logger) SnapshotService {
	return &snapshotService{storages: storages, logger: log}
}

func (s *snapshotService) Export(ctx context.Context, dataset models.Dataset) ([]byte, error) {
	switch dataset {
	case models.DatasetRecipes:
		recipes, err := s.storages.RecipeRepository.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("export recipes: %w", err)
		}
		// photo references never leave the device
		for i := range recipes {
			recipes[i].PhotoID = nil
		}
		if recipes == nil {
			recipes = []models.Recipe{}
		}
		return json.Marshal(recipes)

	case models.DatasetMealPlans:
		plans, err := s.storages.MealPlanRepository.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("export meal plans: %w", err)
		}
		if plans == nil {
			plans = []models.MealPlan{}
		}
		return json.Marshal(plans)

	case models.DatasetShopping:
		items, err := s.storages.ShoppingRepository.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("export shopping list: %w", err)
		}
		if items == nil {
			items = []models.ShoppingItem{}
		}
		return json.Marshal(items)
	}

	return nil, fmt.Errorf("unknown dataset %q", dataset)
}

// Import parses the payload before touching the database, so a corrupt
// snapshot leaves the local dataset intact.
func (s *snapshotService) Import(ctx context.Context, dataset models.Dataset, payload []byte) error {
	switch dataset {
	case models.DatasetRecipes:
		var recipes []models.Recipe
		if err := json.Unmarshal(payload, &recipes); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSnapshotDecodeFailed, dataset, err)
		}
		return s.storages.RecipeRepository.ReplaceAll(ctx, recipes)

	case models.DatasetMealPlans:
		var plans []models.MealPlan
		if err := json.Unmarshal(payload, &plans); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSnapshotDecodeFailed, dataset, err)
		}
		return s.storages.MealPlanRepository.ReplaceAll(ctx, plans)

	case models.DatasetShopping:
		var items []models.ShoppingItem
		if err := json.Unmarshal(payload, &items); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSnapshotDecodeFailed, dataset, err)
		}
		return s.storages.ShoppingRepository.ReplaceAll(ctx, items)
	}

	return fmt.Errorf("unknown dataset %q", dataset)
}
