package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/kitchenhub/internal/config"
	"github.com/MKhiriev/kitchenhub/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// RecipeRepository is the SQLite-backed repository for recipes.
	RecipeRepository RecipeRepository

	// MealPlanRepository is the SQLite-backed repository for meal plan entries.
	MealPlanRepository MealPlanRepository

	// ShoppingRepository is the SQLite-backed repository for the shopping list.
	ShoppingRepository ShoppingRepository

	// SettingsRepository persists the installation settings record.
	SettingsRepository SettingsRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		RecipeRepository:   NewRecipeRepository(db, logger),
		MealPlanRepository: NewMealPlanRepository(db, logger),
		ShoppingRepository: NewShoppingRepository(db, logger),
		SettingsRepository: NewSettingsRepository(db, logger),
	}, nil
}
