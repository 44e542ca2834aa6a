package service

import (
	"github.com/MKhiriev/kitchenhub/internal/adapter"
	"github.com/MKhiriev/kitchenhub/internal/config"
	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/internal/store"
	"github.com/MKhiriev/kitchenhub/internal/validators"
)

type ClientServices struct {
	TokenService    TokenService
	AccountService  AccountService
	RecipeService   RecipeService
	MealPlanService MealPlanService
	ShoppingService ShoppingService
	SyncService     SyncService
	SyncSession     SyncSession
}

// NewClientServices wires the whole service layer. authProvider is nil when
// no OAuth client identity is configured; the app then runs local-only and
// sync operations report the unconfigured state.
func NewClientServices(
	storages *store.ClientStorages,
	remote adapter.RemoteStore,
	authProvider adapter.AuthProvider,
	cfg config.ClientConfig,
	log *logger.Logger,
) *ClientServices {
	validator := validators.NewKitchenValidator()

	tokenSvc := NewTokenService(authProvider, log.GetChildLogger())
	snapshotSvc := NewSnapshotService(storages, log.GetChildLogger())
	syncSvc := NewSyncService(storages.SettingsRepository, remote, tokenSvc, snapshotSvc, cfg.Remote.FolderName, log.GetChildLogger())
	session := NewSyncSession(syncSvc, storages.SettingsRepository, cfg.Sync.DebounceDelay, log.GetChildLogger())

	return &ClientServices{
		TokenService:    tokenSvc,
		AccountService:  NewAccountService(storages.SettingsRepository, tokenSvc, validator, log.GetChildLogger()),
		RecipeService:   NewRecipeService(storages.RecipeRepository, validator, session, log.GetChildLogger()),
		MealPlanService: NewMealPlanService(storages.MealPlanRepository, storages.RecipeRepository, validator, session, log.GetChildLogger()),
		ShoppingService: NewShoppingService(storages.ShoppingRepository, storages.MealPlanRepository, storages.RecipeRepository, storages.SettingsRepository, validator, session, log.GetChildLogger()),
		SyncService:     syncSvc,
		SyncSession:     session,
	}
}
