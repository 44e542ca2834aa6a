package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/internal/store"
	"github.com/MKhiriev/kitchenhub/internal/validators"
	"github.com/MKhiriev/kitchenhub/models"
)

type accountService struct {
	settings  store.SettingsRepository
	tokens    TokenService
	validator validators.Validator
	logger    *logger.Logger
}

func NewAccountService(settings store.SettingsRepository, tokens TokenService, validator validators.Validator, log *logger.Logger) AccountService {
	return &accountService{
		settings:  settings,
		tokens:    tokens,
		validator: validator,
		logger:    log,
	}
}

// Connect runs the interactive sign-in and records the account association.
func (a *accountService) Connect(ctx context.Context) (models.Settings, error) {
	if !a.tokens.Configured() {
		return models.Settings{}, ErrSyncNotConfigured
	}

	token, err := a.tokens.SignIn(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("connect account: %w", err)
	}

	settings, err := a.settings.Load(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("connect account: %w", err)
	}

	settings.AccountConnected = true
	settings.AccountEmail = token.Email

	if err = a.settings.Save(ctx, settings); err != nil {
		return models.Settings{}, fmt.Errorf("connect account: %w", err)
	}

	a.logger.Info().
		Str("func", "accountService.Connect").
		Str("email", token.Email).
		Msg("account connected")

	return settings, nil
}

// Disconnect signs out and clears the association. The cached folder ID and
// last-sync time go too: a future reconnect starts from a clean slate.
// Local recipes, plans and the shopping list are kept.
func (a *accountService) Disconnect(ctx context.Context) (models.Settings, error) {
	a.tokens.SignOut(ctx)

	settings, err := a.settings.Load(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("disconnect account: %w", err)
	}

	settings.AccountConnected = false
	settings.AccountEmail = ""
	settings.RemoteFolderID = ""
	settings.LastSyncTime = nil

	if err = a.settings.Save(ctx, settings); err != nil {
		return models.Settings{}, fmt.Errorf("disconnect account: %w", err)
	}

	a.logger.Info().Str("func", "accountService.Disconnect").Msg("account disconnected")

	return settings, nil
}

func (a *accountService) Settings(ctx context.Context) (models.Settings, error) {
	return a.settings.Load(ctx)
}

// UpdateSettings persists user preferences. The account association fields
// are owned by Connect/Disconnect and copied over from the stored record.
func (a *accountService) UpdateSettings(ctx context.Context, settings models.Settings) (models.Settings, error) {
	if err := a.validator.Validate(ctx, settings); err != nil {
		return models.Settings{}, err
	}

	stored, err := a.settings.Load(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("update settings: %w", err)
	}

	settings.AccountConnected = stored.AccountConnected
	settings.AccountEmail = stored.AccountEmail
	settings.RemoteFolderID = stored.RemoteFolderID
	settings.LastSyncTime = stored.LastSyncTime

	if err = a.settings.Save(ctx, settings); err != nil {
		return models.Settings{}, fmt.Errorf("update settings: %w", err)
	}

	return settings, nil
}
