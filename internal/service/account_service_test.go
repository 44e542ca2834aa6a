package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/internal/validators"
	"github.com/MKhiriev/kitchenhub/models"
)

func newTestAccountService(settings *memSettingsRepo, tokens *stubTokenService) AccountService {
	return NewAccountService(settings, tokens, validators.NewKitchenValidator(), logger.Nop())
}

func TestAccountService_Connect(t *testing.T) {
	settings := newMemSettingsRepo(models.DefaultSettings())
	tokens := &stubTokenService{
		configured:  true,
		signInToken: models.Token{AccessToken: "at", Email: "user@example.com"},
	}
	svc := newTestAccountService(settings, tokens)

	got, err := svc.Connect(context.Background())

	require.NoError(t, err)
	assert.True(t, got.AccountConnected)
	assert.Equal(t, "user@example.com", got.AccountEmail)
	assert.True(t, settings.current().AccountConnected)
}

func TestAccountService_Connect_NotConfigured(t *testing.T) {
	settings := newMemSettingsRepo(models.DefaultSettings())
	svc := newTestAccountService(settings, &stubTokenService{configured: false})

	_, err := svc.Connect(context.Background())

	assert.ErrorIs(t, err, ErrSyncNotConfigured)
	assert.False(t, settings.current().AccountConnected)
}

func TestAccountService_Connect_SignInFailed(t *testing.T) {
	settings := newMemSettingsRepo(models.DefaultSettings())
	svc := newTestAccountService(settings, &stubTokenService{configured: true, signInErr: errStub})

	_, err := svc.Connect(context.Background())

	assert.ErrorIs(t, err, errStub)
	assert.Equal(t, 0, settings.saves)
}

func TestAccountService_Disconnect(t *testing.T) {
	lastSync := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	stored := models.DefaultSettings()
	stored.AccountConnected = true
	stored.AccountEmail = "user@example.com"
	stored.RemoteFolderID = "folder-1"
	stored.LastSyncTime = &lastSync
	settings := newMemSettingsRepo(stored)
	tokens := &stubTokenService{configured: true}
	svc := newTestAccountService(settings, tokens)

	got, err := svc.Disconnect(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, tokens.signOutHits)
	assert.False(t, got.AccountConnected)
	assert.Empty(t, got.AccountEmail)
	assert.Empty(t, got.RemoteFolderID)
	assert.Nil(t, got.LastSyncTime)
	// предпочтения пользователя сохраняются
	assert.Equal(t, stored.ShoppingDays, got.ShoppingDays)
	assert.True(t, got.AutoSync)
}

func TestAccountService_UpdateSettings(t *testing.T) {
	lastSync := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	stored := models.DefaultSettings()
	stored.AccountConnected = true
	stored.AccountEmail = "user@example.com"
	stored.RemoteFolderID = "folder-1"
	stored.LastSyncTime = &lastSync
	settings := newMemSettingsRepo(stored)
	svc := newTestAccountService(settings, &stubTokenService{})

	update := models.DefaultSettings()
	update.ShoppingDays = 3
	update.DefaultServings = 2
	update.Theme = "dark"
	// попытка подмены полей привязки через UpdateSettings
	update.AccountConnected = false
	update.AccountEmail = "evil@example.com"

	got, err := svc.UpdateSettings(context.Background(), update)

	require.NoError(t, err)
	assert.Equal(t, 3, got.ShoppingDays)
	assert.Equal(t, "dark", got.Theme)
	assert.True(t, got.AccountConnected)
	assert.Equal(t, "user@example.com", got.AccountEmail)
	assert.Equal(t, "folder-1", got.RemoteFolderID)
	require.NotNil(t, got.LastSyncTime)
	assert.Equal(t, lastSync, *got.LastSyncTime)
}

func TestAccountService_UpdateSettings_Invalid(t *testing.T) {
	settings := newMemSettingsRepo(models.DefaultSettings())
	svc := newTestAccountService(settings, &stubTokenService{})

	update := models.DefaultSettings()
	update.ShoppingDays = 0

	_, err := svc.UpdateSettings(context.Background(), update)

	assert.ErrorIs(t, err, validators.ErrInvalidShopWindow)
	assert.Equal(t, 0, settings.saves)
}
