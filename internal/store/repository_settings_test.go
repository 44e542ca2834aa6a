package store

import (
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/models"
)

func TestSettingsRepository_Load_FreshInstall(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSettingsRepository(newDBFromSQL(db), logger.Nop())

	// нет записи — должны получить дефолты без ошибки
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings")).
		WithArgs(settingsKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	settings, err := repo.Load(testContext())

	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestSettingsRepository_Load_StoredRecord(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSettingsRepository(newDBFromSQL(db), logger.Nop())

	stored := `{"accountConnected":true,"accountEmail":"cook@example.com","remoteFolderId":"folder-1","autoSync":false,"defaultServings":2,"shoppingDays":5,"theme":"dark"}`
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings")).
		WithArgs(settingsKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(stored))

	settings, err := repo.Load(testContext())

	require.NoError(t, err)
	assert.True(t, settings.AccountConnected)
	assert.Equal(t, "cook@example.com", settings.AccountEmail)
	assert.Equal(t, "folder-1", settings.RemoteFolderID)
	assert.False(t, settings.AutoSync)
	assert.Equal(t, 5, settings.ShoppingDays)
}

func TestSettingsRepository_Load_CorruptRecord(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSettingsRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings")).
		WithArgs(settingsKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("not json"))

	_, err := repo.Load(testContext())

	assert.ErrorIs(t, err, ErrDecodingColumn)
}

func TestSettingsRepository_Save(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSettingsRepository(newDBFromSQL(db), logger.Nop())

	settings := models.DefaultSettings()
	settings.AccountConnected = true
	settings.AccountEmail = "cook@example.com"

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO settings")).
		WithArgs(settingsKey, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(testContext(), settings)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
