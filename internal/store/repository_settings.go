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

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

// Load returns the stored settings record. A fresh installation has no
// record yet; defaults are returned without error in that case.
func (s *settingsRepository) Load(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx)

	var raw string
	err := s.DB.QueryRowContext(ctx, getSettings, settingsKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Load").
			Msg("failed to query settings record")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var settings models.Settings
	if err = json.Unmarshal([]byte(raw), &settings); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Load").
			Msg("failed to decode settings record")
		return models.Settings{}, fmt.Errorf("%w: settings: %w", ErrDecodingColumn, err)
	}

	return settings, nil
}

func (s *settingsRepository) Save(ctx context.Context, settings models.Settings) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%w: settings: %w", ErrEncodingColumn, err)
	}

	if _, err = s.DB.ExecContext(ctx, saveSettings, settingsKey, string(raw)); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Save").
			Msg("failed to execute upsert for settings record")
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
