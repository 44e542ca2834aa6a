// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/kitchenhub/internal/adapter"
	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/internal/store"
	"github.com/MKhiriev/kitchenhub/models"
)

type syncService struct {
	settings   store.SettingsRepository
	remote     adapter.RemoteStore
	tokens     TokenService
	snapshots  SnapshotService
	folderName string
	logger     *logger.Logger

	// now is replaceable in tests
	now func() time.Time
}

// NewSyncService creates the sync orchestrator. folderName is the remote
// folder every device of the account shares.
func NewSyncService(
	settings store.SettingsRepository,
	remote adapter.RemoteStore,
	tokens TokenService,
	snapshots SnapshotService,
	folderName string,
	log *logger.Logger,
) SyncService {
	return &syncService{
		settings:   settings,
		remote:     remote,
		tokens:     tokens,
		snapshots:  snapshots,
		folderName: folderName,
		logger:     log,
		now:        time.Now,
	}
}

// RunSync performs one full synchronisation pass:
//
//  1. Resolve a valid access token, refreshing silently if needed.
//  2. Resolve (or create) the shared remote folder, caching its ID.
//  3. Read the remote metadata file and compare its lastModified with the
//     local last-sync time.
//  4. Remote newer and no local changes: download every present dataset.
//     Otherwise: upload every dataset, then write the metadata file last so
//     a partial upload never advances the remote timestamp.
//
// Whole files win; there is no per-record merge. The caller owns the dirty
// flag reset via the tracker.
func (s *syncService) RunSync(ctx context.Context, tracker ChangeTracker) (SyncResult, error) {
	log := logger.FromContext(ctx)

	settings, err := s.settings.Load(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("load settings: %w", err)
	}
	if !settings.AccountConnected {
		return SyncResult{}, ErrNotConnected
	}

	accessToken, err := s.tokens.EnsureToken(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	folderID, err := s.resolveFolder(ctx, accessToken, &settings)
	if err != nil {
		return SyncResult{}, err
	}

	remoteModified, err := s.readRemoteMetadata(ctx, accessToken, folderID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			s.forgetFolder(ctx)
		}
		return SyncResult{}, err
	}

	dirty := tracker.Dirty()
	download := s.chooseDownload(remoteModified, settings.LastSyncTime, dirty)

	log.Info().
		Str("func", "syncService.RunSync").
		Bool("dirty", dirty).
		Bool("download", download).
		Msg("sync direction decided")

	var result SyncResult
	if download {
		result, err = s.downloadAll(ctx, accessToken, folderID, *remoteModified, settings)
	} else {
		result, err = s.uploadAll(ctx, accessToken, folderID, settings)
	}

	if err != nil && errors.Is(err, adapter.ErrNotFound) {
		// cached folder or file handle is stale; forget the folder so the
		// next run re-resolves it
		s.forgetFolder(ctx)
	}

	return result, err
}

func (s *syncService) forgetFolder(ctx context.Context) {
	settings, err := s.settings.Load(ctx)
	if err != nil || settings.RemoteFolderID == "" {
		return
	}
	settings.RemoteFolderID = ""
	if err = s.settings.Save(ctx, settings); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "syncService.forgetFolder").
			Msg("failed to drop stale remote folder id")
	}
}

// chooseDownload applies the direction rule: pull only when the remote set
// is strictly newer than the last sync of this device and nothing changed
// locally since then. Any local change forces an upload, deliberately
// overwriting the remote set (last syncer wins).
func (s *syncService) chooseDownload(remoteModified, lastSync *time.Time, dirty bool) bool {
	if dirty || remoteModified == nil {
		return false
	}
	if lastSync == nil {
		return true
	}
	return remoteModified.After(*lastSync)
}

// resolveFolder returns the cached remote folder ID, falling back to a
// find-or-create round trip.
func (s *syncService) resolveFolder(ctx context.Context, token string, settings *models.Settings) (string, error) {
	if settings.RemoteFolderID != "" {
		return settings.RemoteFolderID, nil
	}

	folderID, err := s.remote.FindOrCreateFolder(ctx, token, s.folderName)
	if err != nil {
		return "", fmt.Errorf("resolve remote folder: %w", err)
	}

	settings.RemoteFolderID = folderID
	if err = s.settings.Save(ctx, *settings); err != nil {
		return "", fmt.Errorf("cache remote folder id: %w", err)
	}

	return folderID, nil
}

// readRemoteMetadata downloads and parses sync-metadata.json. A missing
// file (first sync of the account) or an unparsable one yields nil, which
// the direction rule treats as "nothing to pull".
func (s *syncService) readRemoteMetadata(ctx context.Context, token, folderID string) (*time.Time, error) {
	file, err := s.remote.FindFile(ctx, token, folderID, models.MetadataFileName)
	if err != nil {
		return nil, fmt.Errorf("find remote metadata: %w", err)
	}
	if file == nil {
		return nil, nil
	}

	payload, err := s.remote.DownloadFile(ctx, token, file.ID)
	if err != nil {
		return nil, fmt.Errorf("download remote metadata: %w", err)
	}

	var meta models.SyncMetadata
	if err = json.Unmarshal(payload, &meta); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "syncService.readRemoteMetadata").
			Msg("remote metadata is unparsable, treating as absent")
		return nil, nil
	}
	if meta.LastModified.IsZero() {
		return nil, nil
	}

	return &meta.LastModified, nil
}

func (s *syncService) downloadAll(ctx context.Context, token, folderID string, remoteModified time.Time, settings models.Settings) (SyncResult, error) {
	log := logger.FromContext(ctx)

	for _, tracked := range models.TrackedDatasets() {
		file, err := s.remote.FindFile(ctx, token, folderID, tracked.FileName)
		if err != nil {
			return SyncResult{}, fmt.Errorf("find %s: %w", tracked.FileName, err)
		}
		if file == nil {
			// dataset never uploaded by any device yet
			continue
		}

		payload, err := s.remote.DownloadFile(ctx, token, file.ID)
		if err != nil {
			return SyncResult{}, fmt.Errorf("download %s: %w", tracked.FileName, err)
		}

		if err = s.snapshots.Import(ctx, tracked.Dataset, payload); err != nil {
			return SyncResult{}, fmt.Errorf("import %s: %w", tracked.FileName, err)
		}

		log.Debug().
			Str("func", "syncService.downloadAll").
			Str("file", tracked.FileName).
			Int("bytes", len(payload)).
			Msg("dataset downloaded")
	}

	settings.LastSyncTime = &remoteModified
	if err := s.settings.Save(ctx, settings); err != nil {
		return SyncResult{}, fmt.Errorf("record sync time: %w", err)
	}

	return SyncResult{
		Direction: DirectionDownload,
		SyncedAt:  remoteModified,
		Reloaded:  true,
	}, nil
}

func (s *syncService) uploadAll(ctx context.Context, token, folderID string, settings models.Settings) (SyncResult, error) {
	log := logger.FromContext(ctx)

	for _, tracked := range models.TrackedDatasets() {
		payload, err := s.snapshots.Export(ctx, tracked.Dataset)
		if err != nil {
			return SyncResult{}, fmt.Errorf("export %s: %w", tracked.FileName, err)
		}

		if err = s.writeRemoteFile(ctx, token, folderID, tracked.FileName, payload); err != nil {
			return SyncResult{}, err
		}

		log.Debug().
			Str("func", "syncService.uploadAll").
			Str("file", tracked.FileName).
			Int("bytes", len(payload)).
			Msg("dataset uploaded")
	}

	// metadata goes last: its timestamp only ever covers a fully written set
	syncedAt := s.now().UTC().Truncate(time.Second)
	metaPayload, err := json.Marshal(models.SyncMetadata{LastModified: syncedAt})
	if err != nil {
		return SyncResult{}, fmt.Errorf("encode metadata: %w", err)
	}
	if err = s.writeRemoteFile(ctx, token, folderID, models.MetadataFileName, metaPayload); err != nil {
		return SyncResult{}, err
	}

	settings.LastSyncTime = &syncedAt
	if err = s.settings.Save(ctx, settings); err != nil {
		return SyncResult{}, fmt.Errorf("record sync time: %w", err)
	}

	return SyncResult{
		Direction: DirectionUpload,
		SyncedAt:  syncedAt,
	}, nil
}

// writeRemoteFile updates the file in place when it already exists,
// otherwise creates it.
func (s *syncService) writeRemoteFile(ctx context.Context, token, folderID, name string, payload []byte) error {
	file, err := s.remote.FindFile(ctx, token, folderID, name)
	if err != nil {
		return fmt.Errorf("find %s: %w", name, err)
	}

	if file == nil {
		if _, err = s.remote.UploadFile(ctx, token, folderID, name, payload); err != nil {
			return fmt.Errorf("upload %s: %w", name, err)
		}
		return nil
	}

	if err = s.remote.UpdateFile(ctx, token, file.ID, payload); err != nil {
		return fmt.Errorf("update %s: %w", name, err)
	}
	return nil
}
