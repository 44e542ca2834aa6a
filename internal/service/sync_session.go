// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/internal/store"
)

const (
	StateIdle    = "idle"
	StatePending = "pending"
	StateSyncing = "syncing"
	StateError   = "error"
)

type syncSession struct {
	syncService SyncService
	settings    store.SettingsRepository
	debounce    time.Duration
	logger      *logger.Logger

	mu           sync.Mutex
	dirty        bool
	inFlight     bool
	timer        *time.Timer
	state        string
	message      string
	lastSyncTime *time.Time
	onReload     func()

	wg sync.WaitGroup
}

// NewSyncSession creates the scheduling shell around the sync service.
// debounce is the quiet period after the last mutation before an automatic
// sync fires.
func NewSyncSession(syncService SyncService, settings store.SettingsRepository, debounce time.Duration, log *logger.Logger) SyncSession {
	return &syncSession{
		syncService: syncService,
		settings:    settings,
		debounce:    debounce,
		logger:      log,
		state:       StateIdle,
	}
}

func (s *syncSession) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *syncSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
}

// DataChanged marks local data dirty and restarts the single debounce timer.
// A burst of mutations keeps pushing the deadline, so only one sync fires
// once the burst settles.
func (s *syncSession) DataChanged() {
	s.mu.Lock()
	s.dirty = true

	if !s.autoSyncEnabled() {
		s.mu.Unlock()
		return
	}

	if s.state == StateIdle || s.state == StateError {
		s.state = StatePending
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.TriggerSync)
	s.mu.Unlock()
}

// TriggerSync starts a run unless one is already in flight. A trigger during
// a run is dropped, not queued: the running pass uploads the current
// database state anyway, and the dirty flag survives for the next schedule.
func (s *syncSession) TriggerSync() {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		s.logger.Debug().Str("func", "syncSession.TriggerSync").Msg("sync already running, trigger dropped")
		return
	}
	s.inFlight = true
	s.state = StateSyncing
	s.message = ""
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runSync()
	}()
}

func (s *syncSession) runSync() {
	ctx := s.logger.WithContext(context.Background())

	result, err := s.syncService.RunSync(ctx, s)

	// the attempt ran: local changes either made it to the remote set or
	// lost to a newer download, so the flag is spent either way
	s.Clear()

	s.mu.Lock()
	s.inFlight = false
	if err != nil {
		s.state = StateError
		s.message = classifySyncError(err)
		s.mu.Unlock()

		s.logger.Err(err).Str("func", "syncSession.runSync").Msg("sync failed")
		return
	}

	s.state = StateIdle
	s.message = ""
	syncedAt := result.SyncedAt
	s.lastSyncTime = &syncedAt
	reload := result.Reloaded
	onReload := s.onReload
	s.mu.Unlock()

	s.logger.Info().
		Str("func", "syncSession.runSync").
		Str("direction", string(result.Direction)).
		Time("synced_at", result.SyncedAt).
		Msg("sync completed")

	if reload && onReload != nil {
		onReload()
	}
}

func (s *syncSession) Status() SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionStatus{
		State:        s.state,
		Message:      s.message,
		LastSyncTime: s.lastSyncTime,
		Dirty:        s.dirty,
	}
}

func (s *syncSession) SetOnReload(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onReload = fn
}

// Stop cancels a pending debounce and waits for an in-flight run to finish.
func (s *syncSession) Stop() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// autoSyncEnabled is called with s.mu held.
func (s *syncSession) autoSyncEnabled() bool {
	settings, err := s.settings.Load(context.Background())
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "syncSession.autoSyncEnabled").Msg("failed to load settings")
		return false
	}
	return settings.AccountConnected && settings.AutoSync
}
