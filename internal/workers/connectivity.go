// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/kitchenhub/internal/config"
	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/internal/store"
	"github.com/MKhiriev/kitchenhub/internal/utils"
)

// ConnectivityWatcher probes the remote API on a fixed interval and requests
// a sync attempt on every unreachable-to-reachable transition, so edits made
// offline reach the remote folder without waiting for the next local change.
type ConnectivityWatcher struct {
	prober   Prober
	session  syncTrigger
	settings store.SettingsRepository
	interval time.Duration
	logger   *logger.Logger

	stop chan struct{}
	wg   sync.WaitGroup
}

func NewConnectivityWatcher(prober Prober, session syncTrigger, settings store.SettingsRepository, interval time.Duration, log *logger.Logger) *ConnectivityWatcher {
	return &ConnectivityWatcher{
		prober:   prober,
		session:  session,
		settings: settings,
		interval: interval,
		logger:   log,
		stop:     make(chan struct{}),
	}
}

func (w *ConnectivityWatcher) Run() {
	w.wg.Add(1)
	go w.watch()
}

func (w *ConnectivityWatcher) Stop() {
	close(w.stop)
	w.wg.Wait()
}

func (w *ConnectivityWatcher) watch() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// the first probe sets the baseline; starting offline must not be read
	// as a transition
	reachable := w.prober.Reachable()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			now := w.prober.Reachable()
			if now && !reachable {
				w.logger.Info().
					Str("func", "ConnectivityWatcher.watch").
					Msg("remote store reachable again")
				w.onReconnect()
			}
			reachable = now
		}
	}
}

func (w *ConnectivityWatcher) onReconnect() {
	ctx := w.logger.WithContext(context.Background())

	settings, err := w.settings.Load(ctx)
	if err != nil {
		w.logger.Warn().
			Str("func", "ConnectivityWatcher.onReconnect").
			Err(err).
			Msg("cannot load settings, skipping sync trigger")
		return
	}

	if !settings.AccountConnected || !settings.AutoSync {
		return
	}

	w.session.TriggerSync()
}

// httpProber treats any HTTP response from the remote API as reachability;
// only transport-level failures count as offline.
type httpProber struct {
	client *utils.HTTPClient
	url    string
}

func NewHTTPProber(cfg config.ClientRemote) Prober {
	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.RequestTimeout)
	return &httpProber{client: client, url: cfg.APIBaseURL}
}

func (p *httpProber) Reachable() bool {
	_, err := p.client.R().Head(p.url)
	return err == nil
}
