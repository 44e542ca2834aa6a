package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/kitchenhub/internal/config"
	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/internal/service"
	"github.com/MKhiriev/kitchenhub/internal/store"
	"github.com/MKhiriev/kitchenhub/internal/tui"
	"github.com/MKhiriev/kitchenhub/internal/workers"
)

// App is the client application: the service layer, the terminal UI and the
// background workers assembled into one lifecycle.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, storages *store.ClientStorages, ui *tui.TUI, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	watcher := workers.NewConnectivityWatcher(
		workers.NewHTTPProber(cfg.Remote),
		services.SyncSession,
		storages.SettingsRepository,
		cfg.Sync.ConnectivityInterval,
		log.GetChildLogger(),
	)

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(watcher),
		logger:   log,
	}, nil
}

// Run starts the workers and blocks in the UI until the user quits. On exit
// the pending debounce is cancelled and an in-flight sync is waited out, so a
// just-made edit is not cut off mid-upload.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	a.services.SyncSession.SetOnReload(a.ui.NotifyReload)

	a.workers.Run()
	defer a.workers.Stop()
	defer a.services.SyncSession.Stop()

	if err := a.ui.MainLoop(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	return nil
}
