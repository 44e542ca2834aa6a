package tui

import (
	"context"

	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/internal/service"
	"github.com/MKhiriev/kitchenhub/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	// reload and consentURL feed external events into the running program
	reload     chan struct{}
	consentURL chan string
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{
		services:   services,
		buildInfo:  buildInfo,
		reload:     make(chan struct{}, 1),
		consentURL: make(chan string, 1),
	}, nil
}

// NotifyReload asks the running UI to re-read local data. Safe to call from
// any goroutine; coalesces when the UI has not consumed the previous one yet.
func (t *TUI) NotifyReload() {
	select {
	case t.reload <- struct{}{}:
	default:
	}
}

// ConsentURLHandler returns the callback that surfaces the OAuth consent page
// URL inside the UI instead of stdout.
func (t *TUI) ConsentURLHandler() func(url string) {
	return func(url string) {
		select {
		case t.consentURL <- url:
		default:
		}
	}
}

// MainLoop runs the interactive UI and blocks until the user quits.
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.buildInfo, t.reload, t.consentURL)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
