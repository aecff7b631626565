package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/stoq-client/internal/discovery"
	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/internal/service"
	"github.com/MKhiriev/stoq-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	registry *discovery.Registry
	sync     service.ClientSyncService
	logger   *logger.Logger

	// options are appended to every program; tests use them to drop the
	// terminal.
	options []tea.ProgramOption
}

func New(registry *discovery.Registry, sync service.ClientSyncService, logger *logger.Logger) *TUI {
	return &TUI{
		registry: registry,
		sync:     sync,
		logger:   logger,
		options:  []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Pick shows the live server list until the operator synchronizes against
// one of the servers successfully or quits.
func (t *TUI) Pick(ctx context.Context) (models.SyncResult, error) {
	model := newPickerModel(ctx, t.sync)

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	program := tea.NewProgram(model, options...)

	events := newEventQueue()
	t.registry.Subscribe(registryObserver(events))
	events.pushSnapshot(func() []tea.Msg {
		var msgs []tea.Msg
		for _, server := range t.registry.List() {
			msgs = append(msgs, serverAddedMsg{server: server})
		}
		return msgs
	})

	forwardCtx, stopForward := context.WithCancel(ctx)
	defer stopForward()
	go events.forward(forwardCtx, program.Send)

	finalModel, err := program.Run()
	if err != nil {
		return models.SyncResult{}, err
	}

	result, ok := finalModel.(pickerModel)
	if !ok {
		return models.SyncResult{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.SyncResult{}, ErrUserQuit
	}

	t.logger.Info().
		Str("attempt_id", result.result.AttemptID).
		Str("server", result.syncedWith.String()).
		Msg("server picked")
	return result.result, nil
}

// registryObserver queues registry changes without blocking the registry.
func registryObserver(events *eventQueue) discovery.Observer {
	return discovery.ObserverFuncs{
		Added: func(server models.ServerAnnouncement) {
			events.push(serverAddedMsg{server: server})
		},
		Removed: func(key models.ServerKey) {
			events.push(serverRemovedMsg{key: key})
		},
	}
}
