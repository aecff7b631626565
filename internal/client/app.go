package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/internal/workers"
	"github.com/MKhiriev/stoq-client/models"
)

var ErrNoPicker = errors.New("no picker configured")

type App struct {
	browser  workers.Worker
	picker   Picker
	launcher Launcher

	logger *logger.Logger
}

// NewApp wires the pick flow. launcher may be nil, in which case Run only
// synchronizes.
func NewApp(browser workers.Worker, picker Picker, launcher Launcher, logger *logger.Logger) (*App, error) {
	if picker == nil {
		return nil, ErrNoPicker
	}
	return &App{browser: browser, picker: picker, launcher: launcher, logger: logger}, nil
}

// Run browses for servers while the picker is open. Browsing stops as soon
// as the picker returns; a successful sync is then launched.
func (a *App) Run(ctx context.Context) error {
	result, err := a.pick(ctx)
	if err != nil {
		return err
	}

	if a.launcher == nil {
		return nil
	}
	if err = a.launcher.Launch(ctx, result); err != nil {
		return fmt.Errorf("launch: %w", err)
	}
	return nil
}

func (a *App) pick(ctx context.Context) (models.SyncResult, error) {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	var result models.SyncResult
	group := workers.New(workers.Func(func(ctx context.Context) error {
		defer stop()

		var err error
		result, err = a.picker.Pick(ctx)
		return err
	}))
	if a.browser != nil {
		group.Add(a.browser)
	}

	if err := group.Run(ctx); err != nil {
		return models.SyncResult{}, err
	}

	a.logger.Info().
		Str("attempt_id", result.AttemptID).
		Strs("downloaded", result.Downloaded).
		Msg("bundles are ready")
	return result, nil
}
