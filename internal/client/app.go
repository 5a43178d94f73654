package client

import (
	"context"
	"errors"
	"time"

	"blogkeeper/internal/config"
	"blogkeeper/internal/logger"
	"blogkeeper/internal/service"
	"blogkeeper/internal/tui"
	"blogkeeper/internal/workers"
)

// finalShipTimeout bounds the last log shipment on exit so a dead server
// cannot keep the process alive.
const finalShipTimeout = 5 * time.Second

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	jobs := workers.NewWorkers()
	jobs.Add(services.RefreshJob, workersCfg.RefreshInterval)
	jobs.Add(services.LogShipper, workersCfg.LogShipInterval)

	return &App{services: services, tui: ui, workers: jobs, logger: log}, nil
}

// Run drives the session loop: authenticate, fill the local cache, run the
// main screens with the background workers ticking, and start over after a
// logout. Buffered logs are shipped one last time before exit.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		user, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				a.shipRemainingLogs()
				return nil
			}
			return err
		}

		a.logger.Info().Str("username", user.Username).Msg("logged in")

		// best effort, the list screen works from the cache when offline
		if err = a.services.PostService.Refresh(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("initial refresh failed")
		}

		a.workers.Start(ctx)
		logout, err := a.tui.MainLoop(ctx, user)
		a.workers.Stop()

		if err != nil {
			return err
		}
		if !logout {
			a.shipRemainingLogs()
			return nil
		}
	}
}

func (a *App) shipRemainingLogs() {
	ctx, cancel := context.WithTimeout(context.Background(), finalShipTimeout)
	defer cancel()

	if err := a.services.LogShipper.Ship(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("final log shipment failed")
	}
}
