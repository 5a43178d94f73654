package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"blogkeeper/internal/logger"
	"blogkeeper/internal/service"
	"blogkeeper/models"
)

// ErrUserQuit is returned when the user exits from the auth screens instead
// of signing in.
var ErrUserQuit = errors.New("user quit")

// TUI drives the terminal client. LoginFlow and MainLoop each run their own
// bubbletea program; the caller alternates between them until the user quits.
type TUI struct {
	services *service.ClientServices
	baseURL  string
	logger   *logger.Logger
}

func New(services *service.ClientServices, baseURL string, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, baseURL: baseURL, logger: log}, nil
}

// LoginFlow shows the welcome, sign-in and sign-up screens and returns the
// authenticated user. Returns ErrUserQuit when the user exits.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	root := newLoginAppModel(ctx, t.services, t.baseURL, t.logger)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.User{}, result.err
	}
	return result.resultUser, nil
}

// MainLoop shows the post list and its child screens until the user logs out
// or quits. Returns logout=true when the caller should run LoginFlow again.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	root := newMainAppModel(ctx, t.services, t.baseURL, t.logger, user)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
