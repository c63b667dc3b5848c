package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/service"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

type TUI struct {
	client    service.SyncClient
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(client service.SyncClient, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{
		client:         client,
		buildInfo:      buildInfo,
		logger:         log,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run shows the dashboard and blocks until the user quits or ctx is
// cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newDashboardModel(ctx, t.client, t.buildInfo)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	_, err := tea.NewProgram(model, opts...).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Msg("dashboard closed by context")
		return nil
	}
	if err != nil {
		return err
	}

	t.logger.Info().Msg("dashboard closed by user")
	return nil
}
