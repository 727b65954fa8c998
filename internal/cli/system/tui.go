package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BinadaPasandul/pulse/internal/cli"
	"github.com/BinadaPasandul/pulse/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.Store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
