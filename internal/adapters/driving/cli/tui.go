package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tpgillam/cuneifyplus/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive converter",
	Long: `Launch the interactive terminal converter.

Type a line of transliteration and press Enter to see its cuneiform
rendering. Recent conversions stay on screen.

Controls:
  Enter - Convert
  Esc   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if cuneifyService == nil {
		return errors.New("cuneify service not configured")
	}

	app := tui.NewApp(cuneifyService).WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
