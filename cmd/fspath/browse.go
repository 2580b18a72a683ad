package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/michaelscutari/fspath/internal/pathutil"
	"github.com/michaelscutari/fspath/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [DIR]",
	Short: "Browse a directory interactively",
	Long:  `Open an interactive TUI to walk directories and show URL paths below the document root.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	model := tui.NewModel(osFs, pathutil.Join(dir), docRoot)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
