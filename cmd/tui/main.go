package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ksdme/shades/internal/commands"
	"github.com/ksdme/shades/internal/config"
	"github.com/ksdme/shades/internal/tui/colors"
	"github.com/ksdme/shades/internal/tui/menu"
)

func main() {
	slog.SetLogLoggerLevel(config.Core.LogLevel())

	args := commands.Defaults()
	renderer := lipgloss.DefaultRenderer()

	program := tea.NewProgram(
		menu.NewModel(
			args.Style(),
			renderer,
			colors.ForTable(args.Table, args.Style(), renderer.HasDarkBackground()),
		),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		slog.Error("could not run the tui", "err", err)
		os.Exit(1)
	}
}
