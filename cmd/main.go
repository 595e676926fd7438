package main

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/ksdme/shades/internal/commands"
	"github.com/ksdme/shades/internal/config"
	"github.com/ksdme/shades/internal/utils"
)

func main() {
	slog.SetLogLoggerLevel(config.Core.LogLevel())

	args := commands.Defaults()
	if retcode, consumed := utils.ParseArgs(os.Stdout, os.Stderr, "shades", os.Args[1:], &args); consumed {
		os.Exit(retcode)
	}

	code, err := commands.Run(os.Stdout, args, lipgloss.NewRenderer(os.Stdout))
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "error:", err.Error())
	}
	os.Exit(code)
}
