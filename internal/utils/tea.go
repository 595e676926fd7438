package utils

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/muesli/termenv"
)

// Run a bubble tea program on the session. The model is built with a
// renderer that writes to the session, so colors follow the client.
func RunTeaInSession(next ssh.Handler, session ssh.Session, build func(*lipgloss.Renderer) tea.Model) {
	middleware := bubbletea.MiddlewareWithColorProfile(func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		options := []tea.ProgramOption{tea.WithAltScreen()}
		return build(bubbletea.MakeRenderer(s)), options
	}, termenv.ANSI)

	middleware(next)(session)
}
