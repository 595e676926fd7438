package server

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/logging"
	"github.com/ksdme/shades/internal/commands"
	"github.com/ksdme/shades/internal/metrics"
	"github.com/ksdme/shades/internal/tui/colors"
	"github.com/ksdme/shades/internal/tui/menu"
	"github.com/ksdme/shades/internal/utils"
	"github.com/pkg/errors"
	gossh "golang.org/x/crypto/ssh"
)

const program = "ssh shades"

// Builds the ssh server. Interactive sessions without a command get the
// table menu, everything else is treated as a command.
func New(addr string, hostKeyPath string) (*ssh.Server, error) {
	server, err := wish.NewServer(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
			slog.Debug("accepted key", "user", ctx.User(), "fingerprint", gossh.FingerprintSHA256(key))
			return true
		}),
		wish.WithMiddleware(
			Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not create the ssh server")
	}

	return server, nil
}

// Handles a session, the middleware ends the chain.
func Middleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(session ssh.Session) {
			session.Exit(Handle(next, session))
		}
	}
}

// Serves the session and returns its exit code.
func Handle(next ssh.Handler, session ssh.Session) int {
	args := commands.Defaults()
	_, _, interactive := session.Pty()

	if interactive && len(session.Command()) == 0 {
		metrics.Sessions.WithLabelValues(metrics.ModeInteractive).Inc()

		style := args.Style()
		utils.RunTeaInSession(next, session, func(renderer *lipgloss.Renderer) tea.Model {
			return menu.NewModel(
				style,
				renderer,
				colors.ForTable(args.Table, style, renderer.HasDarkBackground()),
			)
		})
		return commands.ExitOK
	}

	metrics.Sessions.WithLabelValues(metrics.ModeCommand).Inc()

	retcode, consumed := utils.ParseArgs(session, session.Stderr(), program, session.Command(), &args)
	if consumed {
		return retcode
	}

	name := commands.Name(args)
	code, err := commands.Run(session, args, lipgloss.NewRenderer(session))
	metrics.RecordCommand(name, err)
	if err != nil {
		slog.Debug("command failed", "command", name, "err", err)
		utils.WriteErrorToSSH(session, err)
	}

	return code
}
