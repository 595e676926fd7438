package utils

import (
	"fmt"
	"io"

	"github.com/alexflint/go-arg"
)

// Parses args using go-arg and returns a boolean value indicating if the
// parse consumed the invocation. This usually happens when the client is
// requesting usage information or passed bad arguments, retcode is what the
// invocation should exit with in that case.
func ParseArgs(stdout io.Writer, stderr io.Writer, name string, args []string, destination any) (retcode int, consumed bool) {
	parser, err := arg.NewParser(arg.Config{Program: name}, destination)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err.Error())
		return 255, true
	}

	// Borrowed from MustParse.
	err = parser.Parse(args)
	switch err {
	case nil:
		return 0, false

	case arg.ErrHelp:
		parser.WriteHelpForSubcommand(stdout, parser.SubcommandNames()...)
		return 0, true

	case arg.ErrVersion:
		fmt.Fprintln(stdout, "unknown")
		return 0, true

	default:
		parser.WriteUsageForSubcommand(stderr, parser.SubcommandNames()...)
		fmt.Fprintln(stderr, "error:", err.Error())
		return 255, true
	}
}
