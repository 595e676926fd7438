package utils

import (
	"fmt"

	"github.com/charmbracelet/ssh"
)

// Reports an error to the client on the stderr channel of the session.
func WriteErrorToSSH(s ssh.Session, err error) {
	fmt.Fprintln(s.Stderr(), "error:", err.Error())
}
