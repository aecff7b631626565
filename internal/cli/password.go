package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// passwordEnv names the environment variable sync reads the password from.
const passwordEnv = "STOQ_PASSWORD"

// stdinTerminal reports whether the process stdin is an interactive terminal
// and, if so, its file descriptor. Replaced in tests.
var stdinTerminal = func() (int, bool) {
	fd := int(os.Stdin.Fd())
	return fd, term.IsTerminal(fd)
}

var readTerminalPassword = term.ReadPassword

// syncPassword resolves the sync password in order: --password-stdin, the
// --password flag, STOQ_PASSWORD, then an echo-free terminal prompt. An empty
// result means none was available.
func syncPassword(cmd *cobra.Command, flagValue string, fromStdin bool) (string, error) {
	if fromStdin {
		return readPasswordLine(cmd.InOrStdin())
	}
	if flagValue != "" {
		return flagValue, nil
	}
	if password := os.Getenv(passwordEnv); password != "" {
		return password, nil
	}

	fd, ok := stdinTerminal()
	if !ok {
		return "", nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	password, err := readTerminalPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}

// readPasswordLine returns the first line of r without its line ending.
func readPasswordLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
