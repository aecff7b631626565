// Package launcher starts the executable bundle once the bundle set has
// been synchronized.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/models"
)

var (
	ErrNoExecutable = errors.New("no executable bundle to launch")
	ErrStart        = errors.New("failed to start application")
)

// ExitError reports a non-zero exit of the launched application.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("application exited with code %d", e.Code)
}

type Launcher struct {
	interpreter   string
	searchPathEnv string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	notify func(c chan<- os.Signal, sig ...os.Signal)
	stop   func(c chan<- os.Signal)

	logger *logger.Logger
}

func NewLauncher(cfg config.ClientLaunch, logger *logger.Logger) *Launcher {
	return &Launcher{
		interpreter:   cfg.Interpreter,
		searchPathEnv: cfg.SearchPathEnv,
		stdin:         os.Stdin,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
		notify:        signal.Notify,
		stop:          signal.Stop,
		logger:        logger,
	}
}

// Launch runs <interpreter> <executable bundle> with the synchronized bundle
// paths prepended to the search path variable and waits for it to exit.
//
// SIGINT and SIGTERM received meanwhile, as well as cancellation of ctx, are
// passed on to the application as SIGTERM. The application decides when to
// exit; Launch keeps waiting.
func (l *Launcher) Launch(ctx context.Context, result models.SyncResult) error {
	if result.ExecutablePath == "" {
		return ErrNoExecutable
	}

	cmd := exec.Command(l.interpreter, result.ExecutablePath)
	cmd.Env = BuildEnv(os.Environ(), l.searchPathEnv, result.SearchPaths)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = l.stdin, l.stdout, l.stderr

	signals := make(chan os.Signal, 1)
	l.notify(signals, os.Interrupt, syscall.SIGTERM)
	defer l.stop(signals)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %w", ErrStart, err)
	}

	log := l.logger.ForAttempt(result.AttemptID)
	log.Info().
		Int("pid", cmd.Process.Pid).
		Str("executable", result.ExecutablePath).
		Msg("application started")

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	cancelled := ctx.Done()
	for {
		select {
		case err := <-done:
			return l.exitResult(log, err)
		case sig := <-signals:
			log.Info().Str("signal", sig.String()).Msg("forwarding termination to application")
			terminate(cmd.Process)
		case <-cancelled:
			cancelled = nil
			log.Info().Msg("launch cancelled, terminating application")
			terminate(cmd.Process)
		}
	}
}

func (l *Launcher) exitResult(log *logger.Logger, err error) error {
	if err == nil {
		log.Info().Msg("application exited")
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		log.Warn().Int("exit_code", exitErr.ExitCode()).Msg("application exited with error")
		return &ExitError{Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("wait for application: %w", err)
}

// terminate asks the process to stop, killing it where termination signals
// are not supported.
func terminate(p *os.Process) {
	if err := p.Signal(syscall.SIGTERM); err != nil && !errors.Is(err, os.ErrProcessDone) {
		_ = p.Kill()
	}
}

// BuildEnv returns environ with paths prepended to the variable name. Paths
// are joined with the OS list separator; an empty existing value is dropped
// rather than leaving a trailing separator. Earlier definitions of name are
// removed.
func BuildEnv(environ []string, name string, paths []string) []string {
	prefix := name + "="

	existing := ""
	env := make([]string, 0, len(environ)+1)
	for _, kv := range environ {
		if strings.HasPrefix(kv, prefix) {
			existing = kv[len(prefix):]
			continue
		}
		env = append(env, kv)
	}

	parts := make([]string, 0, len(paths)+1)
	for _, p := range paths {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if existing != "" {
		parts = append(parts, existing)
	}
	if len(parts) == 0 {
		return env
	}

	return append(env, prefix+strings.Join(parts, string(os.PathListSeparator)))
}
