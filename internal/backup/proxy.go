// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backup forwards backup, restore and status requests to the external
// backup tool and relays its console output.
//
// The tool is run as <interpreter> <script> <verb> <args...>. Its output is
// copied line by line and never interpreted; success is exit code 0.
package backup

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/logger"
	"golang.org/x/sync/errgroup"
)

const (
	verbBackup  = "backup"
	verbRestore = "restore"
	verbStatus  = "status"

	fullBackup        = "1"
	incrementalBackup = "0"
)

// Proxy runs the backup tool. It is safe for concurrent use, although the
// tool itself may not be.
type Proxy struct {
	interpreter string
	script      string

	stdout io.Writer
	stderr io.Writer
	// writeMu keeps lines whole when stdout and stderr share a writer.
	writeMu sync.Mutex

	logger *logger.Logger
}

func NewProxy(cfg config.BackupConfig, stdout, stderr io.Writer, logger *logger.Logger) *Proxy {
	return &Proxy{
		interpreter: cfg.Interpreter,
		script:      cfg.Script,
		stdout:      stdout,
		stderr:      stderr,
		logger:      logger,
	}
}

// Backup backs destinationDir up, fully when full is set and incrementally
// otherwise.
func (p *Proxy) Backup(ctx context.Context, destinationDir string, full bool) bool {
	mode := incrementalBackup
	if full {
		mode = fullBackup
	}
	return p.run(ctx, verbBackup, destinationDir, mode)
}

// Restore restores userHash's data into destinationDir as of time. An empty
// time restores the latest backup.
func (p *Proxy) Restore(ctx context.Context, destinationDir, userHash, time string) bool {
	return p.run(ctx, verbRestore, destinationDir, userHash, time)
}

// Status prints the backup status for userHash, or the tool's default when
// userHash is empty.
func (p *Proxy) Status(ctx context.Context, userHash string) bool {
	return p.run(ctx, verbStatus, userHash)
}

func (p *Proxy) run(ctx context.Context, verb string, args ...string) bool {
	log := p.logger.With().Str("verb", verb).Logger()

	cmd := exec.CommandContext(ctx, p.interpreter, append([]string{p.script, verb}, args...)...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		log.Error().Err(err).Msg("backup tool stdout pipe")
		return false
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		log.Error().Err(err).Msg("backup tool stderr pipe")
		return false
	}

	if err = cmd.Start(); err != nil {
		log.Error().Err(err).Str("interpreter", p.interpreter).Msg("failed to start backup tool")
		return false
	}
	log.Debug().Int("pid", cmd.Process.Pid).Msg("backup tool started")

	var g errgroup.Group
	g.Go(func() error { return p.drain(stdout, p.stdout) })
	g.Go(func() error { return p.drain(stderr, p.stderr) })
	drainErr := g.Wait()

	err = cmd.Wait()
	if drainErr != nil {
		log.Warn().Err(drainErr).Msg("backup tool output was not fully forwarded")
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		log.Info().Msg("backup tool finished")
		return true
	case errors.As(err, &exitErr):
		log.Warn().Int("exit_code", exitErr.ExitCode()).Msg("backup tool failed")
	default:
		log.Error().Err(err).Msg("backup tool failed")
	}
	return false
}

// drain copies r to w one whole line at a time. After a write error it keeps
// reading so the child never blocks on a full pipe.
func (p *Proxy) drain(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadBytes('\n')
		if len(line) > 0 {
			if line[len(line)-1] != '\n' {
				line = append(line, '\n')
			}
			if err := p.writeLine(w, line); err != nil {
				_, _ = io.Copy(io.Discard, br)
				return fmt.Errorf("forward output: %w", err)
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return fmt.Errorf("read output: %w", readErr)
		}
	}
}

func (p *Proxy) writeLine(w io.Writer, line []byte) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	_, err := w.Write(line)
	return err
}
