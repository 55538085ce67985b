// Package runner spawns command lines through the platform command interpreter.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"unicode/utf8"

	"github.com/conn-castle/cabm/internal/logging"
	"github.com/conn-castle/cabm/internal/messages"
)

// Result describes a child process that was started.
type Result struct {
	// CommandLine is the line actually executed, after truncation.
	CommandLine string
	ExitCode    int
	Truncated   bool
}

// SpawnError reports that the child process could not be created.
type SpawnError struct {
	CommandLine string
	Err         error
}

func (e *SpawnError) Error() string {
	return fmt.Errorf(messages.RunnerSpawnFailedFmt, e.CommandLine, e.Err).Error()
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ExitError reports that the child ran and exited with a non-zero status.
type ExitError struct {
	CommandLine string
	Code        int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf(messages.RunnerExitFailedFmt, e.CommandLine, e.Code)
}

// IsSpawnError reports whether err means the process never started.
func IsSpawnError(err error) bool {
	var spawnErr *SpawnError
	return errors.As(err, &spawnErr)
}

// IsExitError reports whether err means the process ran and exited non-zero.
func IsExitError(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}

// IgnoreExitStatus drops *ExitError so a child that ran but failed counts as success.
// Spawn failures and other errors are returned unchanged.
func IgnoreExitStatus(err error) error {
	if IsExitError(err) {
		return nil
	}
	return err
}

// Runner starts one child at a time and waits for it.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Env is the child environment; nil inherits the current process environment.
	Env []string
	// MaxCommandLine caps the command line in bytes; 0 means no cap.
	MaxCommandLine int
	Logger         *slog.Logger
}

// New returns a Runner attached to the current process stdio.
func New(maxCommandLine int, logger *slog.Logger) *Runner {
	return &Runner{
		Stdin:          os.Stdin,
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		MaxCommandLine: maxCommandLine,
		Logger:         logger,
	}
}

// Run executes line and blocks until the child exits.
// It returns *SpawnError when the child cannot be started and *ExitError when
// it exits with a non-zero status; Result.ExitCode is set in both the success
// and ExitError cases.
func (r *Runner) Run(ctx context.Context, line string) (Result, error) {
	logger := logging.OrDiscard(r.Logger)
	line, truncated := truncateCommandLine(line, r.MaxCommandLine)
	result := Result{CommandLine: line, Truncated: truncated}
	if truncated {
		logger.Warn(messages.RunnerTruncated, "limit", r.MaxCommandLine, "command", line)
	}
	if line == "" {
		return result, &SpawnError{CommandLine: line, Err: errors.New(messages.RunnerEmptyCommand)}
	}

	cmd, err := buildCommand(ctx, line)
	if err != nil {
		return result, &SpawnError{CommandLine: line, Err: err}
	}
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Env = r.Env

	logger.Debug(messages.RunnerStarting, "command", line)
	if err := cmd.Start(); err != nil {
		return result, &SpawnError{CommandLine: line, Err: err}
	}
	err = cmd.Wait()
	result.ExitCode = cmd.ProcessState.ExitCode()
	logger.Debug(messages.RunnerExited, "command", line, "code", result.ExitCode)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return result, &ExitError{CommandLine: line, Code: exitErr.ExitCode()}
		}
		return result, fmt.Errorf(messages.RunnerWaitFailedFmt, line, err)
	}
	return result, nil
}

// truncateCommandLine cuts line to at most limit bytes without splitting a UTF-8 sequence.
func truncateCommandLine(line string, limit int) (string, bool) {
	if limit <= 0 || len(line) <= limit {
		return line, false
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(line[cut]) {
		cut--
	}
	return line[:cut], true
}
