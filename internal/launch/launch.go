// Package launch runs user commands inside the activated environment.
package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/cabm/internal/config"
	"github.com/conn-castle/cabm/internal/logging"
	"github.com/conn-castle/cabm/internal/messages"
	"github.com/conn-castle/cabm/internal/runner"
)

// Runner executes a command line and waits for it.
type Runner interface {
	Run(ctx context.Context, line string) (runner.Result, error)
}

// Launcher wraps commands in the environment activation command.
type Launcher struct {
	Config *config.Config
	Runner Runner
	Out    io.Writer
	Logger *slog.Logger
}

// Command joins args with single spaces and wraps the result for the environment.
func (l *Launcher) Command(args []string) string {
	return l.Config.Wrap(strings.Join(args, " "))
}

// Use runs args inside the environment and blocks until the command exits.
func (l *Launcher) Use(ctx context.Context, args []string) error {
	if l.Config == nil {
		return errors.New(messages.LaunchConfigRequired)
	}
	if l.Runner == nil {
		return errors.New(messages.LaunchRunnerRequired)
	}
	if len(args) == 0 {
		return errors.New(messages.LaunchCommandRequired)
	}
	out := l.Out
	if out == nil {
		out = io.Discard
	}

	userCmd := strings.Join(args, " ")
	_, _ = fmt.Fprintf(out, messages.LaunchRunningFmt, userCmd)
	line := l.Command(args)
	logging.OrDiscard(l.Logger).Debug(messages.RunnerStarting, "command", line)

	_, err := l.Runner.Run(ctx, line)
	if !l.Config.Behavior.CheckExitCodes {
		err = runner.IgnoreExitStatus(err)
	}
	if err != nil {
		_, _ = color.New(color.FgRed).Fprintln(out, messages.LaunchFailed)
		return err
	}
	return nil
}
