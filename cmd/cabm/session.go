package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/cabm/internal/config"
	"github.com/conn-castle/cabm/internal/fetch"
	"github.com/conn-castle/cabm/internal/install"
	"github.com/conn-castle/cabm/internal/logging"
	"github.com/conn-castle/cabm/internal/messages"
	"github.com/conn-castle/cabm/internal/runner"
)

// commandRunner is satisfied by *runner.Runner and by test fakes.
type commandRunner interface {
	Run(ctx context.Context, line string) (runner.Result, error)
}

var (
	getwd  = os.Getwd
	getenv = os.Getenv

	newFetcher = func(cfg *config.Config, logger *slog.Logger) install.Fetcher {
		return fetch.New(cfg.Manager.UserAgent, cfg.Behavior.CheckHTTPStatus, logger)
	}
	newRunner = func(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) commandRunner {
		r := runner.New(cfg.Behavior.MaxCommandLine, logger)
		r.Stdin = cmd.InOrStdin()
		r.Stdout = cmd.OutOrStdout()
		r.Stderr = cmd.ErrOrStderr()
		return r
	}
)

// session holds the loaded config and diagnostics logger for one invocation.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
}

// loadSession discovers the config from CABM_CONFIG or the working directory.
func loadSession(cmd *cobra.Command) (*session, error) {
	logger := logging.New(cmd.ErrOrStderr(), getenv)
	cwd, err := getwd()
	if err != nil {
		return nil, err
	}
	cfg, source, err := config.Discover(getenv, cwd)
	if err != nil {
		return nil, err
	}
	logger.Debug(messages.ConfigLoaded, "source", source)
	return &session{cfg: cfg, logger: logger}, nil
}
