package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/conn-castle/cabm/internal/install"
	"github.com/conn-castle/cabm/internal/messages"
)

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		// Options are matched as exact tokens; anything else, including
		// `all`, `--help`, and `--use-local-conda=yes`, is ignored.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			flow := &install.Flow{
				Config:  s.cfg,
				Fetcher: newFetcher(s.cfg, s.logger),
				Runner:  newRunner(cmd, s.cfg, s.logger),
				Out:     cmd.OutOrStdout(),
				Logger:  s.logger,
			}
			err = flow.Install(cmd.Context(), installOptions(args))
			var stepErr *install.StepError
			if errors.As(err, &stepErr) {
				// Already reported on stdout.
				s.logger.Debug(messages.InstallStopped, "step", stepErr.Step, "error", stepErr.Err)
				return nil
			}
			return err
		},
	}
	return cmd
}

// installOptions maps install tokens to options. Order does not matter.
func installOptions(args []string) install.Options {
	var opts install.Options
	for _, arg := range args {
		switch arg {
		case "--" + messages.InstallFlagUseLocalConda:
			opts.SkipManagerInstall = true
		case "--" + messages.InstallFlagUseLocalPython:
			opts.UseLocalInterpreter = true
		case "--" + messages.InstallFlagDryRun:
			opts.DryRun = true
		}
	}
	return opts
}
