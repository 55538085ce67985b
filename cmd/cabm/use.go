package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/cabm/internal/launch"
	"github.com/conn-castle/cabm/internal/messages"
)

func newUseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                messages.UseUse,
		Short:              messages.UseShort,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return printUsage(cmd)
			}
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			launcher := &launch.Launcher{
				Config: s.cfg,
				Runner: newRunner(cmd, s.cfg, s.logger),
				Out:    cmd.OutOrStdout(),
				Logger: s.logger,
			}
			if err := launcher.Use(cmd.Context(), args); err != nil {
				// Already reported as "Command failed."; the exit status stays 0.
				s.logger.Debug(messages.UseFailed, "error", err)
			}
			return nil
		},
	}
	return cmd
}
