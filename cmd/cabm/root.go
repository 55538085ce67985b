package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/cabm/internal/messages"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printUsage(cmd)
		},
	}
	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		_ = printUsage(cmd)
	})
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().BoolP(messages.RootVersionFlagName, messages.RootVersionFlagShort, false, messages.RootVersionFlag)

	cmd.AddCommand(newInstallCmd(), newUseCmd())
	return cmd
}

func printUsage(cmd *cobra.Command) error {
	_, err := fmt.Fprint(cmd.OutOrStdout(), messages.Usage)
	return err
}
