package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/conn-castle/cabm/internal/messages"
)

var executeFunc = execute

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// execute runs the CLI command with the provided args and output writers.
// Usage text is printed before cobra sees the args so unknown commands and a
// bare `use` never touch the network or spawn a process.
func execute(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) error {
	if shouldPrintUsage(args) {
		_, err := fmt.Fprint(stdout, messages.Usage)
		return err
	}
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	cmd.SetArgs(args[1:])
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

// runMain executes the CLI, exiting non-zero only when configuration or
// setup fails. Install and use failures are reported and exit 0.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := executeFunc(ctx, args, stdout, stderr); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		exit(1)
	}
}

// shouldPrintUsage reports whether args name no runnable command.
func shouldPrintUsage(args []string) bool {
	if len(args) < 2 {
		return true
	}
	switch args[1] {
	case messages.InstallUse:
		return false
	case messages.UseUse:
		return len(args) < 3
	case "--" + messages.RootVersionFlagName, "-" + messages.RootVersionFlagShort:
		return false
	}
	return true
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
