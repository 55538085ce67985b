//go:build !windows

package runner

import (
	"context"
	"os/exec"

	"github.com/alessio/shellescape"
)

// shellPath is the interpreter handed every command line.
var shellPath = "/bin/sh"

// buildCommand runs line through the POSIX shell so operators and builtins resolve.
func buildCommand(ctx context.Context, line string) (*exec.Cmd, error) {
	return exec.CommandContext(ctx, shellPath, "-c", line), nil
}

// Quote returns arg quoted for the POSIX shell.
func Quote(arg string) string {
	return shellescape.Quote(arg)
}
