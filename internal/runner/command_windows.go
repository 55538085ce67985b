//go:build windows

package runner

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/conn-castle/cabm/internal/messages"
)

// buildCommand resolves the program named by the first token and hands the
// whole line to CreateProcess unmodified, so quoting and `cmd /C "..."`
// constructs reach the child exactly as written.
func buildCommand(ctx context.Context, line string) (*exec.Cmd, error) {
	program, err := programName(line)
	if err != nil {
		return nil, err
	}
	path, err := exec.LookPath(program)
	if err != nil {
		return nil, err
	}
	cmd := exec.CommandContext(ctx, path)
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: line}
	return cmd, nil
}

// programName returns the program named by a Windows command line.
func programName(line string) (string, error) {
	if strings.TrimSpace(line) == "" {
		return "", errors.New(messages.RunnerEmptyCommand)
	}
	args, err := windows.DecomposeCommandLine(line)
	if err != nil {
		return "", err
	}
	if len(args) == 0 || args[0] == "" {
		return "", errors.New(messages.RunnerEmptyCommand)
	}
	return args[0], nil
}

// Quote returns arg quoted for a Windows command line.
func Quote(arg string) string {
	return windows.EscapeArg(arg)
}
