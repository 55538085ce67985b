//go:build !windows

package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestWriteStubWithExitCreatesExecutableWithRequestedExitCode(t *testing.T) {
	dir := t.TempDir()
	stubPath := filepath.Join(dir, "exit-stub")
	WriteStubWithExit(t, dir, "exit-stub", 7)

	info, err := os.Stat(stubPath)
	if err != nil {
		t.Fatalf("stat stub: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Fatalf("expected mode 0755, got %#o", info.Mode().Perm())
	}

	cmd := exec.Command(stubPath)
	err = cmd.Run()
	if err == nil {
		t.Fatal("expected non-zero exit status")
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T", err)
	}
	if exitErr.ExitCode() != 7 {
		t.Fatalf("expected exit code 7, got %d", exitErr.ExitCode())
	}
}

func TestWriteRecordingStubAppendsInvocations(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "calls.log")
	WriteRecordingStub(t, dir, "pip", logPath, 0)

	for _, args := range [][]string{{"install", "-r", "requirements.txt"}, {"--version"}} {
		if err := exec.Command(filepath.Join(dir, "pip"), args...).Run(); err != nil {
			t.Fatalf("run stub: %v", err)
		}
	}

	lines := ReadLines(t, logPath)
	want := []string{"pip install -r requirements.txt", "pip --version"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	if lines := ReadLines(t, filepath.Join(t.TempDir(), "none.log")); lines != nil {
		t.Fatalf("expected nil, got %q", lines)
	}
}

func TestPrependPath(t *testing.T) {
	dir := t.TempDir()
	PrependPath(t, dir)
	WriteStubWithExit(t, dir, "cabm-test-stub", 0)
	if _, err := exec.LookPath("cabm-test-stub"); err != nil {
		t.Fatalf("expected stub on PATH: %v", err)
	}
}

func TestWithWorkingDirRunsInTargetDirectoryAndRestoresOriginal(t *testing.T) {
	targetDir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd before test: %v", err)
	}

	var observedDir string
	WithWorkingDir(t, targetDir, func() {
		wd, innerErr := os.Getwd()
		if innerErr != nil {
			t.Fatalf("getwd inside callback: %v", innerErr)
		}
		observedDir = wd
	})

	targetReal, err := filepath.EvalSymlinks(targetDir)
	if err != nil {
		targetReal = targetDir
	}
	observedReal, err := filepath.EvalSymlinks(observedDir)
	if err != nil {
		observedReal = observedDir
	}
	if observedReal != targetReal {
		t.Fatalf("expected callback cwd %q (real %q), got %q (real %q)", targetDir, targetReal, observedDir, observedReal)
	}

	finalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd after callback: %v", err)
	}
	if finalDir != origDir {
		t.Fatalf("expected cwd restored to %q, got %q", origDir, finalDir)
	}
}
