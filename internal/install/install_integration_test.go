//go:build !windows

package install

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/cabm/internal/config"
	"github.com/conn-castle/cabm/internal/fetch"
	"github.com/conn-castle/cabm/internal/runner"
	"github.com/conn-castle/cabm/internal/testutil"
)

func integrationFlow(t *testing.T, status int) (*Flow, string, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	logPath := filepath.Join(dir, "calls.log")
	binDir := filepath.Join(dir, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))
	testutil.WriteRecordingStub(t, binDir, "conda", logPath, 0)
	testutil.WriteRecordingStub(t, binDir, "pip", logPath, 0)
	testutil.PrependPath(t, binDir)

	script := fmt.Sprintf("#!/bin/sh\necho \"installer $*\" >> '%s'\n", logPath)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(script))
	}))
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.Manager.URL = srv.URL + "/Miniforge3-Linux-x86_64.sh"
	cfg.Manager.InstallerPath = filepath.Join(dir, "miniforge_installer.sh")
	cfg.Manager.InstallCommand = "sh {installer} -b"
	cfg.Commands.Activate = "conda activate {env} && {command}"

	var out bytes.Buffer
	run := &runner.Runner{Stdout: &out, Stderr: &out, MaxCommandLine: cfg.Behavior.MaxCommandLine}
	flow := &Flow{
		Config:  cfg,
		Fetcher: fetch.New(cfg.Manager.UserAgent, cfg.Behavior.CheckHTTPStatus, nil),
		Runner:  run,
		Out:     &out,
	}
	return flow, logPath, &out
}

func TestInstallEndToEndWithStubs(t *testing.T) {
	flow, logPath, out := integrationFlow(t, http.StatusOK)

	require.NoError(t, flow.Install(context.Background(), Options{}))
	require.Equal(t, []string{
		"installer -b",
		"conda create -n cabm python=3.10 -y",
		"conda activate cabm",
		"pip install -r requirements.txt",
	}, testutil.ReadLines(t, logPath))
	require.Contains(t, out.String(), "Installation completed successfully!")
}

func TestInstallEndToEndHTTPErrorRunsNothing(t *testing.T) {
	flow, logPath, out := integrationFlow(t, http.StatusNotFound)

	err := flow.Install(context.Background(), Options{})
	require.Error(t, err)
	require.True(t, fetch.IsKind(err, fetch.KindStatus))
	require.Empty(t, testutil.ReadLines(t, logPath))
	require.Contains(t, out.String(), "Failed to download Miniforge")
}
