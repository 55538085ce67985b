// Package install bootstraps the environment: distribution manager, virtual
// environment, then the dependency manifest.
package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/conn-castle/cabm/internal/config"
	"github.com/conn-castle/cabm/internal/logging"
	"github.com/conn-castle/cabm/internal/messages"
	"github.com/conn-castle/cabm/internal/runner"
)

// Step names, in plan order.
const (
	StepDownloadManager          = "download-manager"
	StepInstallManager           = "install-manager"
	StepCreateEnv                = "create-env"
	StepInstallRequirements      = "install-requirements"
	StepInstallRequirementsLocal = "install-requirements-local"
)

var filepathAbs = filepath.Abs

// Fetcher downloads url to dest.
type Fetcher interface {
	Fetch(ctx context.Context, url string, dest string) error
}

// Runner executes a command line and waits for it.
type Runner interface {
	Run(ctx context.Context, line string) (runner.Result, error)
}

// Options selects which stages run.
type Options struct {
	// SkipManagerInstall skips downloading and installing the distribution manager.
	SkipManagerInstall bool
	// UseLocalInterpreter skips the manager and the environment, installing the
	// manifest with whatever interpreter is on PATH.
	UseLocalInterpreter bool
	// DryRun prints the plan without running it.
	DryRun bool
}

// Step is one unit of the install plan. Every step is safe to re-run.
type Step struct {
	Name     string
	Progress string
	Failure  string
	// Detail is the command line, or the download source and destination.
	Detail string
	run    func(ctx context.Context) error
}

// StepError reports the step that stopped the flow.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Errorf(messages.InstallStepFailedFmt, e.Step, e.Err).Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Flow runs the install plan against a fetcher and a runner.
type Flow struct {
	Config  *config.Config
	Fetcher Fetcher
	Runner  Runner
	Out     io.Writer
	Logger  *slog.Logger
}

// Plan returns the ordered steps for opts.
func (f *Flow) Plan(opts Options) ([]Step, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	cfg := f.Config
	var steps []Step

	if !opts.SkipManagerInstall && !opts.UseLocalInterpreter {
		installer, err := filepathAbs(cfg.Manager.InstallerPath)
		if err != nil {
			return nil, fmt.Errorf(messages.InstallResolveInstallerFmt, cfg.Manager.InstallerPath, err)
		}
		url := cfg.Manager.URL
		steps = append(steps, Step{
			Name:     StepDownloadManager,
			Progress: messages.InstallDownloadingManager,
			Failure:  messages.InstallDownloadFailed,
			Detail:   url + " -> " + installer,
			run: func(ctx context.Context) error {
				return f.Fetcher.Fetch(ctx, url, installer)
			},
		})
		steps = append(steps, f.commandStep(StepInstallManager, messages.InstallInstallingManager,
			messages.InstallManagerFailed, cfg.InstallerCommand(runner.Quote(installer))))
	}

	if !opts.UseLocalInterpreter {
		steps = append(steps, f.commandStep(StepCreateEnv,
			fmt.Sprintf(messages.InstallCreatingEnvFmt, cfg.Environment.Python),
			messages.InstallCreateEnvFailed, cfg.Render(cfg.Commands.CreateEnv)))
		steps = append(steps, f.commandStep(StepInstallRequirements, messages.InstallRequirements,
			messages.InstallRequirementsFailed, cfg.Wrap(cfg.Render(cfg.Commands.InstallRequirements))))
	} else {
		steps = append(steps, f.commandStep(StepInstallRequirementsLocal, messages.InstallRequirementsLocal,
			messages.InstallRequirementsFailed, cfg.Render(cfg.Commands.InstallRequirements)))
	}
	return steps, nil
}

// Install runs the plan for opts, stopping at the first failed step.
// Progress, failure, and success lines go to Out. Nothing is rolled back on
// failure; re-running Install repeats the steps from the start.
func (f *Flow) Install(ctx context.Context, opts Options) error {
	steps, err := f.Plan(opts)
	if err != nil {
		return err
	}
	out := f.Out
	if out == nil {
		out = io.Discard
	}

	if opts.DryRun {
		_, _ = fmt.Fprintln(out, messages.InstallDryRunHeader)
		for i, step := range steps {
			_, _ = fmt.Fprintf(out, messages.InstallDryRunStepFmt, i+1, step.Name, step.Detail)
		}
		return nil
	}

	logger := logging.OrDiscard(f.Logger)
	for _, step := range steps {
		_, _ = fmt.Fprintln(out, step.Progress)
		logger.Debug(step.Name, "detail", step.Detail)
		if err := step.run(ctx); err != nil {
			_, _ = color.New(color.FgRed).Fprintln(out, fmt.Sprintf(messages.InstallStepDetailFmt, step.Failure, err))
			return &StepError{Step: step.Name, Err: err}
		}
	}
	_, _ = color.New(color.FgGreen).Fprintln(out, messages.InstallCompleted)
	return nil
}

func (f *Flow) commandStep(name string, progress string, failure string, line string) Step {
	return Step{
		Name:     name,
		Progress: progress,
		Failure:  failure,
		Detail:   line,
		run: func(ctx context.Context) error {
			_, err := f.Runner.Run(ctx, line)
			if !f.Config.Behavior.CheckExitCodes {
				err = runner.IgnoreExitStatus(err)
			}
			return err
		},
	}
}

func (f *Flow) validate() error {
	switch {
	case f.Config == nil:
		return errors.New(messages.InstallConfigRequired)
	case f.Fetcher == nil:
		return errors.New(messages.InstallFetcherRequired)
	case f.Runner == nil:
		return errors.New(messages.InstallRunnerRequired)
	}
	return nil
}
