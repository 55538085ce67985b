package messages

// Installer flow and launcher messages.
const (
	InstallDownloadingManager = "Downloading Miniforge..."
	InstallDownloadFailed     = "Failed to download Miniforge"
	InstallInstallingManager  = "Installing Miniforge..."
	InstallManagerFailed      = "Failed to install Miniforge"

	// InstallCreatingEnvFmt formats the env creation progress line with the interpreter version.
	InstallCreatingEnvFmt     = "Creating Python %s environment..."
	InstallCreateEnvFailed    = "Failed to create Python environment"
	InstallRequirements       = "Installing requirements..."
	InstallRequirementsLocal  = "Installing requirements using local Python..."
	InstallRequirementsFailed = "Failed to install requirements"
	InstallCompleted          = "Installation completed successfully!"

	InstallDryRunHeader  = "Planned steps:"
	InstallDryRunStepFmt = "  %d. %s: %s\n"
	InstallStepDetailFmt = "%s: %v"

	InstallStepFailedFmt       = "step %s failed: %w"
	InstallConfigRequired      = "install config is required"
	InstallFetcherRequired     = "install fetcher is required"
	InstallRunnerRequired      = "install runner is required"
	InstallResolveInstallerFmt = "resolve installer path %s: %w"
	// InstallStopped is logged when a step failure ends the flow.
	InstallStopped = "install stopped"

	// LaunchRunningFmt formats the command echo printed before running it.
	LaunchRunningFmt      = "[CABM] Running: %s\n"
	LaunchFailed          = "Command failed."
	LaunchCommandRequired = "command is required"
	LaunchConfigRequired  = "launch config is required"
	LaunchRunnerRequired  = "launch runner is required"
)
