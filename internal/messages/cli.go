package messages

// CLI messages for user-facing commands and usage text.
const (
	// RootUse is the CLI command name.
	RootUse = "cabm"
	// RootShort is the short description for the root command.
	RootShort       = "CABM Installation Manager"
	RootVersionFlag = "Print version and exit"

	RootVersionFlagName  = "version"
	RootVersionFlagShort = "v"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// Usage is printed for missing or unrecognized commands.
	Usage = `CABM Installation Manager
Usage:
  install [options]         - Install CABM environment
  use <command>             - Run command in CABM environment
Options:
  all                       - Install everything (default)
  --use-local-conda         - Skip Miniforge installation
  --use-local-python        - Use local Python, only install requirements
  --dry-run                 - Print the install steps without running them

Environment:
  CABM_CONFIG               - Path to a TOML config file (default: ./cabm.toml if present)
  CABM_DEBUG                - Write debug logs to stderr when set

Examples:
  cabm install
  cabm use python run.py

`

	// InstallUse is the install command name.
	InstallUse   = "install"
	InstallShort = "Install the CABM environment"

	// InstallFlagUseLocalConda and the other option names are matched after a "--" prefix.
	InstallFlagUseLocalConda  = "use-local-conda"
	InstallFlagUseLocalPython = "use-local-python"
	InstallFlagDryRun         = "dry-run"

	// UseUse is the use command name.
	UseUse   = "use"
	UseShort = "Run a command in the CABM environment"
	// UseFailed is logged when the wrapped command fails.
	UseFailed = "use command failed"
)
