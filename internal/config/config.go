package config

import "strings"

// Placeholders substituted by Render.
const (
	PlaceholderEnv      = "{env}"
	PlaceholderPython   = "{python}"
	PlaceholderManifest = "{manifest}"
	PlaceholderCommand  = "{command}"
	// PlaceholderInstaller is only meaningful in manager.install_command.
	PlaceholderInstaller = "{installer}"
)

// Config holds everything the installer and launcher need.
// Values not set in a config file keep their Default() value.
type Config struct {
	Manager     ManagerConfig     `toml:"manager"`
	Environment EnvironmentConfig `toml:"environment"`
	Commands    CommandsConfig    `toml:"commands"`
	Behavior    BehaviorConfig    `toml:"behavior"`
}

// ManagerConfig describes the distribution manager installer download.
type ManagerConfig struct {
	URL           string `toml:"url"`
	InstallerPath string `toml:"installer_path"`
	// InstallCommand runs the downloaded installer silently; see PlaceholderInstaller.
	InstallCommand string `toml:"install_command"`
	UserAgent      string `toml:"user_agent"`
}

// EnvironmentConfig names the virtual environment and its dependency manifest.
type EnvironmentConfig struct {
	Name     string `toml:"name"`
	Python   string `toml:"python"`
	Manifest string `toml:"manifest"`
}

// CommandsConfig holds command line templates. See the Placeholder constants.
type CommandsConfig struct {
	CreateEnv           string `toml:"create_env"`
	Activate            string `toml:"activate"`
	InstallRequirements string `toml:"install_requirements"`
}

// BehaviorConfig toggles strictness.
//
// CheckHTTPStatus and CheckExitCodes default to true. Setting them to false
// restores the lenient behavior where any HTTP response body is saved and
// a child that exits non-zero still counts as success.
type BehaviorConfig struct {
	CheckHTTPStatus bool `toml:"check_http_status"`
	CheckExitCodes  bool `toml:"check_exit_codes"`
	// MaxCommandLine caps command lines in bytes; 0 disables the cap.
	MaxCommandLine int `toml:"max_command_line"`
}

// DefaultMaxCommandLine matches a 1024-byte command buffer minus its terminator.
const DefaultMaxCommandLine = 1023

// Default returns the built-in configuration for the current platform.
func Default() *Config {
	return &Config{
		Manager: ManagerConfig{
			URL:            defaultManagerURL,
			InstallerPath:  defaultInstallerPath,
			InstallCommand: defaultInstallCommand,
			UserAgent:      "CABM_Installer",
		},
		Environment: EnvironmentConfig{
			Name:     "cabm",
			Python:   "3.10",
			Manifest: "requirements.txt",
		},
		Commands: CommandsConfig{
			CreateEnv:           "conda create -n " + PlaceholderEnv + " python=" + PlaceholderPython + " -y",
			Activate:            defaultActivate,
			InstallRequirements: "pip install -r " + PlaceholderManifest,
		},
		Behavior: BehaviorConfig{
			CheckHTTPStatus: true,
			CheckExitCodes:  true,
			MaxCommandLine:  DefaultMaxCommandLine,
		},
	}
}

// Render substitutes environment placeholders in tmpl.
// {command} is left untouched; use Wrap to fill it.
func (c *Config) Render(tmpl string) string {
	return strings.NewReplacer(
		PlaceholderEnv, c.Environment.Name,
		PlaceholderPython, c.Environment.Python,
		PlaceholderManifest, c.Environment.Manifest,
	).Replace(tmpl)
}

// InstallerCommand returns the manager install command for the installer at path.
// path should already be quoted for the platform command interpreter.
func (c *Config) InstallerCommand(path string) string {
	return strings.Replace(c.Render(c.Manager.InstallCommand), PlaceholderInstaller, path, 1)
}

// Wrap returns the activation command that runs command inside the environment.
func (c *Config) Wrap(command string) string {
	activate := c.Render(c.Commands.Activate)
	return strings.Replace(activate, PlaceholderCommand, command, 1)
}
