package messages

// Config messages for configuration loading and validation.
const (
	// ConfigReadFileFmt formats config read errors.
	ConfigReadFileFmt              = "read config %s: %w"
	ConfigInvalidConfigFmt         = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt      = "unrecognized keys in %s: %v"
	ConfigValidationGuidance       = "(valid sections: manager, environment, commands, behavior)"
	ConfigExpandPathFmt            = "%s: expand %s: %w"
	ConfigManagerURLRequiredFmt    = "%s: manager.url is required"
	ConfigManagerURLInvalidFmt     = "%s: manager.url %q must be an http or https URL"
	ConfigInstallerPathRequiredFmt = "%s: manager.installer_path is required"
	ConfigEnvNameRequiredFmt       = "%s: environment.name is required"
	ConfigEnvNameInvalidFmt        = "%s: environment.name %q must not contain whitespace"
	ConfigPythonRequiredFmt        = "%s: environment.python is required"
	ConfigPythonInvalidFmt         = "%s: environment.python %q is not a valid version: %v"
	ConfigManifestRequiredFmt      = "%s: environment.manifest is required"
	ConfigKeyRequiredFmt           = "%s: %s is required"
	ConfigActivatePlaceholderFmt   = "%s: commands.activate must contain %s"
	ConfigMaxCommandLineFmt        = "%s: behavior.max_command_line must be >= 0 (got %d)"

	ConfigDefaultSource = "built-in defaults"
	ConfigLoaded        = "loaded config"
)
