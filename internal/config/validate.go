package config

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/cabm/internal/messages"
)

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(source string) error {
	if strings.TrimSpace(c.Manager.URL) == "" {
		return fmt.Errorf(messages.ConfigManagerURLRequiredFmt, source)
	}
	parsed, err := url.Parse(c.Manager.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf(messages.ConfigManagerURLInvalidFmt, source, c.Manager.URL)
	}
	if strings.TrimSpace(c.Manager.InstallerPath) == "" {
		return fmt.Errorf(messages.ConfigInstallerPathRequiredFmt, source)
	}
	if strings.TrimSpace(c.Manager.InstallCommand) == "" {
		return fmt.Errorf(messages.ConfigKeyRequiredFmt, source, "manager.install_command")
	}

	name := c.Environment.Name
	if name == "" {
		return fmt.Errorf(messages.ConfigEnvNameRequiredFmt, source)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf(messages.ConfigEnvNameInvalidFmt, source, name)
	}
	if strings.TrimSpace(c.Environment.Python) == "" {
		return fmt.Errorf(messages.ConfigPythonRequiredFmt, source)
	}
	if _, err := semver.NewVersion(c.Environment.Python); err != nil {
		return fmt.Errorf(messages.ConfigPythonInvalidFmt, source, c.Environment.Python, err)
	}
	if strings.TrimSpace(c.Environment.Manifest) == "" {
		return fmt.Errorf(messages.ConfigManifestRequiredFmt, source)
	}

	if strings.TrimSpace(c.Commands.CreateEnv) == "" {
		return fmt.Errorf(messages.ConfigKeyRequiredFmt, source, "commands.create_env")
	}
	if strings.TrimSpace(c.Commands.InstallRequirements) == "" {
		return fmt.Errorf(messages.ConfigKeyRequiredFmt, source, "commands.install_requirements")
	}
	if !strings.Contains(c.Commands.Activate, PlaceholderCommand) {
		return fmt.Errorf(messages.ConfigActivatePlaceholderFmt, source, PlaceholderCommand)
	}

	if c.Behavior.MaxCommandLine < 0 {
		return fmt.Errorf(messages.ConfigMaxCommandLineFmt, source, c.Behavior.MaxCommandLine)
	}
	return nil
}
