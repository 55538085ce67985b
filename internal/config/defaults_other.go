//go:build !windows

package config

const (
	defaultManagerURL     = "https://mirror.nju.edu.cn/github-release/conda-forge/miniforge/LatestRelease/Miniforge3-25.3.1-0-Linux-x86_64.sh"
	defaultInstallerPath  = "miniforge_installer.sh"
	defaultInstallCommand = "sh " + PlaceholderInstaller + " -b -u -p \"$HOME/miniforge3\""
	defaultActivate       = `eval "$(conda shell.posix hook)" && conda activate ` + PlaceholderEnv + ` && ` + PlaceholderCommand
)
