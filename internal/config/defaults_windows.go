//go:build windows

package config

const (
	defaultManagerURL     = "https://mirror.nju.edu.cn/github-release/conda-forge/miniforge/LatestRelease/Miniforge3-25.3.1-0-Windows-x86_64.exe"
	defaultInstallerPath  = "miniforge_installer.exe"
	defaultInstallCommand = PlaceholderInstaller + " /S /RegisterPython=0 /AddToPath=0 /InstallationType=JustMe"
	defaultActivate       = `cmd /C "conda activate ` + PlaceholderEnv + ` && ` + PlaceholderCommand + `"`
)
