package paths

import (
	"os"
	"path/filepath"
)

// GetSitegrabHome returns SITEGRAB_HOME or ~/.sitegrab default
func GetSitegrabHome() string {
	home := os.Getenv("SITEGRAB_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".sitegrab"
		}
		return filepath.Join(homeDir, ".sitegrab")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $SITEGRAB_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetSitegrabHome(), "settings.json")
}

// GetArchiveDir returns the default archive output directory, ~/Downloads when it exists
func GetArchiveDir() string {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		downloads := filepath.Join(homeDir, "Downloads")
		if info, err := os.Stat(downloads); err == nil && info.IsDir() {
			return downloads
		}
	}
	return filepath.Join(GetSitegrabHome(), "archives")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
