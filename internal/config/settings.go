package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/renato0307/sitegrab/paths"
)

// Settings represents the structure of ~/.sitegrab/settings.json
type Settings struct {
	Addr                 string      `json:"addr,omitempty"`
	AllowedOrigins       StringArray `json:"allowed_origins,omitempty"`
	DBPath               string      `json:"db_path,omitempty"`
	Debug                *bool       `json:"debug,omitempty"`
	FetchTimeoutSeconds  *int        `json:"fetch_timeout_seconds,omitempty"`
	MaxArchiveBytes      *int64      `json:"max_archive_bytes,omitempty"`
	MaxConcurrentFetches *int        `json:"max_concurrent_fetches,omitempty"`
	MaxLogFiles          *int        `json:"max_log_files,omitempty"`
	OutputDir            string      `json:"output_dir,omitempty"`
	UserAgent            string      `json:"user_agent,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $SITEGRAB_HOME/settings.json (or ~/.sitegrab/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(paths.GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	// Expand paths if they start with ~
	if settings.OutputDir != "" {
		settings.OutputDir = paths.ExpandPath(settings.OutputDir)
	}
	if settings.DBPath != "" {
		settings.DBPath = paths.ExpandPath(settings.DBPath)
	}

	return &settings, nil
}

// SaveSettings saves settings to $SITEGRAB_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(paths.GetSettingsPath(), settings)
}

// SaveSettingsTo saves settings to path, creating its directory
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
