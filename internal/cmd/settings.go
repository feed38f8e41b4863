package cmd

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/renato0307/sitegrab/internal/config"
	"github.com/renato0307/sitegrab/internal/logging"
	"github.com/renato0307/sitegrab/internal/theme"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingOption is one settings.json key and the flag it feeds
type SettingOption struct {
	Default string `json:"default"`
	Env     string `json:"env,omitempty"`
	Flag    string `json:"flag"`
	Help    string `json:"help"`
	Key     string `json:"key"`
	Value   any    `json:"value,omitempty"`
}

// globalFlagEnv lists the variables read by logging.Options.ApplyEnv for root flags
var globalFlagEnv = map[string]string{
	"debug":         logging.EnvDebug,
	"max_log_files": logging.EnvMaxLogFiles,
}

// settingOptions derives the settings.json options from the settings tags of
// the root and serve flags, filled with the values loaded from settings.json
func settingOptions(settings *config.Settings) ([]SettingOption, error) {
	values, err := settings.Values()
	if err != nil {
		return nil, fmt.Errorf("failed to read settings values: %w", err)
	}

	var options []SettingOption
	for _, flags := range []reflect.Type{reflect.TypeOf(CLI{}), reflect.TypeOf(ServeCmd{})} {
		for i := 0; i < flags.NumField(); i++ {
			field := flags.Field(i)
			key := field.Tag.Get("settings")
			if key == "" {
				continue
			}
			env := field.Tag.Get("env")
			if env == "" {
				env = globalFlagEnv[key]
			}
			options = append(options, SettingOption{
				Default: field.Tag.Get("default"),
				Env:     env,
				Flag:    "--" + flagName(field.Name),
				Help:    field.Tag.Get("help"),
				Key:     key,
				Value:   values[key],
			})
		}
	}

	sort.Slice(options, func(i, j int) bool { return options[i].Key < options[j].Key })
	return options, nil
}

// flagName converts a field name to its kebab-case flag, keeping acronyms together
func flagName(field string) string {
	runes := []rune(field)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				b.WriteByte('-')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsFilePath()
	options, err := settingOptions(cli.settingsOrEmpty())
	if err != nil {
		return err
	}

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"settings":      options,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("KEY", "FLAG", "ENV", "DEFAULT", "CURRENT").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.SubtitleStyle.PaddingRight(2)
			}
			return theme.NormalStyle.PaddingRight(2)
		})
	for _, opt := range options {
		current := "-"
		if opt.Value != nil {
			data, _ := json.Marshal(opt.Value)
			current = string(data)
		}
		t.Row(opt.Key, opt.Flag, opt.Env, opt.Default, current)
	}
	fmt.Println(t.Render())

	fmt.Println()
	fmt.Println("fetch_timeout_seconds is a number of seconds; the flag takes a duration.")
	fmt.Println("Command-line flags and SITEGRAB_* environment variables take precedence over settings.json.")

	return nil
}
