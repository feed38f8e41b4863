package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/sitegrab/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantSuccess  bool
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "table format (default)",
			args:         []string{"settings", "meta"},
			wantSuccess:  true,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file: "+env.SettingsPath())
				harness.AssertStdoutContains(t, result, "max_concurrent_fetches")
				harness.AssertStdoutContains(t, result, "--max-concurrent-fetches")
				harness.AssertStdoutContains(t, result, "SITEGRAB_OUTPUT_DIR")
			},
		},
		{
			name:         "json format",
			args:         []string{"settings", "meta", "--format", "json"},
			wantSuccess:  true,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var output struct {
					SettingsFile string `json:"settings_file"`
					Settings     []struct {
						Key  string `json:"key"`
						Flag string `json:"flag"`
					} `json:"settings"`
				}
				harness.AssertValidJSON(t, result, &output)
				assert.Equal(t, env.SettingsPath(), output.SettingsFile)
				flags := make(map[string]string)
				for _, opt := range output.Settings {
					flags[opt.Key] = opt.Flag
				}
				assert.Equal(t, "--allowed-origins", flags["allowed_origins"])
			},
		},
		{
			name:         "invalid format fails",
			args:         []string{"settings", "meta", "--format", "yaml"},
			wantSuccess:  false,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertFailure(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			result := harness.RunCommand(t, env, tt.args...)
			if tt.wantSuccess {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}
			tt.validate(t, env, result)
		})
	}
}

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "sitegrab ")
}
