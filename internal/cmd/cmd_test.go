package cmd

import (
	"archive/zip"
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/sitegrab/internal/config"
	"github.com/renato0307/sitegrab/internal/services"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func parseCLI(t *testing.T, settings *config.Settings, args ...string) *CLI {
	t.Helper()
	var cli CLI
	cli.SetSettings(settings)
	parser, err := kong.New(&cli, kong.Name("sitegrab"), kong.Vars{"version": "test"})
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return &cli
}

func TestServeCmd_Defaults(t *testing.T) {
	t.Setenv("SITEGRAB_HOME", t.TempDir())
	cli := parseCLI(t, &config.Settings{}, "serve")

	cli.Serve.applySettings(cli.settingsOrEmpty())

	assert.Equal(t, defaultAddr, cli.Serve.Addr)
	assert.Equal(t, []string{"*"}, cli.Serve.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cli.Serve.FetchTimeout)
	assert.Equal(t, 8, cli.Serve.MaxConcurrentFetches)
	assert.Equal(t, defaultUserAgent, cli.Serve.UserAgent)
	assert.NotEmpty(t, cli.Serve.OutputDir)
}

func TestServeCmd_Precedence(t *testing.T) {
	settings := &config.Settings{
		Addr:                 "127.0.0.1:7000",
		AllowedOrigins:       config.StringArray{"chrome-extension://abc"},
		FetchTimeoutSeconds:  intPtr(5),
		MaxArchiveBytes:      int64Ptr(1024),
		MaxConcurrentFetches: intPtr(2),
		OutputDir:            "/from/settings",
		UserAgent:            "settings-agent",
	}

	t.Run("settings fill unset flags", func(t *testing.T) {
		cli := parseCLI(t, settings, "serve")
		cli.Serve.applySettings(cli.settings)

		assert.Equal(t, "127.0.0.1:7000", cli.Serve.Addr)
		assert.Equal(t, []string{"chrome-extension://abc"}, cli.Serve.AllowedOrigins)
		assert.Equal(t, 5*time.Second, cli.Serve.FetchTimeout)
		assert.Equal(t, int64(1024), cli.Serve.MaxArchiveBytes)
		assert.Equal(t, 2, cli.Serve.MaxConcurrentFetches)
		assert.Equal(t, "/from/settings", cli.Serve.OutputDir)
		assert.Equal(t, "settings-agent", cli.Serve.UserAgent)
	})

	t.Run("env beats settings", func(t *testing.T) {
		t.Setenv("SITEGRAB_ADDR", "127.0.0.1:7100")
		t.Setenv("SITEGRAB_MAX_CONCURRENT_FETCHES", "4")

		cli := parseCLI(t, settings, "serve")
		cli.Serve.applySettings(cli.settings)

		assert.Equal(t, "127.0.0.1:7100", cli.Serve.Addr)
		assert.Equal(t, 4, cli.Serve.MaxConcurrentFetches)
		assert.Equal(t, "settings-agent", cli.Serve.UserAgent)
	})

	t.Run("flags beat env", func(t *testing.T) {
		t.Setenv("SITEGRAB_ADDR", "127.0.0.1:7100")

		cli := parseCLI(t, settings, "serve", "--addr", "127.0.0.1:7200", "--user-agent", "flag-agent")
		cli.Serve.applySettings(cli.settings)

		assert.Equal(t, "127.0.0.1:7200", cli.Serve.Addr)
		assert.Equal(t, "flag-agent", cli.Serve.UserAgent)
	})
}

func TestCLI_AfterApply_DebugFromSettings(t *testing.T) {
	debugFile := filepath.Join(t.TempDir(), "debug.log")
	debug := true

	cli := parseCLI(t, &config.Settings{Debug: &debug, MaxLogFiles: intPtr(3)}, "--debug-file", debugFile, "resolve", "https://example.com/")

	assert.True(t, cli.Debug)
	assert.Equal(t, 3, cli.MaxLogFiles)
	assert.FileExists(t, debugFile)
}

func TestUnsetFlag(t *testing.T) {
	assert.True(t, unsetFlag("a", "a", "SITEGRAB_TEST_UNSET"))
	assert.False(t, unsetFlag("b", "a", "SITEGRAB_TEST_UNSET"))

	t.Setenv("SITEGRAB_TEST_UNSET", "x")
	assert.False(t, unsetFlag("a", "a", "SITEGRAB_TEST_UNSET"))
}

func TestFlagName(t *testing.T) {
	tests := map[string]string{
		"Addr":                 "addr",
		"DBPath":               "db-path",
		"MaxConcurrentFetches": "max-concurrent-fetches",
		"UserAgent":            "user-agent",
	}
	for field, want := range tests {
		assert.Equal(t, want, flagName(field), field)
	}
}

func TestSettingOptions_CoverEverySettingsKey(t *testing.T) {
	fetches := 4
	options, err := settingOptions(&config.Settings{MaxConcurrentFetches: &fetches})
	require.NoError(t, err)

	keys := make([]string, 0, len(options))
	byKey := make(map[string]SettingOption)
	for _, opt := range options {
		keys = append(keys, opt.Key)
		byKey[opt.Key] = opt
	}
	assert.Equal(t, config.Keys(), keys)

	assert.Equal(t, SettingOption{
		Default: "8",
		Env:     "SITEGRAB_MAX_CONCURRENT_FETCHES",
		Flag:    "--max-concurrent-fetches",
		Help:    "Maximum number of downloads in flight",
		Key:     "max_concurrent_fetches",
		Value:   float64(4),
	}, byKey["max_concurrent_fetches"])
	assert.Equal(t, "--db-path", byKey["db_path"].Flag)
	assert.Equal(t, "SITEGRAB_DEBUG", byKey["debug"].Env)
	assert.Nil(t, byKey["addr"].Value)
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{n: 0, want: "0 B"},
		{n: 1023, want: "1023 B"},
		{n: 1024, want: "1.0 KiB"},
		{n: 1536, want: "1.5 KiB"},
		{n: 5 * 1024 * 1024, want: "5.0 MiB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatBytes(tt.n))
		})
	}
}

func TestPrintStopSummary(t *testing.T) {
	t.Run("saved", func(t *testing.T) {
		var buf bytes.Buffer
		printStopSummary(&buf, 3, &services.StopResult{
			ArchiveSize: 2048,
			BaseURL:     "https://example.com/",
			FailedCount: 1,
			FileCount:   2,
			SavedTo:     "/tmp/example.com.zip",
		}, nil)

		out := buf.String()
		assert.Contains(t, out, "Capture saved")
		assert.Contains(t, out, "https://example.com/")
		assert.Contains(t, out, "/tmp/example.com.zip")
		assert.Contains(t, out, "2.0 KiB")
	})

	t.Run("failed", func(t *testing.T) {
		var buf bytes.Buffer
		printStopSummary(&buf, 0, nil, errors.New("disk full"))

		out := buf.String()
		assert.Contains(t, out, "Capture failed")
		assert.Contains(t, out, "disk full")
	})
}

func TestReplayCmd_Run(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/", "/app.js":
			_, _ = w.Write([]byte("content of " + r.URL.Path))
		default:
			http.NotFound(w, r)
		}
	}))
	defer site.Close()

	dir := t.TempDir()
	logFile := filepath.Join(dir, "events.jsonl")
	events := `{"url":"` + site.URL + `/","type":"main_frame","tabId":3}
# comment
{"url":"` + site.URL + `/app.js","type":"script","tabId":3}
{"url":"` + site.URL + `/missing.css","type":"stylesheet","tabId":3}
{"url":"` + site.URL + `/other.js","type":"script","tabId":4}
`
	require.NoError(t, os.WriteFile(logFile, []byte(events), 0644))

	outputDir := filepath.Join(dir, "out")
	cmd := &ReplayCmd{
		Concurrency:  2,
		FetchTimeout: 5 * time.Second,
		File:         logFile,
		OutputDir:    outputDir,
		PageURL:      site.URL + "/",
		TabID:        3,
		UserAgent:    "test",
	}
	require.NoError(t, cmd.Run(&CLI{}))

	matches, err := filepath.Glob(filepath.Join(outputDir, "*.zip"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	zr, err := zip.OpenReader(matches[0])
	require.NoError(t, err)
	defer func() { _ = zr.Close() }()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"app.js", "index.html"}, names)
}

func TestReplayCmd_Run_InvalidLog(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "events.jsonl")
	require.NoError(t, os.WriteFile(logFile, []byte("not json\n"), 0644))

	cmd := &ReplayCmd{
		Concurrency:  1,
		FetchTimeout: time.Second,
		File:         logFile,
		OutputDir:    filepath.Join(dir, "out"),
		PageURL:      "https://example.com/",
	}
	err := cmd.Run(&CLI{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")

	// The partial capture is still saved
	matches, _ := filepath.Glob(filepath.Join(dir, "out", "*.zip"))
	assert.Len(t, matches, 1)
}

func TestResolveCmd_Run(t *testing.T) {
	cmd := &ResolveCmd{
		Format:       "json",
		PageURL:      "https://example.com/docs/index.html",
		ResourceURLs: []string{"https://example.com/docs/a.css"},
	}
	assert.NoError(t, cmd.Run(&CLI{}))

	cmd.ResourceURLs = []string{"https://example.com/docs/%zz"}
	assert.Error(t, cmd.Run(&CLI{}))
}
