package harness

import (
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own SITEGRAB_HOME.
type TestEnvironment struct {
	OutputDir    string
	SitegrabHome string
	extraEnv     map[string]string
	tb           testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp SITEGRAB_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root := tb.TempDir()
	sitegrabHome := filepath.Join(root, "home")
	outputDir := filepath.Join(root, "archives")

	for _, dir := range []string{sitegrabHome, outputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			tb.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	return &TestEnvironment{
		OutputDir:    outputDir,
		SitegrabHome: sitegrabHome,
		extraEnv:     make(map[string]string),
		tb:           tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out SITEGRAB_* variables and sets:
//   - SITEGRAB_HOME to the temp directory
//   - SITEGRAB_OUTPUT_DIR to the temp archive directory
//   - SITEGRAB_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	// Build a set of keys we want to override
	overrideKeys := make(map[string]bool)
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "SITEGRAB_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"SITEGRAB_HOME="+e.SitegrabHome,
		"SITEGRAB_OUTPUT_DIR="+e.OutputDir,
		"SITEGRAB_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SettingsPath returns the settings file inside the isolated home.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.SitegrabHome, "settings.json")
}

// WriteFile writes content to name under the test's temp directory and returns its path.
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.tb.Helper()
	path := filepath.Join(filepath.Dir(e.SitegrabHome), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// Archives lists the zip files written to the output directory.
func (e *TestEnvironment) Archives() []string {
	e.tb.Helper()
	matches, err := filepath.Glob(filepath.Join(e.OutputDir, "*.zip"))
	if err != nil {
		e.tb.Fatalf("Failed to list archives: %v", err)
	}
	return matches
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// FreeAddr returns a loopback address with a port that is free right now.
func FreeAddr(tb testing.TB) string {
	tb.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		tb.Fatalf("Failed to find free port: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	return addr
}
