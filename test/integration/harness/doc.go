// Package harness provides utilities for integration testing the sitegrab CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - SITEGRAB_HOME: Isolated per test (temp directory)
//   - SITEGRAB_OUTPUT_DIR: Isolated per test so archives never land in ~/Downloads
//   - SITEGRAB_DEBUG: Disabled to reduce noise
package harness
