package harness

import (
	"bytes"
	"context"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

const defaultTimeout = 30 * time.Second

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// CommandResult holds the result of running a CLI command
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles the sitegrab binary once per test run.
// Call this from TestMain before running tests.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		tempDir, err := os.MkdirTemp("", "sitegrab-integration-test-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryPath = filepath.Join(tempDir, "sitegrab")

		projectRoot, err := findProjectRoot()
		if err != nil {
			buildErr = err
			return
		}

		cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd")
		cmd.Dir = projectRoot
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		buildErr = cmd.Run()
	})

	return binaryPath, buildErr
}

// CleanupBinary removes the compiled binary and its temp directory.
// Call this from TestMain after tests complete.
func CleanupBinary() {
	if binaryPath != "" {
		if err := os.RemoveAll(filepath.Dir(binaryPath)); err != nil {
			log.Printf("Warning: failed to cleanup binary directory: %v", err)
		}
	}
}

// GetBinaryPath returns the path to the compiled binary.
func GetBinaryPath() string {
	return binaryPath
}

// RunCommand executes the sitegrab binary with given arguments using default timeout.
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return RunCommandWithTimeout(tb, env, defaultTimeout, args...)
}

// RunCommandWithTimeout executes the sitegrab binary with given arguments and timeout.
func RunCommandWithTimeout(tb testing.TB, env *TestEnvironment, timeout time.Duration, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = env.Environ()

	err := cmd.Run()

	exitCode := 0
	if ctx.Err() == context.DeadlineExceeded {
		tb.Logf("Command timed out after %v: %v %v", timeout, binaryPath, args)
		exitCode = -1
	} else if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		tb.Logf("Command execution error: %v", err)
		exitCode = -1
	}

	return CommandResult{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
}

// Process is a sitegrab command running in the background
type Process struct {
	cmd    *exec.Cmd
	done   chan struct{}
	stderr bytes.Buffer
	stdout bytes.Buffer
	mu     sync.Mutex
	waited error
}

// StartCommand starts the sitegrab binary without waiting for it to exit.
// The process is killed when the test completes if it is still running.
func StartCommand(tb testing.TB, env *TestEnvironment, args ...string) *Process {
	tb.Helper()

	p := &Process{done: make(chan struct{})}
	p.cmd = exec.Command(binaryPath, args...)
	p.cmd.Env = env.Environ()
	p.cmd.Stdout = &lockedWriter{mu: &p.mu, buf: &p.stdout}
	p.cmd.Stderr = &lockedWriter{mu: &p.mu, buf: &p.stderr}

	if err := p.cmd.Start(); err != nil {
		tb.Fatalf("Failed to start %v %v: %v", binaryPath, args, err)
	}

	go func() {
		p.waited = p.cmd.Wait()
		close(p.done)
	}()

	tb.Cleanup(func() {
		select {
		case <-p.done:
		default:
			_ = p.cmd.Process.Kill()
			<-p.done
		}
	})

	return p
}

// Stop sends SIGINT and waits up to timeout for the process to exit
func (p *Process) Stop(tb testing.TB, timeout time.Duration) CommandResult {
	tb.Helper()

	if err := p.cmd.Process.Signal(os.Interrupt); err != nil {
		tb.Logf("Failed to signal process: %v", err)
	}

	exitCode := 0
	select {
	case <-p.done:
		if exitErr, ok := p.waited.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else if p.waited != nil {
			exitCode = -1
		}
	case <-time.After(timeout):
		tb.Logf("Process did not exit within %v", timeout)
		_ = p.cmd.Process.Kill()
		<-p.done
		exitCode = -1
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return CommandResult{
		ExitCode: exitCode,
		Stdout:   p.stdout.String(),
		Stderr:   p.stderr.String(),
	}
}

type lockedWriter struct {
	buf *bytes.Buffer
	mu  *sync.Mutex
}

func (w *lockedWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(b)
}

// findProjectRoot uses go list to find the module root directory.
func findProjectRoot() (string, error) {
	cmd := exec.Command("go", "list", "-m", "-f", "{{.Dir}}")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
