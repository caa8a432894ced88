package cmd

import (
	"bytes"
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hellotcp/config"
	herrors "hellotcp/internal/errors"
)

func tempLog(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "output.log")
}

// TestRun_Version verifies --version prints a version string.
func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"--version"}, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "hellotcp ") {
		t.Errorf("output = %q", out.String())
	}
}

// TestExecute_Help verifies --help returns without error.
func TestExecute_Help(t *testing.T) {
	if err := Execute(context.Background(), []string{"--help"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestExecute_InvalidFlags verifies unknown flags produce an error.
func TestExecute_InvalidFlags(t *testing.T) {
	err := Execute(context.Background(), []string{"--nonexistent-flag"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

// TestRun_UnexpectedArgs verifies stray positional arguments are
// rejected.
func TestRun_UnexpectedArgs(t *testing.T) {
	err := run(context.Background(), []string{"127.0.0.1"}, strings.NewReader(""), &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for positional argument")
	}
}

// TestRun_InvalidModeFlag verifies a bad --mode value takes the same
// clean exit as a bad prompt answer.
func TestRun_InvalidModeFlag(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-m", "3", "--log-file", ""},
		strings.NewReader("1\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "[INF] Invalid selection") {
		t.Errorf("missing invalid selection message: %q", got)
	}
	if strings.Contains(got, "Please select mode") {
		t.Errorf("--mode should skip the prompt: %q", got)
	}
	if strings.Contains(got, "Starting") {
		t.Errorf("no mode should start: %q", got)
	}
}

// TestRun_ModeFlag verifies --mode skips the prompt.
func TestRun_ModeFlag(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"--mode", "client", "--log-file", ""},
		strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out.String(), "Please select mode") {
		t.Errorf("prompt should be skipped: %q", out.String())
	}
	if !strings.Contains(out.String(), "Starting client...") {
		t.Errorf("output = %q", out.String())
	}
}

// TestRun_IgnoresEnvironment verifies the mode comes only from the
// prompt or the flag.
func TestRun_IgnoresEnvironment(t *testing.T) {
	t.Setenv("HELLOTCP_MODE", "3")
	t.Setenv("HELLOTCP_VERBOSE", "3")

	var out bytes.Buffer
	err := run(context.Background(), []string{"--log-file", ""},
		strings.NewReader("2\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Please select mode: (1) Server, (2) Client") {
		t.Errorf("missing prompt: %q", got)
	}
	if !strings.Contains(got, "Starting client...") {
		t.Errorf("operator choice ignored: %q", got)
	}
	if strings.Contains(got, "[VRB]") || strings.Contains(got, "Invalid selection") {
		t.Errorf("environment leaked into the run: %q", got)
	}
}

// TestRun_InvalidSelection verifies that a bad prompt answer logs a
// message and exits cleanly without binding or dialing.
func TestRun_InvalidSelection(t *testing.T) {
	logPath := tempLog(t)
	var out bytes.Buffer

	err := run(context.Background(), []string{"--log-file", logPath},
		strings.NewReader("3\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Please select mode: (1) Server, (2) Client") {
		t.Errorf("missing prompt: %q", got)
	}
	if !strings.Contains(got, "Invalid selection") {
		t.Errorf("missing invalid selection message: %q", got)
	}
	if strings.Contains(got, "Starting") {
		t.Errorf("no mode should start: %q", got)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[INF] Invalid selection") {
		t.Errorf("log file = %q", data)
	}
}

// TestRun_LogFileFailure verifies an unopenable log file is a fatal
// setup error.
func TestRun_LogFileFailure(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "missing", "output.log")
	err := run(context.Background(), []string{"--log-file", bad},
		strings.NewReader("1\n"), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "initialize logger") {
		t.Fatalf("err = %v, want logger initialization error", err)
	}
}

// TestRun_ClientNoInput verifies client mode picked at the prompt ends
// cleanly when the operator's input runs out.
func TestRun_ClientNoInput(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"--log-file", ""},
		strings.NewReader("2\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Starting client...") {
		t.Errorf("output = %q", got)
	}
	if !strings.Contains(got, "Please enter message sent to server") {
		t.Errorf("missing message prompt: %q", got)
	}
}

// TestRun_Verbosity verifies -v raises the level above the default so
// verbose lines appear.
func TestRun_Verbosity(t *testing.T) {
	var quiet, loud bytes.Buffer
	args := []string{"-m", "client", "--log-file", ""}

	if err := run(context.Background(), args, strings.NewReader(""), &quiet); err != nil {
		t.Fatal(err)
	}
	if err := run(context.Background(), append(args, "-v"), strings.NewReader(""), &loud); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(quiet.String(), "[VRB]") {
		t.Errorf("default verbosity should hide [VRB]: %q", quiet.String())
	}
	if !strings.Contains(loud.String(), "[VRB] operator input closed") {
		t.Errorf("-v should show [VRB]: %q", loud.String())
	}
}

// TestRun_FatalModeErrorReturnedOnce verifies a failed bind comes back
// as the returned error without also being logged, so main reports it
// a single time.
func TestRun_FatalModeErrorReturnedOnce(t *testing.T) {
	// Hold the fixed endpoint; if something else already holds it the
	// bind fails all the same.
	if ln, err := net.Listen("tcp", config.DefaultAddress); err == nil {
		defer ln.Close()
	}

	var out bytes.Buffer
	err := run(context.Background(), []string{"--mode", "server", "--log-file", ""},
		strings.NewReader(""), &out)

	var ne *herrors.NetworkError
	if !errors.As(err, &ne) || ne.Op != "listen" {
		t.Fatalf("err = %v, want listen NetworkError", err)
	}
	if strings.Contains(out.String(), "[ERR]") {
		t.Errorf("error should not be logged as well: %q", out.String())
	}
}
