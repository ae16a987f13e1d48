package cli

import (
	"io"
	"strings"
	"testing"
)

func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = original })
}

// TestResolveUIModeAuto verifies auto follows TTY detection.
func TestResolveUIModeAuto(t *testing.T) {
	stubTerminal(t, true)
	decision, err := resolveUIMode("auto", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !decision.useLive {
		t.Fatalf("expected live mode on a TTY")
	}

	stubTerminal(t, false)
	decision, err = resolveUIMode("", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if decision.useLive {
		t.Fatalf("expected plain mode off-TTY")
	}
}

// TestResolveUIModeLiveWithoutTTY verifies the fallback warning.
func TestResolveUIModeLiveWithoutTTY(t *testing.T) {
	stubTerminal(t, false)
	decision, err := resolveUIMode("live", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if decision.useLive {
		t.Fatalf("expected fallback to plain without a TTY")
	}
	if !strings.Contains(decision.warning, "not a TTY") {
		t.Fatalf("expected warning, got %q", decision.warning)
	}
}

// TestResolveUIModePlain verifies plain never launches the editor.
func TestResolveUIModePlain(t *testing.T) {
	stubTerminal(t, true)
	decision, err := resolveUIMode("Plain", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if decision.useLive {
		t.Fatalf("plain mode must not use the editor")
	}
}

// TestResolveUIModeInvalid verifies unknown modes error.
func TestResolveUIModeInvalid(t *testing.T) {
	if _, err := resolveUIMode("fancy", nil); err == nil {
		t.Fatalf("expected error for invalid mode")
	}
}

// TestDefaultIsTerminal verifies non-file writers are not TTYs.
func TestDefaultIsTerminal(t *testing.T) {
	if defaultIsTerminal(nil) {
		t.Fatalf("nil writer reported as TTY")
	}
	if defaultIsTerminal(io.Discard) {
		t.Fatalf("discard writer reported as TTY")
	}
}
