package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cddns/internal/config"
)

// setupTestConfig points the config package at a temp file and returns its path.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns stdout, stderr and the command error.
func execConfig(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestSet_Domain(t *testing.T) {
	path := setupTestConfig(t)

	stdout, _, err := execConfig(t, "set", "domain", "Home.Example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, `"home.example.com"`) {
		t.Errorf("expected confirmation with normalized domain, got: %s", stdout)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Domain != "home.example.com" {
		t.Errorf("persisted domain = %q, want %q", cfg.Domain, "home.example.com")
	}
}

func TestSet_Bool(t *testing.T) {
	path := setupTestConfig(t)

	if _, _, err := execConfig(t, "set", "ipv6", "true"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, _ := config.LoadFrom(path)
	if cfg.IPv6 == nil || !*cfg.IPv6 {
		t.Errorf("expected ipv6=true to be persisted, got %v", cfg.IPv6)
	}
	if cfg.Proxy != nil {
		t.Errorf("expected proxy to stay unset, got %v", *cfg.Proxy)
	}
}

func TestSet_InvalidValue(t *testing.T) {
	path := setupTestConfig(t)

	_, _, err := execConfig(t, "set", "proxy", "sometimes")
	if err == nil || !strings.Contains(err.Error(), "invalid value for proxy") {
		t.Fatalf("expected invalid value error, got %v", err)
	}

	cfg, _ := config.LoadFrom(path)
	if cfg.Proxy != nil {
		t.Error("expected nothing persisted for an invalid value")
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, _, err := execConfig(t, "set", "provider", "route53")
	if err == nil || !strings.Contains(err.Error(), "unknown configuration key") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestGet_SingleKey(t *testing.T) {
	setupTestConfig(t)

	stdout, _, err := execConfig(t, "get", "--key", "domain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(stdout) != "not set" {
		t.Errorf("expected 'not set', got %q", stdout)
	}

	execConfig(t, "set", "domain", "home.example.com")

	stdout, _, _ = execConfig(t, "get", "--key", "DOMAIN")
	if strings.TrimSpace(stdout) != "home.example.com" {
		t.Errorf("expected stored domain, got %q", stdout)
	}
}

func TestGet_ListsAllKeys(t *testing.T) {
	setupTestConfig(t)
	execConfig(t, "set", "proxy", "false")

	stdout, _, err := execConfig(t, "get")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"domain", "(not set)", "ipv6", "proxy", "false"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestUnset(t *testing.T) {
	path := setupTestConfig(t)
	execConfig(t, "set", "domain", "home.example.com")

	stdout, _, err := execConfig(t, "unset", "domain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "domain unset") {
		t.Errorf("unexpected output %q", stdout)
	}

	cfg, _ := config.LoadFrom(path)
	if cfg.Domain != "" {
		t.Errorf("expected domain cleared, got %q", cfg.Domain)
	}
}
