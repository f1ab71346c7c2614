package config

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"domain", "IPv6", " proxy "} {
		if Lookup(name) == nil {
			t.Errorf("expected to find key %q", name)
		}
	}
	if spec := Lookup("nonexistent-key"); spec != nil {
		t.Errorf("expected nil for unknown key, got %+v", spec)
	}
}

func TestKeys_AllHaveGetAndSet(t *testing.T) {
	for _, k := range Keys {
		if k.Get == nil || k.Set == nil || k.Unset == nil {
			t.Errorf("key %q is missing Get, Set or Unset", k.Name)
		}
		if k.Description == "" {
			t.Errorf("key %q has empty Description", k.Name)
		}
	}
}

func TestKeys_SetGet(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"domain", "Home.Example.com.", "home.example.com"},
		{"ipv6", "true", "true"},
		{"ipv6", "0", "false"},
		{"proxy", " TRUE ", "true"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := &Config{}
			spec := Lookup(tt.key)
			if err := spec.Set(cfg, tt.value); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if got := spec.Get(cfg); got != tt.want {
				t.Errorf("Get() = %q, want %q", got, tt.want)
			}
			spec.Unset(cfg)
			if got := spec.Get(cfg); got != "" {
				t.Errorf("Get() after Unset = %q, want empty", got)
			}
		})
	}
}

func TestKeys_SetRejectsInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"domain", "localhost"},
		{"ipv6", "maybe"},
		{"proxy", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := &Config{}
			if err := Lookup(tt.key).Set(cfg, tt.value); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
			if got := Lookup(tt.key).Get(cfg); got != "" {
				t.Errorf("invalid value should leave key unset, got %q", got)
			}
		})
	}
}

func TestKeyNames(t *testing.T) {
	names := KeyNames()
	if len(names) != len(Keys) {
		t.Fatalf("expected %d names, got %d", len(Keys), len(names))
	}
	for i, name := range names {
		if name != Keys[i].Name {
			t.Errorf("index %d: expected %q, got %q", i, Keys[i].Name, name)
		}
	}
}

func TestKeysHelp_ContainsAllKeys(t *testing.T) {
	help := KeysHelp()
	if !strings.Contains(help, "Available keys:") {
		t.Error("expected 'Available keys:' header in help output")
	}
	for _, k := range Keys {
		if !strings.Contains(help, k.Name) || !strings.Contains(help, k.Description) {
			t.Errorf("expected key %q and its description in help output", k.Name)
		}
	}
}
