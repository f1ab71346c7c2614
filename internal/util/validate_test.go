package util

import (
	"strings"
	"testing"
)

func TestValidateDomain_Valid(t *testing.T) {
	valid := []string{
		"example.com",
		"home.example.com",
		"a.b.example.com",
		"Home.Example.COM",
		"host-1.example.co",
		"_ddns.example.com",
		"123.example.net",
	}
	for _, name := range valid {
		t.Run(name, func(t *testing.T) {
			if err := ValidateDomain(name); err != nil {
				t.Errorf("expected %q to be valid, got error: %v", name, err)
			}
		})
	}
}

func TestValidateDomain_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		wantMsg string
	}{
		{"localhost", "must include a zone"},
		{"", "must include a zone"},
		{"home..example.com", "empty label"},
		{".example.com", "empty label"},
		{"home server.example.com", "invalid characters"},
		{"web@example.com", "invalid characters"},
		{"-home.example.com", "must not start or end with a hyphen"},
		{"home-.example.com", "must not start or end with a hyphen"},
		{strings.Repeat("a", 64) + ".example.com", "exceeds 63 characters"},
		{strings.Repeat("abcdefghi.", 26) + "com", "at most 253 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDomain(tt.name)
			if err == nil {
				t.Fatalf("expected error for %q, got nil", tt.name)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}
