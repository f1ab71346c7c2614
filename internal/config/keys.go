package config

import (
	"fmt"
	"strconv"
	"strings"

	"cddns/internal/util"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "domain").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key, or "" when unset.
	Get func(cfg *Config) string

	// Set parses and applies a value for this key (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string) error

	// Unset clears the key so the built-in default applies again.
	Unset func(cfg *Config)
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "domain",
		Description: "Record to keep updated when --domain and CF_DOMAIN are not set",
		Get:         func(cfg *Config) string { return cfg.Domain },
		Set: func(cfg *Config, v string) error {
			v = strings.ToLower(strings.TrimRight(strings.TrimSpace(v), "."))
			if err := util.ValidateDomain(v); err != nil {
				return err
			}
			cfg.Domain = v
			return nil
		},
		Unset: func(cfg *Config) { cfg.Domain = "" },
	},
	{
		Name:        "ipv6",
		Description: "Manage an AAAA record with the IPv6 address (true/false)",
		Get:         func(cfg *Config) string { return formatBool(cfg.IPv6) },
		Set:         func(cfg *Config, v string) error { return parseBool(&cfg.IPv6, v) },
		Unset:       func(cfg *Config) { cfg.IPv6 = nil },
	},
	{
		Name:        "proxy",
		Description: "Proxy newly created records through Cloudflare (true/false)",
		Get:         func(cfg *Config) string { return formatBool(cfg.Proxy) },
		Set:         func(cfg *Config, v string) error { return parseBool(&cfg.Proxy, v) },
		Unset:       func(cfg *Config) { cfg.Proxy = nil },
	},
}

func formatBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

func parseBool(dst **bool, v string) error {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("expected true or false, got %q", v)
	}
	*dst = &b
	return nil
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := util.NormalizeKey(name)
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	maxLen := 0
	for _, k := range Keys {
		maxLen = max(maxLen, len(k.Name))
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
