package providers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"cddns/internal/dns/domain"
	"cddns/internal/util"

	"github.com/sirupsen/logrus"
)

// ErrTokenRequired is returned by a factory given an empty token.
var ErrTokenRequired = errors.New("API token is required (use --token, CF_TOKEN or 'cddns auth login')")

// FactoryConfig carries everything a provider factory needs to build a client.
type FactoryConfig struct {
	// Token is the provider API token.
	Token string

	// HTTPClient is shared with the IP resolver. Nil means the provider default.
	HTTPClient *http.Client

	// Logger receives provider debug events. Nil discards them.
	Logger *logrus.Entry
}

// Factory is a constructor function that builds a DNS Provider.
type Factory func(cfg FactoryConfig) (domain.Provider, error)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// Register adds a provider factory to the DNS registry.
// It panics on empty name, nil factory, or duplicate registration
// (programmer errors detected at startup).
func Register(name string, factory Factory) {
	normalizedName := util.NormalizeKey(name)
	if normalizedName == "" {
		panic("dns/providers: empty provider name")
	}
	if factory == nil {
		panic("dns/providers: nil factory")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[normalizedName]; exists {
		panic(fmt.Sprintf("dns/providers: provider %q already registered", name))
	}

	registry[normalizedName] = factory
}

// RegisterCloudflare registers the Cloudflare provider factory with the DNS registry.
func RegisterCloudflare() {
	Register("cloudflare", func(cfg FactoryConfig) (domain.Provider, error) {
		if cfg.Token == "" {
			return nil, fmt.Errorf("cloudflare: %w", ErrTokenRequired)
		}
		return NewCloudflareProvider(cfg.Token,
			WithHTTPClient(cfg.HTTPClient),
			WithLogger(cfg.Logger),
		), nil
	})
}

// Get constructs and returns the DNS Provider for the given name.
func Get(name string, cfg FactoryConfig) (domain.Provider, error) {
	normalizedName := util.NormalizeKey(name)
	mu.RLock()
	factory, ok := registry[normalizedName]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("dns/providers: unknown provider %q (registered: %s)", name, strings.Join(List(), ", "))
	}

	return factory(cfg)
}

// List returns the names of all registered DNS providers, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset clears the DNS provider registry. Intended for use in tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = map[string]Factory{}
}
