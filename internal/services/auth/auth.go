// Package auth stores provider API tokens in the OS keychain.
package auth

import (
	"errors"
	"sync"

	"cddns/internal/util"
)

// ServiceName is the keychain service every token is filed under.
const ServiceName = "cddns"

var ErrTokenNotFound = errors.New("auth token not found")

type Store interface {
	SetToken(provider string, token string) error
	GetToken(provider string) (string, error)
	DeleteToken(provider string) error
}

var (
	storeMu       sync.RWMutex
	storeOverride Store
)

// DefaultStore returns the standard auth store backed by the OS keychain,
// or the store installed with SetDefaultStore.
func DefaultStore() Store {
	storeMu.RLock()
	defer storeMu.RUnlock()
	if storeOverride != nil {
		return storeOverride
	}
	return NewKeyringStore(ServiceName)
}

// SetDefaultStore replaces the store returned by DefaultStore. Intended for testing.
func SetDefaultStore(s Store) {
	storeMu.Lock()
	defer storeMu.Unlock()
	storeOverride = s
}

// ResetDefaultStore reverts DefaultStore to the OS keychain. Intended for testing.
func ResetDefaultStore() { SetDefaultStore(nil) }

// NormalizeProvider normalizes a provider name for consistent key lookup.
func NormalizeProvider(provider string) string {
	return util.NormalizeKey(provider)
}
