package auth

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps tokens in the OS keychain (macOS Keychain, Secret
// Service on Linux, Windows Credential Manager). Each provider is one
// account under the store's service name.
type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetToken(provider string, token string) error {
	if err := keyring.Set(k.serviceName, NormalizeProvider(provider), token); err != nil {
		return fmt.Errorf("keyring: failed to store token for %s: %w", provider, err)
	}
	return nil
}

func (k *KeyringStore) GetToken(provider string) (string, error) {
	token, err := keyring.Get(k.serviceName, NormalizeProvider(provider))
	if err != nil {
		return "", keyringError("read", provider, err)
	}
	return token, nil
}

func (k *KeyringStore) DeleteToken(provider string) error {
	if err := keyring.Delete(k.serviceName, NormalizeProvider(provider)); err != nil {
		return keyringError("delete", provider, err)
	}
	return nil
}

// keyringError maps a missing entry to ErrTokenNotFound and wraps the rest.
func keyringError(op, provider string, err error) error {
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrTokenNotFound
	}
	return fmt.Errorf("keyring: failed to %s token for %s: %w", op, provider, err)
}
