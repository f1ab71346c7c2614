package auth

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestKeyringStore_WithMockBackend(t *testing.T) {
	keyring.MockInit()

	store := NewKeyringStore("")
	if store.serviceName != ServiceName {
		t.Errorf("serviceName = %q, want %q", store.serviceName, ServiceName)
	}

	if _, err := store.GetToken("cloudflare"); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
	if err := store.SetToken("Cloudflare", "tok-abc"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}
	got, err := store.GetToken("cloudflare")
	if err != nil || got != "tok-abc" {
		t.Fatalf("GetToken() = %q, %v; want %q, nil", got, err, "tok-abc")
	}
	if err := store.DeleteToken("cloudflare"); err != nil {
		t.Fatalf("DeleteToken failed: %v", err)
	}
	if err := store.DeleteToken("cloudflare"); !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestKeyringStore_BackendError(t *testing.T) {
	boom := errors.New("locked")
	keyring.MockInitWithError(boom)
	t.Cleanup(keyring.MockInit)

	_, err := NewKeyringStore("cddns-test").GetToken("cloudflare")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
	if errors.Is(err, ErrTokenNotFound) {
		t.Error("backend failure must not look like a missing token")
	}
}
