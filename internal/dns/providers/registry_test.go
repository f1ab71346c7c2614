package providers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cddns/internal/dns/domain"

	"github.com/google/go-cmp/cmp"
)

type stubProvider struct{}

func (stubProvider) GetDisplayName() string { return "Stub" }
func (stubProvider) ResolveZoneID(context.Context, string) (string, error) {
	return "", nil
}
func (stubProvider) FetchRecord(context.Context, string, string) (*domain.Record, error) {
	return nil, domain.ErrRecordNotFound
}
func (stubProvider) CreateRecord(context.Context, string, domain.CreateRecordOpts) (*domain.Record, error) {
	return nil, nil
}
func (stubProvider) UpdateRecord(context.Context, string, string, string, domain.Record) (*domain.Record, error) {
	return nil, nil
}

func TestRegistry_GetNormalizesName(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("Stub", func(FactoryConfig) (domain.Provider, error) { return stubProvider{}, nil })

	p, err := Get("  STUB ", FactoryConfig{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.GetDisplayName() != "Stub" {
		t.Errorf("display name = %q, want %q", p.GetDisplayName(), "Stub")
	}
}

func TestRegistry_UnknownProvider(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	_, err := Get("route53", FactoryConfig{})
	if err == nil || !strings.Contains(err.Error(), "route53") {
		t.Fatalf("expected unknown provider error, got %v", err)
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	factory := func(FactoryConfig) (domain.Provider, error) { return stubProvider{}, nil }
	Register("stub", factory)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub", factory)
}

func TestRegistry_List(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	factory := func(FactoryConfig) (domain.Provider, error) { return stubProvider{}, nil }
	Register("zeta", factory)
	RegisterCloudflare()
	Register("alpha", factory)

	if diff := cmp.Diff([]string{"alpha", "cloudflare", "zeta"}, List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegisterCloudflare_RequiresToken(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	RegisterCloudflare()

	if _, err := Get("cloudflare", FactoryConfig{}); !errors.Is(err, ErrTokenRequired) {
		t.Fatalf("expected ErrTokenRequired, got %v", err)
	}

	p, err := Get("cloudflare", FactoryConfig{Token: "tok"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := p.(*CloudflareProvider); !ok {
		t.Errorf("expected *CloudflareProvider, got %T", p)
	}
}
