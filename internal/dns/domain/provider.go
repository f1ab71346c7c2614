package domain

import "context"

// Provider is the interface a DNS provider must implement for cddns to
// reconcile a single address record.
type Provider interface {
	// GetDisplayName returns the human-readable provider name (e.g. "Cloudflare").
	GetDisplayName() string

	// ResolveZoneID returns the ID of the zone that owns the registrable
	// domain of fqdn. It returns ErrZoneNotFound when no zone matches.
	ResolveZoneID(ctx context.Context, fqdn string) (string, error)

	// FetchRecord returns the first record in the zone whose name equals fqdn.
	// It returns ErrRecordNotFound when nothing matches.
	FetchRecord(ctx context.Context, zoneID string, fqdn string) (*Record, error)

	// CreateRecord creates a new record and returns the provider's copy.
	CreateRecord(ctx context.Context, zoneID string, opts CreateRecordOpts) (*Record, error)

	// UpdateRecord points an existing record at content, keeping its type,
	// name, TTL and proxy setting from existing.
	UpdateRecord(ctx context.Context, zoneID string, recordID string, content string, existing Record) (*Record, error)
}
