// Package services provides the record reconciliation layer.
//
// A Syncer wraps a domain.Provider and an address resolver. One call to Run
// resolves the zone, looks up the public address, then updates the existing
// record or creates a new one. CLI commands build a Syncer from a resolved
// provider rather than calling the provider directly.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cddns/internal/dns/domain"
	"cddns/internal/ipresolve"

	"github.com/sirupsen/logrus"
)

// Action reports what Run did to the record.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

// IPResolver looks up the caller's public address.
type IPResolver interface {
	Resolve(ctx context.Context, family ipresolve.Family) (string, error)
}

// Request describes the record a run reconciles.
type Request struct {
	// Domain is the fully-qualified record name (e.g. home.example.com).
	Domain string

	// IPv6 selects an AAAA record and the IPv6 echo endpoint.
	IPv6 bool

	// Proxied is applied only when a record is created.
	Proxied bool
}

// Result is the outcome of a successful run.
type Result struct {
	Action Action
	Record domain.Record

	// PreviousContent is the record content before an update; empty on create.
	PreviousContent string
}

// Syncer reconciles a single address record against the public IP.
type Syncer struct {
	provider domain.Provider
	resolver IPResolver
	logger   *logrus.Entry

	fallbackOnFetchError bool
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithLogger sets the logger for debug events.
func WithLogger(logger *logrus.Entry) Option {
	return func(s *Syncer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFallbackOnFetchError makes Run create a record whenever FetchRecord
// fails, not only when it reports domain.ErrRecordNotFound.
func WithFallbackOnFetchError(enabled bool) Option {
	return func(s *Syncer) {
		s.fallbackOnFetchError = enabled
	}
}

// New returns a Syncer backed by the given provider and resolver.
func New(provider domain.Provider, resolver IPResolver, opts ...Option) *Syncer {
	l := logrus.New()
	l.SetOutput(io.Discard)

	s := &Syncer{
		provider: provider,
		resolver: resolver,
		logger:   logrus.NewEntry(l),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes zone lookup, address lookup, record fetch and then update or
// create, in that order. The first failing step aborts the run.
func (s *Syncer) Run(ctx context.Context, req Request) (*Result, error) {
	req.Domain = normalizeDomain(req.Domain)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	zoneID, err := s.provider.ResolveZoneID(ctx, req.Domain)
	if err != nil {
		return nil, fmt.Errorf("failed to get zone ID: %w", err)
	}
	s.logger.WithField("zone_id", zoneID).Debug("Fetched zone ID")

	family := ipresolve.IPv4
	if req.IPv6 {
		family = ipresolve.IPv6
	}
	ip, err := s.resolver.Resolve(ctx, family)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve IP address: %w", err)
	}
	s.logger.WithField("ip", ip).Debug("Current IP address")

	existing, err := s.provider.FetchRecord(ctx, zoneID, req.Domain)
	switch {
	case err == nil:
		s.logger.WithFields(logrus.Fields{
			"record_id": existing.ID,
			"type":      existing.Type,
			"content":   existing.Content,
		}).Debug("Fetched DNS record")
		if want := domain.RecordTypeFor(req.IPv6); existing.Type != want {
			s.logger.WithFields(logrus.Fields{
				"record_id": existing.ID,
				"type":      existing.Type,
				"expected":  want,
			}).Warn("The first record with this name has a different type; Cloudflare will likely reject the address")
		}
		return s.update(ctx, zoneID, ip, *existing)

	case errors.Is(err, domain.ErrRecordNotFound):
		s.logger.WithField("name", req.Domain).Debug("No record was found, creating a new one")
		return s.create(ctx, zoneID, ip, req)

	case s.fallbackOnFetchError:
		s.logger.WithError(err).Warn("Could not fetch the record, creating a new one")
		return s.create(ctx, zoneID, ip, req)

	default:
		return nil, fmt.Errorf("failed to fetch DNS record: %w", err)
	}
}

func (s *Syncer) update(ctx context.Context, zoneID, ip string, existing domain.Record) (*Result, error) {
	rec, err := s.provider.UpdateRecord(ctx, zoneID, existing.ID, ip, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update DNS record: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"record_id": rec.ID,
		"content":   rec.Content,
	}).Debug("Updated DNS record")

	return &Result{
		Action:          ActionUpdated,
		Record:          *rec,
		PreviousContent: existing.Content,
	}, nil
}

func (s *Syncer) create(ctx context.Context, zoneID, ip string, req Request) (*Result, error) {
	rec, err := s.provider.CreateRecord(ctx, zoneID, domain.CreateRecordOpts{
		Name:    req.Domain,
		Type:    domain.RecordTypeFor(req.IPv6),
		Content: ip,
		Proxied: req.Proxied,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create DNS record: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"record_id": rec.ID,
		"type":      rec.Type,
		"content":   rec.Content,
	}).Debug("Created new DNS record")

	return &Result{
		Action: ActionCreated,
		Record: *rec,
	}, nil
}
