package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RecordType is the DNS record type managed by cddns. Only address records
// are supported; the zero value is invalid and never serialised.
type RecordType uint8

const (
	RecordTypeA RecordType = iota + 1
	RecordTypeAAAA
)

// recordTypeNames is the wire mapping for every supported RecordType.
var recordTypeNames = map[RecordType]string{
	RecordTypeA:    "A",
	RecordTypeAAAA: "AAAA",
}

// RecordTypeFor returns AAAA for IPv6 mode and A otherwise.
func RecordTypeFor(ipv6 bool) RecordType {
	if ipv6 {
		return RecordTypeAAAA
	}
	return RecordTypeA
}

// ParseRecordType maps a wire name ("A", "AAAA") to a RecordType.
// Matching is case-insensitive.
func ParseRecordType(s string) (RecordType, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for t, name := range recordTypeNames {
		if name == upper {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnsupportedRecordType, s)
}

// String returns the wire name, or "RecordType(n)" for invalid values.
func (t RecordType) String() string {
	if name, ok := recordTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("RecordType(%d)", uint8(t))
}

// Valid reports whether t is one of the supported record types.
func (t RecordType) Valid() bool {
	_, ok := recordTypeNames[t]
	return ok
}

// MarshalJSON refuses to encode invalid record types.
func (t RecordType) MarshalJSON() ([]byte, error) {
	name, ok := recordTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnsupportedRecordType, t)
	}
	return json.Marshal(name)
}

// UnmarshalJSON decodes a wire name through ParseRecordType.
func (t *RecordType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRecordType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Zone is a provider-side container of DNS records for one registrable domain.
type Zone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Record represents a single DNS record.
type Record struct {
	// ID is the provider-assigned record identifier.
	ID string `json:"id"`

	// Type is the DNS record type (A or AAAA).
	Type RecordType `json:"type"`

	// Name is the fully-qualified record name (e.g. "home.example.com").
	Name string `json:"name"`

	// Content is the IP address the record points at.
	Content string `json:"content"`

	// TTL is the time-to-live in seconds.
	TTL int `json:"ttl"`

	// Proxied routes traffic through the provider's reverse proxy instead of
	// resolving directly to Content.
	Proxied bool `json:"proxied"`

	// Comment is the audit annotation written by the last update.
	Comment string `json:"comment,omitempty"`
}

// RegistrableDomain returns the last two dot-separated labels of fqdn.
// "a.b.example.com" becomes "example.com"; names with fewer than two labels
// are returned unchanged. Public suffixes such as "co.uk" are not handled.
func RegistrableDomain(fqdn string) string {
	labels := strings.Split(fqdn, ".")
	if len(labels) <= 2 {
		return fqdn
	}
	return strings.Join(labels[len(labels)-2:], ".")
}
