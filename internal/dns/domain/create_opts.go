package domain

// CreateRecordOpts holds the parameters for creating a new DNS record.
type CreateRecordOpts struct {
	// Name is the fully-qualified record name.
	Name string

	// Type is the DNS record type. Required.
	Type RecordType

	// Content is the IP address. Required.
	Content string

	// Proxied enables the provider's reverse proxy for the new record.
	Proxied bool
}
