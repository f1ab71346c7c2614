package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cddns/internal/dns/domain"
	"cddns/internal/httputil"

	"github.com/sirupsen/logrus"
)

const (
	cloudflareBaseURL = "https://api.cloudflare.com/client/v4"

	// CloudflareRecordTTL is the TTL given to every record cddns creates.
	CloudflareRecordTTL = 3600

	// commentLayout formats the audit comment timestamp (local time).
	commentLayout = "2006-01-02 15:04:05"

	zonesPerPage   = 50
	recordsPerPage = 100
)

// Compile-time check that CloudflareProvider satisfies domain.Provider.
var _ domain.Provider = (*CloudflareProvider)(nil)

// CloudflareProvider implements domain.Provider using the Cloudflare API v4.
// It authenticates via a scoped API Token (not a Global API Key).
// The token needs Zone:Read and DNS:Edit permissions.
type CloudflareProvider struct {
	token   string
	baseURL string
	ttl     int
	client  *http.Client
	logger  *logrus.Entry
	now     func() time.Time
}

// CloudflareOption configures a CloudflareProvider.
type CloudflareOption func(*CloudflareProvider)

// WithBaseURL points the provider at a different API root (tests, proxies).
func WithBaseURL(baseURL string) CloudflareOption {
	return func(c *CloudflareProvider) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for every API call.
func WithHTTPClient(client *http.Client) CloudflareOption {
	return func(c *CloudflareProvider) {
		if client != nil {
			c.client = client
		}
	}
}

// WithLogger sets the logger for debug events.
func WithLogger(logger *logrus.Entry) CloudflareOption {
	return func(c *CloudflareProvider) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock overrides the clock used for audit comments.
func WithClock(now func() time.Time) CloudflareOption {
	return func(c *CloudflareProvider) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCloudflareProvider creates a CloudflareProvider with the given API Token.
func NewCloudflareProvider(token string, opts ...CloudflareOption) *CloudflareProvider {
	c := &CloudflareProvider{
		token:   token,
		baseURL: cloudflareBaseURL,
		ttl:     CloudflareRecordTTL,
		client:  httputil.DefaultClient(),
		logger:  discardLogger(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetDisplayName returns the human-readable provider name.
func (c *CloudflareProvider) GetDisplayName() string {
	return "Cloudflare"
}

// --- API request/response types ---

// cfEnvelope is the standard Cloudflare API response wrapper.
type cfEnvelope[T any] struct {
	Success    bool          `json:"success"`
	Errors     []cfError     `json:"errors"`
	Result     T             `json:"result"`
	ResultInfo *cfResultInfo `json:"result_info,omitempty"`
}

// cfError represents a single Cloudflare API error.
type cfError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// cfResultInfo holds pagination info from Cloudflare list responses.
type cfResultInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	Count      int `json:"count"`
	TotalCount int `json:"total_count"`
}

// cfDNSRecord is the Cloudflare DNS record object. Type stays a plain string
// because a zone listing contains every record type, not just A/AAAA.
type cfDNSRecord struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
	TTL     int    `json:"ttl"`
	Proxied bool   `json:"proxied"`
	Comment string `json:"comment"`
}

// cfRecordBody is the request body for both POST and PUT on dns_records.
type cfRecordBody struct {
	Type    domain.RecordType `json:"type"`
	Name    string            `json:"name"`
	Content string            `json:"content"`
	TTL     int               `json:"ttl"`
	Proxied bool              `json:"proxied"`
	Comment string            `json:"comment"`
}

// cfTokenStatus is the result of /user/tokens/verify.
type cfTokenStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// --- HTTP helpers ---

// firstError returns the first listed Cloudflare error, if any.
func firstError(errs []cfError) (cfError, bool) {
	if len(errs) == 0 {
		return cfError{}, false
	}
	return errs[0], true
}

// statusError builds an HTTPStatusError, pulling provider details out of the
// body when it parses as an envelope.
func statusError(status int, body []byte) error {
	statusErr := &domain.HTTPStatusError{StatusCode: status}
	var env cfEnvelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err == nil {
		if e, ok := firstError(env.Errors); ok {
			statusErr.Code = e.Code
			statusErr.Message = e.Message
		}
	}
	return statusErr
}

// doJSON sends a request and decodes the enveloped response.
// subject names the response for ParseError messages.
func doJSON[T any](ctx context.Context, c *CloudflareProvider, method, path, subject string, body any) (*cfEnvelope[T], error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("cloudflare: failed to encode request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("cloudflare: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	c.logger.WithFields(logrus.Fields{"method": method, "path": path}).Trace("making API request")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Method: method, URL: url, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, respBody)
	}

	var out cfEnvelope[T]
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, &domain.ParseError{Subject: subject, Err: err}
	}
	if !out.Success {
		apiErr := &domain.APIError{}
		if e, ok := firstError(out.Errors); ok {
			apiErr.Code = e.Code
			apiErr.Message = e.Message
		}
		return nil, apiErr
	}
	return &out, nil
}

// listAll walks every page of a Cloudflare list endpoint. path must not
// carry a query string.
func listAll[T any](ctx context.Context, c *CloudflareProvider, path, subject string, perPage int) ([]T, error) {
	var all []T
	page := 1
	for {
		pagePath := fmt.Sprintf("%s?page=%d&per_page=%d", path, page, perPage)
		out, err := doJSON[[]T](ctx, c, http.MethodGet, pagePath, subject, nil)
		if err != nil {
			return nil, err
		}
		all = append(all, out.Result...)

		if out.ResultInfo == nil || page >= out.ResultInfo.TotalPages {
			break
		}
		page++
	}
	return all, nil
}

// comment returns the audit annotation stamped on created and updated records.
func (c *CloudflareProvider) comment() string {
	return "Automatic by DDNS - Set " + c.now().Local().Format(commentLayout)
}

// --- Provider implementation ---

// ResolveZoneID lists every zone visible to the token and returns the one
// whose name equals the registrable domain of fqdn.
func (c *CloudflareProvider) ResolveZoneID(ctx context.Context, fqdn string) (string, error) {
	zones, err := listAll[domain.Zone](ctx, c, "/zones", "zones", zonesPerPage)
	if err != nil {
		return "", fmt.Errorf("failed to list zones: %w", err)
	}

	apex := domain.RegistrableDomain(fqdn)
	for _, z := range zones {
		if z.Name == apex {
			c.logger.WithFields(logrus.Fields{"zone": z.Name, "zone_id": z.ID}).Trace("matched zone")
			return z.ID, nil
		}
	}

	return "", fmt.Errorf("%w: %q is not among the %d zones visible to the token (does the token have DNS zone permission?)",
		domain.ErrZoneNotFound, apex, len(zones))
}

// FetchRecord returns the first record in the zone named exactly fqdn.
// Records are scanned in the order Cloudflare lists them; later duplicates
// are ignored and reported at warning level.
func (c *CloudflareProvider) FetchRecord(ctx context.Context, zoneID string, fqdn string) (*domain.Record, error) {
	records, err := listAll[cfDNSRecord](ctx, c, fmt.Sprintf("/zones/%s/dns_records", zoneID), "DNS records", recordsPerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list DNS records: %w", err)
	}

	var first *cfDNSRecord
	matches := 0
	for i := range records {
		if records[i].Name != fqdn {
			continue
		}
		matches++
		if first == nil {
			first = &records[i]
		}
	}
	if first == nil {
		return nil, fmt.Errorf("%w: no record named %q (is the subdomain correct?)", domain.ErrRecordNotFound, fqdn)
	}
	if matches > 1 {
		c.logger.WithFields(logrus.Fields{
			"name":      fqdn,
			"matches":   matches,
			"record_id": first.ID,
		}).Warn("several records share this name, using the first one listed")
	}

	rec, err := cfToDomainRecord(*first)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateRecord creates a new record with the fixed TTL and an audit comment.
func (c *CloudflareProvider) CreateRecord(ctx context.Context, zoneID string, opts domain.CreateRecordOpts) (*domain.Record, error) {
	body := cfRecordBody{
		Type:    opts.Type,
		Name:    opts.Name,
		Content: opts.Content,
		TTL:     c.ttl,
		Proxied: opts.Proxied,
		Comment: c.comment(),
	}

	path := fmt.Sprintf("/zones/%s/dns_records", zoneID)
	out, err := doJSON[cfDNSRecord](ctx, c, http.MethodPost, path, "create record", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create record %q: %w", opts.Name, err)
	}

	rec, err := cfToDomainRecord(out.Result)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateRecord replaces the record's content, carrying type, name, TTL and
// proxy setting over from existing.
func (c *CloudflareProvider) UpdateRecord(ctx context.Context, zoneID string, recordID string, content string, existing domain.Record) (*domain.Record, error) {
	body := cfRecordBody{
		Type:    existing.Type,
		Name:    existing.Name,
		Content: content,
		TTL:     existing.TTL,
		Proxied: existing.Proxied,
		Comment: c.comment(),
	}

	path := fmt.Sprintf("/zones/%s/dns_records/%s", zoneID, recordID)
	out, err := doJSON[cfDNSRecord](ctx, c, http.MethodPut, path, "update record", body)
	if err != nil {
		return nil, fmt.Errorf("failed to update record %q: %w", recordID, err)
	}

	rec, err := cfToDomainRecord(out.Result)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// VerifyToken checks that the token is known to Cloudflare and active.
func (c *CloudflareProvider) VerifyToken(ctx context.Context) error {
	out, err := doJSON[cfTokenStatus](ctx, c, http.MethodGet, "/user/tokens/verify", "token verification", nil)
	if err != nil {
		return fmt.Errorf("failed to verify token: %w", err)
	}
	if out.Result.Status != "active" {
		return fmt.Errorf("expected token status to be \"active\"; got %q", out.Result.Status)
	}
	return nil
}

// --- Conversion helpers ---

// cfToDomainRecord converts a Cloudflare API record to a domain.Record.
// Records of any type other than A/AAAA are rejected so they are never
// written back.
func cfToDomainRecord(r cfDNSRecord) (domain.Record, error) {
	typ, err := domain.ParseRecordType(r.Type)
	if err != nil {
		return domain.Record{}, fmt.Errorf("record %q (%s): %w", r.Name, r.ID, err)
	}
	return domain.Record{
		ID:      r.ID,
		Type:    typ,
		Name:    r.Name,
		Content: r.Content,
		TTL:     r.TTL,
		Proxied: r.Proxied,
		Comment: r.Comment,
	}, nil
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
