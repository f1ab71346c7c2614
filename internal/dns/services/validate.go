package services

import (
	"fmt"
	"strings"

	"cddns/internal/util"
)

// normalizeDomain lowercases and strips any trailing dot from a domain name.
func normalizeDomain(d string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(d), "."))
}

// validateRequest checks the inputs a run cannot proceed without.
func validateRequest(req Request) error {
	if req.Domain == "" {
		return fmt.Errorf("domain is required (use --domain or CF_DOMAIN)")
	}
	return util.ValidateDomain(req.Domain)
}
