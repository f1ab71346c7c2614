package util

import (
	"fmt"
	"regexp"
	"strings"
)

// validLabelChars matches only alphanumeric characters, hyphens, and underscores.
var validLabelChars = regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)

// ValidateDomain checks that name is a fully-qualified domain name with at
// least two labels:
//   - At most 253 characters
//   - Every label 1 to 63 characters
//   - Only alphanumeric characters (a-z, A-Z, 0-9), hyphens (-), and underscores (_)
//   - No label starts or ends with a hyphen
func ValidateDomain(name string) error {
	if len(name) > 253 {
		return fmt.Errorf("domain must be at most 253 characters, got %d", len(name))
	}

	labels := strings.Split(name, ".")
	if len(labels) < 2 {
		return fmt.Errorf("domain %q must include a zone (e.g. home.example.com)", name)
	}

	for _, label := range labels {
		if label == "" {
			return fmt.Errorf("domain %q contains an empty label", name)
		}
		if len(label) > 63 {
			return fmt.Errorf("domain label %q exceeds 63 characters", label)
		}
		if !validLabelChars.MatchString(label) {
			return fmt.Errorf("domain %q contains invalid characters (only a-z, A-Z, 0-9, hyphens, and underscores are allowed)", name)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("domain label %q must not start or end with a hyphen", label)
		}
	}

	return nil
}
