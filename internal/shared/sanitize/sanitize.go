// Package sanitize strips markup from user-supplied text before it is
// stored or rendered. Ticket titles, categories, and comment bodies all
// pass through here.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans untrusted user input.
type Sanitizer interface {
	Sanitize(raw string) string
}

type policySanitizer struct {
	policy *bluemonday.Policy
}

// NewStrict returns a sanitizer that removes all HTML elements and
// attributes, keeping only the text content.
func NewStrict() Sanitizer {
	return &policySanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *policySanitizer) Sanitize(raw string) string {
	return strings.TrimSpace(s.policy.Sanitize(raw))
}
