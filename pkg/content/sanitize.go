// Package content cleans user-generated content before it is stored.
package content

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips unsafe markup from user-generated post content
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a sanitizer with the UGC policy: basic formatting
// survives, scripts and event handlers do not
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

// Sanitize returns the content with unsafe markup removed and surrounding
// whitespace trimmed
func (s *Sanitizer) Sanitize(content string) string {
	return strings.TrimSpace(s.policy.Sanitize(content))
}
