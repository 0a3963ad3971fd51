// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize cleans user-entered text before it is staged into an
// assignment draft. Titles are plain text and lose all markup; descriptions
// may carry simple formatting, which is filtered down to a safe subset.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// ugc allows basic user-generated-content formatting plus tables,
	// which teachers use for rubric-style descriptions.
	ugc = func() *bluemonday.Policy {
		p := bluemonday.UGCPolicy()
		p.AllowTables()
		return p
	}()

	strict = bluemonday.StrictPolicy()
)

// Sanitize filters s down to safe formatting markup. Script tags, event
// handler attributes, and javascript: URLs are removed.
func Sanitize(s string) string {
	return ugc.Sanitize(s)
}

// StripTags removes all markup from s, returning trimmed plain text.
func StripTags(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
