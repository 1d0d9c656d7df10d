// Package sanitize escapes user-submitted text before it is embedded into
// HTML email bodies.
package sanitize

import "strings"

// replacer escapes the four characters that would let submitted text be
// interpreted as markup by an HTML mail client. The ampersand is deliberately
// left alone so that already-escaped output is never produced from a single
// pass over raw input.
var replacer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// HTML escapes <, >, " and ' in s, each exactly once. Text without those
// characters is returned unchanged.
func HTML(s string) string {
	return replacer.Replace(s)
}
