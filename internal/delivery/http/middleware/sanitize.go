package middleware

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips all HTML. Error messages may embed storage or library
// text that echoes request input, so everything is scrubbed before it can
// reach a log record or response body.
var strictPolicy = bluemonday.StrictPolicy()

// sanitizeMessage removes markup from an error message and restores plain
// entities the policy escaped.
func sanitizeMessage(message string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(message)))
}
