package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

// SanitizeText strips any markup from user-submitted content. Questions and
// answers are stored and served as plain text.
func SanitizeText(content string) string {
	return strings.TrimSpace(textPolicy.Sanitize(content))
}
