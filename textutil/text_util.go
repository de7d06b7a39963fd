package textutil

import (
	"regexp"
	"strings"
)

var reMultiSpace = regexp.MustCompile(`\s+`)

// SmartTrim trims the ends and collapses inner whitespace runs to a
// single space. Names are single line so line breaks collapse too.
func SmartTrim(s string) string {
	return strings.TrimSpace(reMultiSpace.ReplaceAllString(s, " "))
}
