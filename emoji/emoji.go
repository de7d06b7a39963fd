package emoji

import (
	"strings"

	"github.com/kyokomi/emoji/v2"
)

// Lookup resolves a gemoji alias like ":bowling:" to its glyph.
// Unknown aliases resolve to fallback.
func Lookup(alias, fallback string) string {
	if s, ok := emoji.CodeMap()[alias]; ok {
		return strings.TrimSpace(s)
	}
	return fallback
}
