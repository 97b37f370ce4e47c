package convert

import (
	"regexp"
	"strings"
)

// entityDecoder handles exactly the five standard entities the authoring
// pipeline escapes. Richer entities (&nbsp; and friends) belong to the
// editor's HTML dialect and pass through untouched.
var entityDecoder = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&amp;", "&",
)

var (
	bulletPrefix  = regexp.MustCompile(`^•\s*`)
	ordinalPrefix = regexp.MustCompile(`^\d+\.\s*`)
	lineBreakTag  = regexp.MustCompile(`(?i)<br\s*/?>`)
	anyTag        = regexp.MustCompile(`<[^>]*>`)
)

// DecodeEntities decodes the five standard HTML entities.
func DecodeEntities(s string) string {
	return entityDecoder.Replace(s)
}

// StripBullet removes a leading bullet glyph and its trailing whitespace,
// then trims the line.
func StripBullet(s string) string {
	return strings.TrimSpace(bulletPrefix.ReplaceAllString(s, ""))
}

// StripOrdinal removes a leading "<integer>. " prefix, then trims the line.
func StripOrdinal(s string) string {
	return strings.TrimSpace(ordinalPrefix.ReplaceAllString(s, ""))
}

// BreaksToNewlines converts literal <br> and <br/> tags to newline
// characters and trims the result.
func BreaksToNewlines(s string) string {
	return strings.TrimSpace(lineBreakTag.ReplaceAllString(s, "\n"))
}

// StripTags removes every inline markup tag, leaving plain text.
func StripTags(s string) string {
	return strings.TrimSpace(anyTag.ReplaceAllString(s, ""))
}
