package convert

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PracticePlaceholder is the canonical empty practice block used when a
// lesson has practice media but no inline practice entry to reparent.
const PracticePlaceholder = "<div class='practice'><ul><li></li></ul></div>"

// practiceClass is the CSS-class token that marks an inline practice entry
// inside the learning-contents list.
const practiceClass = "practice"

func looksLikePractice(entry string) bool {
	return strings.Contains(entry, "class='practice'") || strings.Contains(entry, `class="practice"`)
}

// splitPracticeContent scans cleaned learning-contents entries for the inline
// practice marker. The first marked entry is removed from the list and its
// inner content is reparented under a canonical practice wrapper; the seam
// must neither lose nor duplicate it.
func splitPracticeContent(contents []string) (remaining []string, practice string, found bool) {
	remaining = make([]string, 0, len(contents))
	for _, entry := range contents {
		if found || !looksLikePractice(entry) {
			remaining = append(remaining, entry)
			continue
		}
		practice = canonicalPractice(entry)
		found = true
	}
	return remaining, practice, found
}

// canonicalPractice extracts the inner content of the practice wrapper and
// rewraps it in the canonical form. When the entry cannot be parsed the raw
// entry is kept as-is so no authored content is dropped.
func canonicalPractice(entry string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(entry))
	if err != nil {
		return entry
	}
	selection := doc.Find("." + practiceClass).First()
	if selection.Length() == 0 {
		return entry
	}
	inner, err := selection.Html()
	if err != nil {
		return entry
	}
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return PracticePlaceholder
	}
	return "<div class='practice'>" + inner + "</div>"
}
