package convert

import (
	"regexp"
	"strings"

	"coursebuild/internal/course"
)

// RelativeImagePrefix is the canonical on-disk prefix for images referenced
// from rich-text HTML.
const RelativeImagePrefix = "../images/"

var (
	imgTag          = regexp.MustCompile(`(?i)<img\s[^>]*>`)
	// The leading class keeps this from matching inside data-original-src.
	srcAttr         = regexp.MustCompile(`(?i)[^-\w]src\s*=\s*["']([^"']*)["']`)
	originalSrcAttr = regexp.MustCompile(`(?i)\bdata-original-src\s*=\s*["']([^"']*)["']`)
)

// MarkRelativeImages annotates <img> tags whose src is a relative images/
// path. The path is normalized to the ../images/ form and preserved in a
// data-original-src attribute; when the store holds an embedded
// representation for it, src is rewritten to that form for display. Tags that
// already carry the attribute are only refreshed, never re-annotated, which
// makes the operation idempotent.
//
// This is the seam between the durable on-disk representation (relative
// paths) and the in-editor one (embedded bytes); the two must never be
// conflated or the export path would write embedded bytes where a relative
// path belongs.
func MarkRelativeImages(html string, store map[string]string) string {
	if html == "" || !strings.Contains(html, "<img") {
		return html
	}
	return imgTag.ReplaceAllStringFunc(html, func(tag string) string {
		if match := originalSrcAttr.FindStringSubmatch(tag); match != nil {
			if embedded, ok := store[normalizeImagePath(match[1])]; ok {
				return replaceSrc(tag, embedded)
			}
			return tag
		}

		match := srcAttr.FindStringSubmatch(tag)
		if match == nil {
			return tag
		}
		normalized, ok := relativeImagePath(match[1])
		if !ok {
			return tag
		}
		src := normalized
		if embedded, ok := store[normalized]; ok {
			src = embedded
		}
		return addOriginalSrc(replaceSrc(tag, src), normalized)
	})
}

// MarkRelativeImagesAll applies MarkRelativeImages to each entry of a list.
func MarkRelativeImagesAll(items []string, store map[string]string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = MarkRelativeImages(item, store)
	}
	return out
}

// AnnotateLesson runs the image annotator over every rich-text field of a
// builder lesson.
func AnnotateLesson(lesson *course.Lesson, store map[string]string) {
	if lesson == nil {
		return
	}
	for i := range lesson.Terms {
		lesson.Terms[i].Content = MarkRelativeImagesAll(lesson.Terms[i].Content, store)
	}
	lesson.ProfessorThink = MarkRelativeImages(lesson.ProfessorThink, store)
	lesson.PracticeContent = MarkRelativeImages(lesson.PracticeContent, store)
	lesson.Summary = MarkRelativeImagesAll(lesson.Summary, store)
	for i := range lesson.Exercises {
		lesson.Exercises[i].Question = MarkRelativeImages(lesson.Exercises[i].Question, store)
		lesson.Exercises[i].Commentary = MarkRelativeImages(lesson.Exercises[i].Commentary, store)
	}
}

// relativeImagePath reports whether src points into an images/ directory and
// returns the normalized ../images/ form. Absolute URLs and embedded data
// URLs are left alone.
func relativeImagePath(src string) (string, bool) {
	if src == "" || strings.HasPrefix(src, "data:") || strings.Contains(src, "://") {
		return "", false
	}
	idx := strings.Index(src, "images/")
	if idx < 0 {
		return "", false
	}
	if idx > 0 && src[idx-1] != '/' {
		return "", false
	}
	return "../" + src[idx:], true
}

// normalizeImagePath maps any stored path variant to the canonical
// ../images/ key used by the image store.
func normalizeImagePath(path string) string {
	if normalized, ok := relativeImagePath(path); ok {
		return normalized
	}
	return path
}

func replaceSrc(tag, newSrc string) string {
	loc := srcAttr.FindStringSubmatchIndex(tag)
	if loc == nil {
		return tag
	}
	return tag[:loc[2]] + newSrc + tag[loc[3]:]
}

func addOriginalSrc(tag, path string) string {
	attr := ` data-original-src="` + path + `"`
	if strings.HasSuffix(tag, "/>") {
		return tag[:len(tag)-2] + attr + "/>"
	}
	if strings.HasSuffix(tag, ">") {
		return tag[:len(tag)-1] + attr + ">"
	}
	return tag + attr
}
