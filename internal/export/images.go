package export

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"coursebuild/internal/convert"
)

var (
	imgTag = regexp.MustCompile(`(?i)<img\s[^>]*>`)
	// The leading class keeps this from matching inside data-original-src.
	srcAttr         = regexp.MustCompile(`(?i)[^-\w]src\s*=\s*["']([^"']*)["']`)
	originalSrcAttr = regexp.MustCompile(`(?i)\s*\bdata-original-src\s*=\s*["']([^"']*)["']`)
	dataURL         = regexp.MustCompile(`^data:image/(png|jpeg|jpg|gif|svg\+xml|webp);base64,(.*)$`)
)

// ImageSink converts rich-text HTML from the in-editor image representation
// back to the durable on-disk one. Annotated tags get their recorded relative
// path back; embedded images that were pasted in the editor and never existed
// on disk are decoded into new files under a course-scoped name.
type ImageSink struct {
	prefix string
	// Files maps image file name to decoded bytes, ready for the images
	// directory.
	Files map[string][]byte

	counter int
	seen    map[string]string
}

// NewImageSink creates a sink whose generated file names start with prefix
// (normally the course code).
func NewImageSink(prefix string) *ImageSink {
	return &ImageSink{
		prefix: prefix,
		Files:  make(map[string][]byte),
		seen:   make(map[string]string),
	}
}

// Externalize rewrites every <img> tag in html to reference a relative
// ../images/ path. Tags annotated with data-original-src revert to that path
// and lose the annotation; unannotated data URLs are extracted through the
// sink. Embedded bytes never survive into the output.
func (s *ImageSink) Externalize(html string) string {
	if html == "" || !strings.Contains(html, "<img") {
		return html
	}
	return imgTag.ReplaceAllStringFunc(html, func(tag string) string {
		if match := originalSrcAttr.FindStringSubmatch(tag); match != nil {
			tag = originalSrcAttr.ReplaceAllString(tag, "")
			return replaceSrc(tag, match[1])
		}
		match := srcAttr.FindStringSubmatch(tag)
		if match == nil || !strings.HasPrefix(match[1], "data:") {
			return tag
		}
		name, ok := s.extract(match[1])
		if !ok {
			return tag
		}
		return replaceSrc(tag, convert.RelativeImagePrefix+name)
	})
}

// extract decodes an embedded data URL into the file map, reusing the file
// assigned on a previous sighting of the same payload.
func (s *ImageSink) extract(src string) (string, bool) {
	if name, ok := s.seen[src]; ok {
		return name, true
	}
	match := dataURL.FindStringSubmatch(src)
	if match == nil {
		return "", false
	}
	raw, err := base64.StdEncoding.DecodeString(match[2])
	if err != nil {
		return "", false
	}
	s.counter++
	name := fmt.Sprintf("%s_img_%03d.%s", s.prefix, s.counter, imageExt(match[1]))
	s.Files[name] = raw
	s.seen[src] = name
	return name, true
}

func imageExt(mimeSubtype string) string {
	switch mimeSubtype {
	case "jpeg", "jpg":
		return "jpg"
	case "svg+xml":
		return "svg"
	default:
		return mimeSubtype
	}
}

func replaceSrc(tag, newSrc string) string {
	loc := srcAttr.FindStringSubmatchIndex(tag)
	if loc == nil {
		return tag
	}
	return tag[:loc[2]] + newSrc + tag[loc[3]:]
}
