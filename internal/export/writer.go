package export

import (
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"coursebuild/internal/convert"
	"coursebuild/internal/course"
	"coursebuild/internal/pagedoc"
)

//go:embed shell.html
var playbackShell string

var lessonSections = []string{"인트로", "준비하기", "학습하기", "정리하기"}

// BuildDocument renders one lesson as its playback data.json document. The
// sink collects any embedded images the rich-text fields still carry.
func BuildDocument(c course.Course, lesson course.Lesson, sink *ImageSink) pagedoc.Document {
	return pagedoc.Document{
		Subject:     c.CourseName,
		Index:       lesson.WeekNumber,
		Section:     lesson.SectionInWeek,
		Instruction: lesson.InstructionUrl,
		Guide:       lesson.GuideUrl,
		Sections:    lessonSections,
		Pages:       BuildPages(c, lesson, sink),
	}
}

// WriteCourse materialises a builder course as a playback course directory
// under dir: one <NN>/ folder per lesson with index.html and
// assets/data/data.json, subjects.json at the root, and an images/ directory
// holding the imported store plus any images extracted from rich text.
//
// Section numbers are recomputed before writing; stored values are never
// trusted.
func WriteCourse(dir string, c course.Course) error {
	course.RenumberSections(c.Lessons)

	sink := NewImageSink(c.CourseCode)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create course directory: %w", err)
	}

	for _, lesson := range c.Lessons {
		doc := BuildDocument(c, lesson, sink)
		lessonDir := filepath.Join(dir, fmt.Sprintf("%02d", lesson.LessonNumber))
		dataDir := filepath.Join(lessonDir, "assets", "data")
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return fmt.Errorf("create lesson directory: %w", err)
		}
		raw, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode lesson %d: %w", lesson.LessonNumber, err)
		}
		if err := os.WriteFile(filepath.Join(dataDir, "data.json"), raw, 0o644); err != nil {
			return fmt.Errorf("write lesson %d: %w", lesson.LessonNumber, err)
		}
		if err := os.WriteFile(filepath.Join(lessonDir, "index.html"), []byte(playbackShell), 0o644); err != nil {
			return fmt.Errorf("write lesson %d shell: %w", lesson.LessonNumber, err)
		}
	}

	if err := writeSubjects(dir, c); err != nil {
		return err
	}
	return writeImages(dir, c, sink)
}

func writeSubjects(dir string, c course.Course) error {
	raw, err := json.MarshalIndent(BuildSubjects(c), "", "  ")
	if err != nil {
		return fmt.Errorf("encode subjects: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "subjects.json"), raw, 0o644); err != nil {
		return fmt.Errorf("write subjects.json: %w", err)
	}
	return nil
}

// writeImages restores the imported image store to files and adds the images
// the sink extracted from rich text. Store entries that fail to decode are
// skipped; the annotated relative path still points where the file belongs.
func writeImages(dir string, c course.Course, sink *ImageSink) error {
	if len(c.ImportedImages) == 0 && len(sink.Files) == 0 {
		return nil
	}
	imagesDir := filepath.Join(dir, "images")
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		return fmt.Errorf("create images directory: %w", err)
	}

	for key, embedded := range c.ImportedImages {
		name := strings.TrimPrefix(key, convert.RelativeImagePrefix)
		if name == key || name == "" || strings.Contains(name, "/") {
			continue
		}
		raw, ok := decodeDataURL(embedded)
		if !ok {
			continue
		}
		if err := os.WriteFile(filepath.Join(imagesDir, name), raw, 0o644); err != nil {
			return fmt.Errorf("write image %s: %w", name, err)
		}
	}
	for name, raw := range sink.Files {
		if err := os.WriteFile(filepath.Join(imagesDir, name), raw, 0o644); err != nil {
			return fmt.Errorf("write image %s: %w", name, err)
		}
	}
	return nil
}

func decodeDataURL(src string) ([]byte, bool) {
	_, payload, ok := strings.Cut(src, ";base64,")
	if !ok || !strings.HasPrefix(src, "data:") {
		return nil, false
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, false
	}
	return raw, true
}
