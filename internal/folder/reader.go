package folder

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"coursebuild/internal/convert"
	"coursebuild/internal/course"
	"coursebuild/internal/pagedoc"
)

// Result is a parsed course plus the per-file issues collected along the way.
type Result struct {
	Course course.Course
	Issues []Issue
}

// Options tunes course directory reading.
type Options struct {
	// StartLessonNumber is the counter offset for table-of-contents lesson
	// titles. Zero means 1.
	StartLessonNumber int
}

// ReadCourse reads a playback course directory
// (<dir>/<NN>/assets/data/data.json per lesson, <dir>/subjects.json,
// <dir>/images/) and assembles the flat builder course.
//
// Per-file read and parse failures are collected as Issues without aborting
// the remaining lessons. The only hard failure is a directory with no lesson
// documents at all.
func ReadCourse(dir string, opts Options) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDocumentRead, dir, err)
	}

	result := &Result{}
	docs := make(map[int]pagedoc.Document)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		lessonNumber, ok := lessonNumberFromName(entry.Name())
		if !ok {
			continue
		}
		path := filepath.Join(dir, entry.Name(), "assets", "data", "data.json")
		doc, issue := readLessonDocument(path)
		if issue != nil {
			result.Issues = append(result.Issues, *issue)
			continue
		}
		docs[lessonNumber] = doc
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoLessonDocuments, dir)
	}

	toc, tocIssue := readToc(filepath.Join(dir, "subjects.json"))
	if tocIssue != nil {
		result.Issues = append(result.Issues, *tocIssue)
	}
	startLesson := opts.StartLessonNumber
	if startLesson < 1 {
		startLesson = 1
	}
	index := convert.ParseToc(toc, startLesson)

	images := readImages(filepath.Join(dir, "images"))

	numbers := make([]int, 0, len(docs))
	for number := range docs {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)

	c := course.Course{
		CourseCode:     filepath.Base(dir),
		Professor:      convert.ParseProfessor(docs[numbers[0]]),
		ImportedImages: images,
	}
	for _, number := range numbers {
		doc := docs[number]
		lesson := convert.Extract(doc, number)
		if title, ok := index.LessonTitles[number]; ok {
			lesson.LessonTitle = title
		}
		if week, ok := index.LessonWeeks[number]; ok {
			lesson.WeekNumber = week
		}
		if title, ok := index.WeekTitles[lesson.WeekNumber]; ok {
			lesson.WeekTitle = title
		}
		if c.CourseName == "" {
			c.CourseName = doc.Subject
		}
		convert.AnnotateLesson(&lesson, images)
		c.Lessons = append(c.Lessons, lesson)
	}
	c.Professor.Photo = convert.MarkRelativeImages(c.Professor.Photo, images)
	course.RenumberSections(c.Lessons)

	result.Course = c
	return result, nil
}

// lessonNumberFromName parses the numeric lesson directory segment ("01",
// "14"). Non-numeric directories (images, subtitles) are skipped.
func lessonNumberFromName(name string) (int, bool) {
	number, err := strconv.Atoi(name)
	if err != nil || number < 1 {
		return 0, false
	}
	return number, true
}

func readLessonDocument(path string) (pagedoc.Document, *Issue) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return pagedoc.Document{}, &Issue{Path: path, Err: fmt.Errorf("%w: %v", ErrDocumentRead, err)}
	}
	var doc pagedoc.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return pagedoc.Document{}, &Issue{Path: path, Err: fmt.Errorf("%w: %v", ErrDocumentParse, err)}
	}
	return doc, nil
}

// readToc loads subjects.json. A missing file is normal for young courses
// and yields an empty table of contents without an issue.
func readToc(path string) (convert.Toc, *Issue) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return convert.Toc{}, nil
		}
		return convert.Toc{}, &Issue{Path: path, Err: fmt.Errorf("%w: %v", ErrDocumentRead, err)}
	}
	var toc convert.Toc
	if err := json.Unmarshal(raw, &toc); err != nil {
		return convert.Toc{}, &Issue{Path: path, Err: fmt.Errorf("%w: %v", ErrDocumentParse, err)}
	}
	return toc, nil
}

// readImages loads every file under the course images directory into the
// image store as a data URL, keyed by its canonical ../images/ path. Reading
// is best effort; a missing directory just means no embedded display forms.
func readImages(dir string) map[string]string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	store := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		mime := imageMIME(entry.Name())
		if mime == "" {
			continue
		}
		key := convert.RelativeImagePrefix + entry.Name()
		store[key] = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)
	}
	if len(store) == 0 {
		return nil
	}
	return store
}

func imageMIME(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	case ".webp":
		return "image/webp"
	default:
		return ""
	}
}
