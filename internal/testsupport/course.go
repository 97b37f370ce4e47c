package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"coursebuild/internal/pagedoc"
)

// WriteLessonDocument marshals a page document into the playback layout
// (<dir>/<NN>/assets/data/data.json) and returns the file path.
func WriteLessonDocument(t testing.TB, dir string, lessonNumber int, doc pagedoc.Document) string {
	t.Helper()

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal lesson document: %v", err)
	}
	return WriteRawLessonDocument(t, dir, lessonNumber, raw)
}

// WriteRawLessonDocument writes raw bytes as a lesson's data.json, useful
// for exercising malformed input.
func WriteRawLessonDocument(t testing.TB, dir string, lessonNumber int, raw []byte) string {
	t.Helper()

	dataDir := filepath.Join(dir, fmt.Sprintf("%02d", lessonNumber), "assets", "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatalf("create lesson directory: %v", err)
	}
	path := filepath.Join(dataDir, "data.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write lesson document: %v", err)
	}
	return path
}

// WriteSubjects writes a subjects.json table of contents into the course
// directory.
func WriteSubjects(t testing.TB, dir string, subjects any) {
	t.Helper()

	raw, err := json.Marshal(subjects)
	if err != nil {
		t.Fatalf("marshal subjects: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "subjects.json"), raw, 0o644); err != nil {
		t.Fatalf("write subjects.json: %v", err)
	}
}

// WriteImage drops an image file into the course images directory.
func WriteImage(t testing.TB, dir, name string, data []byte) {
	t.Helper()

	imagesDir := filepath.Join(dir, "images")
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		t.Fatalf("create images directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(imagesDir, name), data, 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
}

// SampleLessonDocument builds a small but representative page document.
func SampleLessonDocument() pagedoc.Document {
	return pagedoc.Document{
		Subject: "인터넷보안",
		Index:   1,
		Pages: []pagedoc.Page{
			{
				Component: pagedoc.ComponentTerm,
				Data:      json.RawMessage(`[{"title":"평문","content":["• 암호화하기 전의 메시지"]}]`),
			},
			{
				Component: pagedoc.ComponentObjectives,
				Data:      json.RawMessage(`[{"title":"학습내용","contents":["1. 암호 개요"]},{"title":"학습목표","contents":["1. 암호를 설명할 수 있다."]}]`),
			},
			{
				Component: pagedoc.ComponentLecture,
				Media:     "https://cdn/lecture_01.mp4",
				Caption:   []pagedoc.Caption{{Src: "../subtitles/01.vtt", Label: "한국어", Language: "ko", Kind: "subtitles"}},
				Data:      json.RawMessage(`[{"time":"0:00:04"},{"time":"0:00:00"}]`),
			},
			{
				Component: pagedoc.ComponentExercise,
				Data:      json.RawMessage(`[{"type":"boolean","subject":"평문은 암호화된 메시지이다.","value":["O","X"],"answer":"2","commentary":"평문은 암호화 전의 메시지다."}]`),
			},
			{
				Component: pagedoc.ComponentTheorem,
				Data:      json.RawMessage(`{"theorem":["암호의 기초를 학습했다."],"reference":""}`),
			},
		},
	}
}
