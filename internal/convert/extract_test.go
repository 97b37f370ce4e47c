package convert

import (
	"encoding/json"
	"strings"
	"testing"

	"coursebuild/internal/course"
	"coursebuild/internal/pagedoc"
)

func page(component string, data string) pagedoc.Page {
	p := pagedoc.Page{Component: component}
	if data != "" {
		p.Data = json.RawMessage(data)
	}
	return p
}

func TestExtractEmptyDocumentDefaults(t *testing.T) {
	lesson := Extract(pagedoc.Document{}, 3)
	if lesson.LessonNumber != 3 {
		t.Fatalf("lesson number: %d", lesson.LessonNumber)
	}
	if lesson.WeekNumber != 2 || lesson.SectionInWeek != 1 {
		t.Fatalf("derived numbering: week %d section %d", lesson.WeekNumber, lesson.SectionInWeek)
	}
	if len(lesson.Terms) != 1 || lesson.Terms[0].Title != "" || len(lesson.Terms[0].Content) != 1 || lesson.Terms[0].Content[0] != "" {
		t.Fatalf("term default: %+v", lesson.Terms)
	}
	if len(lesson.Exercises) != 1 || lesson.Exercises[0].Type != course.ExerciseBoolean || lesson.Exercises[0].Answer != "2" {
		t.Fatalf("exercise default: %+v", lesson.Exercises)
	}
	if len(lesson.Timestamps) != 2 || lesson.Timestamps[0] != "0:00:04" || lesson.Timestamps[1] != "0:00:00" {
		t.Fatalf("timestamp default: %v", lesson.Timestamps)
	}
	if lesson.HasOrientation || lesson.HasPractice {
		t.Fatalf("presence flags should default false: %+v", lesson)
	}
	if len(lesson.LearningContents) != 3 || len(lesson.Summary) != 3 {
		t.Fatalf("list defaults: %v %v", lesson.LearningContents, lesson.Summary)
	}
}

func TestExtractLessonNumberAlwaysPropagates(t *testing.T) {
	for _, n := range []int{1, 2, 7, 26} {
		lesson := Extract(pagedoc.Document{}, n)
		if lesson.LessonNumber != n {
			t.Fatalf("Extract(_, %d).LessonNumber = %d", n, lesson.LessonNumber)
		}
		if len(lesson.Exercises) < 1 {
			t.Fatalf("Extract(_, %d) produced no exercises", n)
		}
	}
}

func TestExtractTermCleanup(t *testing.T) {
	doc := pagedoc.Document{Pages: []pagedoc.Page{page(pagedoc.ComponentTerm, `[
		{"title":"평문&lt;plaintext&gt;<br/>보충","content":["• 암호화하기 전의 메시지","",""]},
		{"title":"단일 문자열","content":"• 문자열 내용"},
		{"title":"빈 내용"}
	]`)}}
	lesson := Extract(doc, 1)
	if len(lesson.Terms) != 3 {
		t.Fatalf("expected 3 terms, got %d", len(lesson.Terms))
	}
	if lesson.Terms[0].Title != "평문<plaintext>\n보충" {
		t.Fatalf("title cleanup: %q", lesson.Terms[0].Title)
	}
	if len(lesson.Terms[0].Content) != 1 || lesson.Terms[0].Content[0] != "암호화하기 전의 메시지" {
		t.Fatalf("content cleanup: %v", lesson.Terms[0].Content)
	}
	if len(lesson.Terms[1].Content) != 1 || lesson.Terms[1].Content[0] != "문자열 내용" {
		t.Fatalf("string content: %v", lesson.Terms[1].Content)
	}
	if len(lesson.Terms[2].Content) != 1 || lesson.Terms[2].Content[0] != "" {
		t.Fatalf("empty content must stay a singleton list: %v", lesson.Terms[2].Content)
	}
}

func TestExtractObjectivesStripsOrdinals(t *testing.T) {
	doc := pagedoc.Document{Pages: []pagedoc.Page{page(pagedoc.ComponentObjectives, `[
		{"title":"학습내용","contents":["1. 대칭키 암호","2. <b>공개키</b> 암호"]},
		{"title":"학습목표","contents":["1. 차이를 설명할 수 있다."]}
	]`)}}
	lesson := Extract(doc, 1)
	if lesson.LearningContents[0] != "대칭키 암호" {
		t.Fatalf("ordinal strip: %q", lesson.LearningContents[0])
	}
	if lesson.LearningContents[1] != "<b>공개키</b> 암호" {
		t.Fatalf("tags must survive: %q", lesson.LearningContents[1])
	}
	if lesson.LearningObjectives[0] != "차이를 설명할 수 있다." {
		t.Fatalf("objectives strip: %q", lesson.LearningObjectives[0])
	}
}

func TestExtractPracticeReconciliationInline(t *testing.T) {
	doc := pagedoc.Document{Pages: []pagedoc.Page{page(pagedoc.ComponentObjectives, `[
		{"title":"학습내용","contents":["일반 항목","<div class='practice'><ul><li>따라하기</li></ul></div>"]},
		{"title":"학습목표","contents":["목표"]}
	]`)}}
	lesson := Extract(doc, 1)
	if !lesson.HasPractice {
		t.Fatal("inline practice marker must set HasPractice")
	}
	if len(lesson.LearningContents) != 1 || lesson.LearningContents[0] != "일반 항목" {
		t.Fatalf("practice entry must leave learning contents: %v", lesson.LearningContents)
	}
	if !strings.Contains(lesson.PracticeContent, "<li>따라하기</li>") {
		t.Fatalf("inner content must be reparented: %q", lesson.PracticeContent)
	}
	if !strings.HasPrefix(lesson.PracticeContent, "<div class='practice'>") {
		t.Fatalf("wrapper must be canonical: %q", lesson.PracticeContent)
	}
}

func TestExtractPracticePageWithoutInlineEntry(t *testing.T) {
	doc := pagedoc.Document{Pages: []pagedoc.Page{
		{Component: pagedoc.ComponentPractice, Media: "lecture_P.mp4", Caption: []pagedoc.Caption{{Src: "../subtitles/a_P.vtt"}}},
	}}
	lesson := Extract(doc, 1)
	if !lesson.HasPractice {
		t.Fatal("practice page must set HasPractice")
	}
	if lesson.PracticeContent != PracticePlaceholder {
		t.Fatalf("expected placeholder, got %q", lesson.PracticeContent)
	}
	if lesson.PracticeVideoUrl != "lecture_P.mp4" || lesson.PracticeSubtitle != "../subtitles/a_P.vtt" {
		t.Fatalf("practice media: %+v", lesson)
	}
	if len(lesson.PracticeTimestamps) != 2 {
		t.Fatalf("practice timestamps default: %v", lesson.PracticeTimestamps)
	}
}

func TestExtractExercises(t *testing.T) {
	doc := pagedoc.Document{Pages: []pagedoc.Page{page(pagedoc.ComponentExercise, `[
		{"type":"boolean","subject":"O/X 문제","value":["O","X"],"answer":"1","commentary":"해설"},
		{"type":"multiple","subject":"사지선다","value":["가","나","다","라"],"answer":"3","commentary":""},
		{"type":"unknown","subject":"이상한 유형"}
	]`)}}
	lesson := Extract(doc, 1)
	if len(lesson.Exercises) != 3 {
		t.Fatalf("expected 3 exercises, got %d", len(lesson.Exercises))
	}
	first := lesson.Exercises[0]
	if first.Type != course.ExerciseBoolean || first.Question != "O/X 문제" || first.Answer != "1" || len(first.Options) != 0 {
		t.Fatalf("boolean exercise: %+v", first)
	}
	second := lesson.Exercises[1]
	if second.Type != course.ExerciseMultiple || len(second.Options) != 4 || second.Answer != "3" {
		t.Fatalf("multiple exercise: %+v", second)
	}
	// Unknown types fall back to an empty boolean with answer "2".
	third := lesson.Exercises[2]
	if third.Type != course.ExerciseBoolean || third.Answer != "2" || third.Question != "" {
		t.Fatalf("fallback exercise: %+v", third)
	}
}

func TestExtractLectureAndMetadata(t *testing.T) {
	doc := pagedoc.Document{
		Index:       5,
		Section:     2,
		Instruction: "https://example.com/audio.zip",
		Guide:       "https://example.com/guide.zip",
		Pages: []pagedoc.Page{
			{
				Component: pagedoc.ComponentLecture,
				Media:     "https://cdn/lecture_09.mp4",
				Caption:   []pagedoc.Caption{{Src: "../subtitles/09.vtt"}},
				Data:      json.RawMessage(`[{"time":"0:00:04"},{"time":"0:12:30"},{"time":"0:25:00"}]`),
			},
			page(pagedoc.ComponentOpinion, `{"title":"어떻게 생각하세요?"}`),
			page(pagedoc.ComponentCheck, `{"title":"어떻게 생각하세요?","think":"교수 의견"}`),
		},
	}
	lesson := Extract(doc, 9)
	if lesson.WeekNumber != 5 || lesson.SectionInWeek != 2 {
		t.Fatalf("stored numbering must win: %+v", lesson)
	}
	if lesson.LectureVideoUrl != "https://cdn/lecture_09.mp4" || lesson.LectureSubtitle != "../subtitles/09.vtt" {
		t.Fatalf("lecture media: %+v", lesson)
	}
	if len(lesson.Timestamps) != 3 || lesson.Timestamps[2] != "0:25:00" {
		t.Fatalf("timestamps: %v", lesson.Timestamps)
	}
	if lesson.OpinionQuestion != "어떻게 생각하세요?" || lesson.ProfessorThink != "교수 의견" {
		t.Fatalf("opinion/check: %+v", lesson)
	}
	if lesson.InstructionUrl != "https://example.com/audio.zip" || lesson.GuideUrl != "https://example.com/guide.zip" {
		t.Fatalf("download urls: %+v", lesson)
	}
}

func TestExtractDoesNotShiftMidtermWeek(t *testing.T) {
	// The midterm skip belongs to the lesson factory; an explicit week 8 in a
	// document must pass through untouched.
	doc := pagedoc.Document{Index: 8}
	if lesson := Extract(doc, 15); lesson.WeekNumber != 8 {
		t.Fatalf("week 8 must not be shifted, got %d", lesson.WeekNumber)
	}
}

func TestExtractOrientation(t *testing.T) {
	doc := pagedoc.Document{Pages: []pagedoc.Page{{
		Component: pagedoc.ComponentOrientation,
		Media:     "https://cdn/ot.mp4",
		Caption:   []pagedoc.Caption{{Src: "../subtitles/ot.vtt", Language: "ko"}},
	}}}
	lesson := Extract(doc, 1)
	if !lesson.HasOrientation {
		t.Fatal("expected orientation flag")
	}
	if lesson.Orientation.VideoUrl != "https://cdn/ot.mp4" || lesson.Orientation.SubtitlePath != "../subtitles/ot.vtt" {
		t.Fatalf("orientation: %+v", lesson.Orientation)
	}
}
