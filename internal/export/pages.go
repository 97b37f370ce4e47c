package export

import (
	"encoding/json"
	"strings"

	"coursebuild/internal/convert"
	"coursebuild/internal/course"
	"coursebuild/internal/pagedoc"
)

// Fixed narration media shipped with the playback resources.
const (
	mediaIntro    = "../../../resources/media/common_start.mp3"
	mediaTerm     = "../../../resources/media/common_word.mp3"
	mediaGoal     = "../../../resources/media/common_goal.mp3"
	mediaQuestion = "../../../resources/media/common_question.mp3"
	mediaCheck    = "../../../resources/media/common_check.mp3"
	mediaQuiz     = "../../../resources/media/common_quiz.mp3"
	mediaSummary  = "../../../resources/media/common_summary.mp3"
	mediaOut      = "../../../resources/media/common_out.mp3"
)

func subtitleCaption(src string) []pagedoc.Caption {
	return []pagedoc.Caption{{Src: src, Label: "한국어", Language: "ko", Kind: "subtitles"}}
}

func rawData(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return raw
}

// BuildPages reconstructs a lesson's page list from its builder record,
// mirroring the extractor so a round trip reproduces the builder lesson.
func BuildPages(c course.Course, lesson course.Lesson, sink *ImageSink) []pagedoc.Page {
	pages := []pagedoc.Page{buildIntroPage(c.Professor, sink)}

	if lesson.HasOrientation {
		pages = append(pages, buildOrientationPage(lesson.Orientation))
	}
	pages = append(pages,
		buildTermPage(lesson.Terms, sink),
		buildObjectivesPage(lesson, sink),
		buildOpinionPage(lesson.OpinionQuestion),
		buildLecturePage(lesson),
	)
	if lesson.HasPractice && lesson.PracticeVideoUrl != "" {
		pages = append(pages, buildPracticePage(lesson))
	}
	pages = append(pages,
		buildCheckPage(lesson, sink),
		buildExercisePage(lesson.Exercises, sink),
		buildTheoremPage(lesson.Summary, sink),
		buildNextPage(),
	)
	return pages
}

func buildIntroPage(prof course.Professor, sink *ImageSink) pagedoc.Page {
	career := make([]string, 0, len(prof.Career))
	for _, entry := range prof.Career {
		period := strings.TrimSpace(entry.Period)
		description := strings.TrimSpace(entry.Description)
		switch {
		case period != "" && description != "":
			career = append(career, "<b>"+period+"</b><br />"+description)
		case period != "":
			career = append(career, "<b>"+period+"</b>")
		case description != "":
			career = append(career, description)
		}
	}

	data := pagedoc.IntroData{Professor: pagedoc.ProfessorData{
		Name:  prof.Name,
		Photo: sink.Externalize(prof.Photo),
		Profile: []pagedoc.ProfileRow{
			{Title: "학　력", Content: rawStringList(prof.Education)},
			{Title: "경　력", Content: rawStringList(career)},
		},
	}}
	return pagedoc.Page{
		Path:      "",
		Section:   0,
		Title:     "인트로",
		Component: pagedoc.ComponentIntro,
		Media:     mediaIntro,
		Data:      rawData(data),
	}
}

func rawStringList(items []string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		out = append(out, rawData(item))
	}
	return out
}

func buildOrientationPage(orientation course.Orientation) pagedoc.Page {
	return pagedoc.Page{
		Path:        "/orientation",
		Section:     1,
		Title:       "오리엔테이션",
		Description: "본격적인 학습에 앞서 오리엔테이션을 먼저 들어주세요.",
		Script:      "본격적인 학습에 앞서 교수님의 오리엔테이션을 먼저 들어주세요.",
		Component:   pagedoc.ComponentOrientation,
		Media:       orientation.VideoUrl,
		Caption:     subtitleCaption(orientation.SubtitlePath),
		Data:        rawData(struct{}{}),
	}
}

func buildTermPage(terms []course.Term, sink *ImageSink) pagedoc.Page {
	entries := make([]pagedoc.TermEntry, 0, len(terms))
	for _, term := range terms {
		title := strings.TrimSpace(term.Title)
		content := make([]string, 0, len(term.Content))
		for _, line := range term.Content {
			if cleaned := sink.Externalize(line); cleaned != "" {
				content = append(content, cleaned)
			}
		}
		if title == "" && len(content) == 0 {
			continue
		}
		entries = append(entries, pagedoc.TermEntry{
			Title:   strings.ReplaceAll(title, "\n", "<br />"),
			Content: pagedoc.StringList(content),
		})
	}
	return pagedoc.Page{
		Path:        "/term",
		Section:     1,
		Title:       "용어체크",
		Description: "이번 시간에 다룰 주요 용어를 체크해보세요.",
		Script:      "이번 시간에 다룰 주요 용어를 체크해보세요.",
		Component:   pagedoc.ComponentTerm,
		Media:       mediaTerm,
		Data:        rawData(entries),
	}
}

func buildObjectivesPage(lesson course.Lesson, sink *ImageSink) pagedoc.Page {
	contents := make([]string, 0, len(lesson.LearningContents)+1)
	for _, item := range lesson.LearningContents {
		if item != "" {
			contents = append(contents, sink.Externalize(item))
		}
	}
	// The extractor reparents inline practice content into its own field;
	// re-inline it here so the playback format round-trips.
	if lesson.HasPractice {
		practice := strings.TrimSpace(lesson.PracticeContent)
		if practice == "" {
			practice = convert.PracticePlaceholder
		}
		contents = append(contents, sink.Externalize(practice))
	}

	objectives := make([]string, 0, len(lesson.LearningObjectives))
	for _, item := range lesson.LearningObjectives {
		if item != "" {
			objectives = append(objectives, item)
		}
	}

	data := []pagedoc.ObjectiveGroup{
		{Title: "학습내용", Contents: contents},
		{Title: "학습목표", Contents: objectives},
	}
	return pagedoc.Page{
		Path:        "/objectives",
		Section:     1,
		Title:       "학습목표",
		Description: "주요 학습내용과 학습목표를 살펴보세요.",
		Script:      "이번 시간에 학습할 주요 학습 내용과 학습목표를 확인해보세요.",
		Component:   pagedoc.ComponentObjectives,
		Media:       mediaGoal,
		Data:        rawData(data),
	}
}

func buildOpinionPage(question string) pagedoc.Page {
	return pagedoc.Page{
		Path:        "/opinion",
		Section:     2,
		Title:       "생각묻기",
		Description: "다음의 질문에 답해보세요.",
		Script:      "본격적인 학습을 시작하기 전 다음의 질문에 답해보세요.",
		Component:   pagedoc.ComponentOpinion,
		Media:       mediaQuestion,
		Data:        rawData(pagedoc.OpinionData{Title: question}),
	}
}

func timestampData(stamps []string) []pagedoc.TimestampItem {
	items := make([]pagedoc.TimestampItem, 0, len(stamps))
	for _, stamp := range stamps {
		if stamp != "" {
			items = append(items, pagedoc.TimestampItem{Time: stamp})
		}
	}
	return items
}

func buildLecturePage(lesson course.Lesson) pagedoc.Page {
	return pagedoc.Page{
		Path:        "/lecture",
		Section:     2,
		Title:       "강의보기",
		Description: "교수님의 강의에 맞춰 주도적으로 학습하세요.",
		Script:      "영상페이지에서는 내레이션을 제공하지 않습니다",
		Component:   pagedoc.ComponentLecture,
		Media:       lesson.LectureVideoUrl,
		Caption:     subtitleCaption(lesson.LectureSubtitle),
		Data:        rawData(timestampData(lesson.Timestamps)),
	}
}

func buildPracticePage(lesson course.Lesson) pagedoc.Page {
	return pagedoc.Page{
		Path:        "/practice",
		Section:     2,
		Title:       "실습하기",
		Description: "교수님의 실습 영상을 따라하며 연습해보세요.",
		Script:      "영상페이지에서는 내레이션을 제공하지 않습니다",
		Component:   pagedoc.ComponentPractice,
		Media:       lesson.PracticeVideoUrl,
		Caption:     subtitleCaption(lesson.PracticeSubtitle),
		Data:        rawData(timestampData(lesson.PracticeTimestamps)),
	}
}

func buildCheckPage(lesson course.Lesson, sink *ImageSink) pagedoc.Page {
	return pagedoc.Page{
		Path:        "/check",
		Section:     2,
		Title:       "점검하기",
		Description: "질문에 대한 교수님의 생각을 확인해보세요.",
		Script:      "질문에 대한 교수님의 생각을 확인해보세요.",
		Component:   pagedoc.ComponentCheck,
		Media:       mediaCheck,
		Data: rawData(pagedoc.CheckData{
			Title: lesson.OpinionQuestion,
			Photo: "../images/professor-02.png",
			Think: sink.Externalize(lesson.ProfessorThink),
		}),
	}
}

func buildExercisePage(exercises []course.Exercise, sink *ImageSink) pagedoc.Page {
	items := make([]pagedoc.ExerciseItem, 0, len(exercises))
	for _, exercise := range exercises {
		question := sink.Externalize(exercise.Question)
		if strings.TrimSpace(question) == "" {
			continue
		}
		item := pagedoc.ExerciseItem{
			Subject:    question,
			Answer:     exercise.Answer,
			Commentary: sink.Externalize(exercise.Commentary),
		}
		if exercise.Type == course.ExerciseMultiple {
			item.Type = course.ExerciseMultiple
			item.Value = exercise.Options
			if len(item.Value) == 0 {
				item.Value = []string{"", "", "", ""}
			}
			if item.Answer == "" {
				item.Answer = "1"
			}
		} else {
			item.Type = course.ExerciseBoolean
			item.Value = []string{"O", "X"}
			if item.Answer == "" {
				item.Answer = "2"
			}
		}
		items = append(items, item)
	}
	return pagedoc.Page{
		Path:        "/exercise",
		Section:     3,
		Title:       "연습문제",
		Description: "학습한 내용을 토대로 다음의 문제를 풀어보세요.",
		Script:      "학습한 내용을 얼마나 이해했는지 문제를 풀며 확인해보세요.",
		Component:   pagedoc.ComponentExercise,
		Media:       mediaQuiz,
		Data:        rawData(items),
	}
}

func buildTheoremPage(summary []string, sink *ImageSink) pagedoc.Page {
	theorem := make([]string, 0, len(summary))
	for _, item := range summary {
		if item != "" {
			theorem = append(theorem, sink.Externalize(item))
		}
	}
	return pagedoc.Page{
		Path:        "/theorem",
		Section:     3,
		Title:       "학습정리",
		Description: "학습한 내용을 다시 한번 정리해보세요.",
		Script:      "학습한 내용을 다시 한번 정리해보세요.",
		Component:   pagedoc.ComponentTheorem,
		Media:       mediaSummary,
		Data:        rawData(pagedoc.TheoremData{Theorem: pagedoc.StringList(theorem), Reference: ""}),
	}
}

func buildNextPage() pagedoc.Page {
	return pagedoc.Page{
		Path:        "/next",
		Section:     3,
		Title:       "다음안내",
		Description: "다음시간 주제를 확인하고, 미리 준비해보세요.",
		Script:      "이것으로 이번 시간 강의를 마쳤습니다. 수고하셨습니다.",
		Component:   pagedoc.ComponentNext,
		Media:       mediaOut,
		Photo:       "../images/professor.png",
		Data:        rawData([]any{}),
	}
}
