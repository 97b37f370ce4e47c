package convert

import (
	"coursebuild/internal/course"
	"coursebuild/internal/pagedoc"
)

// Extract flattens one lesson's page document into a builder lesson. Every
// page is optional; a missing tag degrades to the documented default and the
// function never fails. The lesson number comes from the caller (directory
// naming), never from document content.
//
// Week and section fall back to the plain two-lessons-per-week derivation
// when the document carries none. The midterm shift is the lesson factory's
// business and is deliberately not applied here.
func Extract(doc pagedoc.Document, lessonNumber int) course.Lesson {
	if lessonNumber < 1 {
		lessonNumber = 1
	}
	pages := doc.Lookup()

	lesson := course.Lesson{
		LessonNumber:   lessonNumber,
		WeekNumber:     doc.Index,
		SectionInWeek:  doc.Section,
		InstructionUrl: doc.Instruction,
		GuideUrl:       doc.Guide,
	}
	if lesson.WeekNumber < 1 {
		lesson.WeekNumber = course.DefaultWeek(lessonNumber)
	}
	if lesson.SectionInWeek < 1 {
		lesson.SectionInWeek = course.DefaultSection(lessonNumber)
	}

	if page, ok := pages.Page(pagedoc.ComponentOrientation); ok {
		lesson.HasOrientation = true
		lesson.Orientation = course.Orientation{
			VideoUrl:     page.Media,
			SubtitlePath: page.CaptionSrc(),
		}
	}

	lesson.Terms = extractTerms(pages)

	contents, objectives := extractObjectives(pages)
	remaining, practice, inlinePractice := splitPracticeContent(contents)
	lesson.LearningContents = remaining
	lesson.LearningObjectives = objectives

	practicePage, hasPracticePage := pages.Page(pagedoc.ComponentPractice)
	lesson.HasPractice = inlinePractice || hasPracticePage
	switch {
	case inlinePractice:
		lesson.PracticeContent = practice
	case hasPracticePage:
		lesson.PracticeContent = PracticePlaceholder
	}
	if hasPracticePage {
		lesson.PracticeVideoUrl = practicePage.Media
		lesson.PracticeSubtitle = practicePage.CaptionSrc()
		lesson.PracticeTimestamps = orDefaultTimestamps(practicePage.Timestamps())
	} else {
		lesson.PracticeTimestamps = course.DefaultTimestamps()
	}

	if page, ok := pages.Page(pagedoc.ComponentOpinion); ok {
		lesson.OpinionQuestion = page.Opinion().Title
	}
	if page, ok := pages.Page(pagedoc.ComponentCheck); ok {
		lesson.ProfessorThink = page.Check().Think
	}

	lecturePage, _ := pages.Page(pagedoc.ComponentLecture)
	lesson.LectureVideoUrl = lecturePage.Media
	lesson.LectureSubtitle = lecturePage.CaptionSrc()
	lesson.Timestamps = orDefaultTimestamps(lecturePage.Timestamps())

	lesson.Exercises = extractExercises(pages)
	lesson.Summary = extractSummary(pages)

	return lesson
}

func extractTerms(pages pagedoc.Lookup) []course.Term {
	page, ok := pages.Page(pagedoc.ComponentTerm)
	if !ok {
		return []course.Term{{Content: []string{""}}}
	}
	entries := page.TermEntries()
	if len(entries) == 0 {
		return []course.Term{{Content: []string{""}}}
	}

	terms := make([]course.Term, 0, len(entries))
	for _, entry := range entries {
		title := BreaksToNewlines(DecodeEntities(entry.Title))
		content := make([]string, 0, len(entry.Content))
		for _, line := range entry.Content {
			cleaned := StripBullet(DecodeEntities(line))
			if cleaned != "" {
				content = append(content, cleaned)
			}
		}
		if len(content) == 0 {
			content = []string{""}
		}
		terms = append(terms, course.Term{Title: title, Content: content})
	}
	return terms
}

func extractObjectives(pages pagedoc.Lookup) (contents, objectives []string) {
	page, ok := pages.Page(pagedoc.ComponentObjectives)
	groups := page.ObjectiveGroups()
	if !ok || len(groups) == 0 {
		return []string{"", "", ""}, []string{"", "", ""}
	}

	contents = cleanObjectiveList(groupContents(groups, 0))
	objectives = cleanObjectiveList(groupContents(groups, 1))
	return contents, objectives
}

func groupContents(groups []pagedoc.ObjectiveGroup, index int) []string {
	if index >= len(groups) || len(groups[index].Contents) == 0 {
		return []string{"", "", ""}
	}
	return groups[index].Contents
}

// cleanObjectiveList decodes entities and strips authored ordinal prefixes.
// Tags inside the remaining text survive; the field is rich-text downstream.
func cleanObjectiveList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, StripOrdinal(DecodeEntities(item)))
	}
	return out
}

func extractExercises(pages pagedoc.Lookup) []course.Exercise {
	page, _ := pages.Page(pagedoc.ComponentExercise)
	items := page.ExerciseItems()

	exercises := make([]course.Exercise, 0, len(items))
	for _, item := range items {
		switch item.Type {
		case course.ExerciseBoolean:
			exercises = append(exercises, course.Exercise{
				Type:       course.ExerciseBoolean,
				Question:   item.Subject,
				Answer:     orDefault(item.Answer, "2"),
				Options:    []string{},
				Commentary: item.Commentary,
			})
		case course.ExerciseMultiple:
			options := item.Value
			if len(options) == 0 {
				options = []string{"", "", "", ""}
			}
			exercises = append(exercises, course.Exercise{
				Type:       course.ExerciseMultiple,
				Question:   item.Subject,
				Answer:     orDefault(item.Answer, "1"),
				Options:    options,
				Commentary: item.Commentary,
			})
		default:
			exercises = append(exercises, course.DefaultExercise())
		}
	}
	if len(exercises) == 0 {
		exercises = append(exercises, course.DefaultExercise())
	}
	return exercises
}

func extractSummary(pages pagedoc.Lookup) []string {
	page, ok := pages.Page(pagedoc.ComponentTheorem)
	if !ok {
		return []string{"", "", ""}
	}
	theorem := page.Theorem().Theorem
	if len(theorem) == 0 {
		return []string{"", "", ""}
	}
	return []string(theorem)
}

func orDefaultTimestamps(stamps []string) []string {
	if len(stamps) == 0 {
		return course.DefaultTimestamps()
	}
	return stamps
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
