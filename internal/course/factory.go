package course

import "fmt"

// midtermWeek is reserved for the midterm exam; the lesson factory skips it
// when assigning weeks. The shift lives here only — the extractor never
// applies it, so imported documents keep their stored weeks verbatim.
const midtermWeek = 8

// DefaultWeek derives a week number from a lesson number: two lessons per
// week, no midterm shift.
func DefaultWeek(lessonNumber int) int {
	if lessonNumber < 1 {
		return 1
	}
	return (lessonNumber + 1) / 2
}

// DefaultSection derives a lesson's position within its week from the lesson
// number alone: odd lessons are first, even lessons second.
func DefaultSection(lessonNumber int) int {
	if lessonNumber < 1 {
		return 1
	}
	return (lessonNumber-1)%2 + 1
}

// FactoryWeek is DefaultWeek with the midterm shift applied: derived weeks at
// or past the midterm move up by one.
func FactoryWeek(lessonNumber int) int {
	week := DefaultWeek(lessonNumber)
	if week >= midtermWeek {
		week++
	}
	return week
}

// NewLesson builds an empty builder lesson for the given lesson number.
func NewLesson(lessonNumber int) Lesson {
	if lessonNumber < 1 {
		lessonNumber = 1
	}
	return Lesson{
		WeekNumber:         FactoryWeek(lessonNumber),
		LessonNumber:       lessonNumber,
		SectionInWeek:      DefaultSection(lessonNumber),
		Terms:              []Term{{Content: []string{""}}, {Content: []string{""}}, {Content: []string{""}}},
		LearningContents:   []string{"", "", ""},
		LearningObjectives: []string{"", "", ""},
		Timestamps:         DefaultTimestamps(),
		PracticeTimestamps: DefaultTimestamps(),
		Exercises:          []Exercise{DefaultExercise()},
		Summary:            []string{"", "", ""},
	}
}

// NewCourse scaffolds a course with the given number of empty lessons.
func NewCourse(lessonCount int) Course {
	if lessonCount < 1 {
		lessonCount = 1
	}
	lessons := make([]Lesson, 0, lessonCount)
	for n := 1; n <= lessonCount; n++ {
		lessons = append(lessons, NewLesson(n))
	}
	c := Course{
		Professor: DefaultProfessor(),
		Lessons:   lessons,
	}
	RenumberSections(c.Lessons)
	return c
}

// EffectiveOrientation derives the orientation URLs the first lesson should
// present when none have been authored. Derivation happens at read time; the
// stored record only changes on explicit edits.
func EffectiveOrientation(lesson Lesson, courseCode, year string) Orientation {
	if lesson.Orientation.VideoUrl != "" || lesson.Orientation.SubtitlePath != "" {
		return lesson.Orientation
	}
	if lesson.WeekNumber != 1 || lesson.LessonNumber != 1 || courseCode == "" {
		return lesson.Orientation
	}
	derived := Orientation{
		SubtitlePath: fmt.Sprintf("../subtitles/%s_ot.vtt", courseCode),
	}
	if year != "" {
		derived.VideoUrl = fmt.Sprintf("https://cdn-it.livestudy.com/mov/%s/%s/%s_ot.mp4", year, courseCode, courseCode)
	}
	return derived
}

// EffectiveLectureVideo derives the lecture video URL for a lesson when none
// has been authored.
func EffectiveLectureVideo(lesson Lesson, courseCode, year string) string {
	if lesson.LectureVideoUrl != "" {
		return lesson.LectureVideoUrl
	}
	if courseCode == "" || year == "" {
		return ""
	}
	return fmt.Sprintf("https://cdn-it.livestudy.com/mov/%s/%s/%s_%02d.mp4", year, courseCode, courseCode, lesson.LessonNumber)
}

// EffectiveLectureSubtitle derives the lecture subtitle path for a lesson
// when none has been authored.
func EffectiveLectureSubtitle(lesson Lesson, courseCode string) string {
	if lesson.LectureSubtitle != "" {
		return lesson.LectureSubtitle
	}
	if courseCode == "" {
		return ""
	}
	return fmt.Sprintf("../subtitles/%s_%02d.vtt", courseCode, lesson.LessonNumber)
}
