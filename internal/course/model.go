package course

// Course is the flat, form-editable representation of a whole course. It is
// what the authoring frontend edits and what import/export round-trips
// through; JSON field names follow the builder interchange format.
type Course struct {
	CourseCode string `json:"courseCode"`
	CourseName string `json:"courseName"`
	Year       string `json:"year,omitempty"`
	CourseType string `json:"courseType,omitempty"`

	Professor Professor `json:"professor"`
	Lessons   []Lesson  `json:"lessons"`

	// ImportedImages maps normalized relative paths (../images/<name>) to
	// their embedded data-URL representation, keeping the durable on-disk
	// form and the in-editor form from being conflated.
	ImportedImages map[string]string `json:"importedImages,omitempty"`
}

// Lesson is the builder record for one lesson.
type Lesson struct {
	WeekNumber    int    `json:"weekNumber"`
	LessonNumber  int    `json:"lessonNumber"`
	SectionInWeek int    `json:"sectionInWeek"`
	LessonTitle   string `json:"lessonTitle"`
	WeekTitle     string `json:"weekTitle"`

	HasOrientation bool        `json:"hasOrientation"`
	Orientation    Orientation `json:"orientation"`

	Terms              []Term   `json:"terms"`
	LearningContents   []string `json:"learningContents"`
	LearningObjectives []string `json:"learningObjectives"`

	OpinionQuestion string `json:"opinionQuestion"`
	ProfessorThink  string `json:"professorThink"`

	LectureVideoUrl string   `json:"lectureVideoUrl"`
	LectureSubtitle string   `json:"lectureSubtitle"`
	Timestamps      []string `json:"timestamps"`

	HasPractice        bool     `json:"hasPractice"`
	PracticeContent    string   `json:"practiceContent"`
	PracticeVideoUrl   string   `json:"practiceVideoUrl"`
	PracticeSubtitle   string   `json:"practiceSubtitle"`
	PracticeTimestamps []string `json:"practiceTimestamps"`

	Exercises []Exercise `json:"exercises"`
	Summary   []string   `json:"summary"`

	InstructionUrl string `json:"instructionUrl"`
	GuideUrl       string `json:"guideUrl"`
}

// Orientation holds the orientation video shown before the first lesson.
type Orientation struct {
	VideoUrl     string `json:"videoUrl"`
	SubtitlePath string `json:"subtitlePath"`
}

// Term is one term/definition pair. Content is always a non-empty list.
type Term struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// Exercise types. Boolean questions are O/X, multiple questions carry four
// options.
const (
	ExerciseBoolean  = "boolean"
	ExerciseMultiple = "multiple"
)

// Exercise is one practice question.
type Exercise struct {
	Type       string   `json:"type"`
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Options    []string `json:"options"`
	Commentary string   `json:"commentary"`
}

// Professor is the course-wide instructor record.
type Professor struct {
	Name      string        `json:"name"`
	Photo     string        `json:"photo"`
	Education []string      `json:"education"`
	Career    []CareerEntry `json:"career"`
}

// CareerEntry is one career row. Period keeps the authored text; StartDate
// and EndDate carry the parsed ISO form when the period text matched.
type CareerEntry struct {
	Period      string `json:"period"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// DefaultProfessor returns the neutral professor record used when no intro
// page exists yet.
func DefaultProfessor() Professor {
	return Professor{
		Education: []string{""},
		Career:    []CareerEntry{{}},
	}
}

// DefaultTimestamps returns the chapter-marker list used whenever a stored
// list is absent or empty. The list is never empty.
func DefaultTimestamps() []string {
	return []string{"0:00:04", "0:00:00"}
}

// DefaultExercise returns the single empty question synthesized when a lesson
// has no exercises. Boolean with answer "2" (X) is the neutral choice.
func DefaultExercise() Exercise {
	return Exercise{Type: ExerciseBoolean, Answer: "2", Options: []string{}}
}
