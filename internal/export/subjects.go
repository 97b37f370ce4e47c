package export

import (
	"fmt"

	"coursebuild/internal/convert"
	"coursebuild/internal/course"
)

// BuildSubjects renders a course's table of contents in the subjects.json
// markup: one group per week titled `<span>N주</span> <title>`, listing each
// lesson as `<span>M차</span> <title>` with M counting within the week.
func BuildSubjects(c course.Course) convert.Toc {
	var toc convert.Toc
	for _, week := range course.Weeks(c.Lessons) {
		subject := convert.TocSubject{
			Title: fmt.Sprintf("<span>%d주</span> %s", week.Number, week.Title),
		}
		for _, lesson := range week.Lessons {
			subject.Lists = append(subject.Lists,
				fmt.Sprintf("<span>%d차</span> %s", lesson.SectionInWeek, lesson.LessonTitle))
		}
		toc.Subjects = append(toc.Subjects, subject)
	}
	return toc
}
