package course

import "sort"

// RenumberSections recomputes SectionInWeek for every lesson from scratch:
// lessons sharing a week, ordered by lesson number, are numbered 1..N with no
// gaps. Stored values are never trusted; callers run this before any export.
func RenumberSections(lessons []Lesson) {
	byWeek := make(map[int][]int)
	for idx, lesson := range lessons {
		byWeek[lesson.WeekNumber] = append(byWeek[lesson.WeekNumber], idx)
	}
	for _, indexes := range byWeek {
		sort.Slice(indexes, func(i, j int) bool {
			return lessons[indexes[i]].LessonNumber < lessons[indexes[j]].LessonNumber
		})
		for position, idx := range indexes {
			lessons[idx].SectionInWeek = position + 1
		}
	}
}

// Weeks groups a course's lessons into ordered week summaries. Lesson order
// within a week follows lesson number.
func Weeks(lessons []Lesson) []Week {
	byWeek := make(map[int][]Lesson)
	for _, lesson := range lessons {
		byWeek[lesson.WeekNumber] = append(byWeek[lesson.WeekNumber], lesson)
	}
	numbers := make([]int, 0, len(byWeek))
	for number := range byWeek {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)

	weeks := make([]Week, 0, len(numbers))
	for _, number := range numbers {
		group := byWeek[number]
		sort.Slice(group, func(i, j int) bool {
			return group[i].LessonNumber < group[j].LessonNumber
		})
		week := Week{Number: number, Lessons: group}
		for _, lesson := range group {
			if lesson.WeekTitle != "" {
				week.Title = lesson.WeekTitle
				break
			}
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// Week is a derived grouping of lessons sharing a week number.
type Week struct {
	Number  int
	Title   string
	Lessons []Lesson
}
