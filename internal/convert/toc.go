package convert

import (
	"regexp"
	"strconv"
)

// Toc is the subjects.json table-of-contents document: one group per week,
// each listing its lesson titles.
type Toc struct {
	Subjects []TocSubject `json:"subjects"`
}

// TocSubject is one week group. Title embeds a week-number marker
// (`<span>N주</span>`); each Lists entry embeds an ordinal marker
// (`<span>M차</span>`).
type TocSubject struct {
	Title string   `json:"title"`
	Lists []string `json:"lists"`
}

// TocIndex is the parsed table of contents: plain-text titles keyed by the
// numbers extracted from the markup.
type TocIndex struct {
	// LessonTitles maps the monotonically assigned lesson counter to the
	// stripped lesson title.
	LessonTitles map[int]string
	// WeekTitles maps the extracted week number to the stripped week title.
	WeekTitles map[int]string
	// LessonWeeks maps each assigned lesson counter to the week it was
	// listed under.
	LessonWeeks map[int]int
}

var (
	weekMarker   = regexp.MustCompile(`<[^>]+>\s*(\d+)\s*주\s*</[^>]+>`)
	lessonMarker = regexp.MustCompile(`<[^>]+>\s*(\d+)\s*차(?:시)?\s*</[^>]+>`)
)

// ParseToc walks the week groups in order, extracting week numbers and
// titles from the group headers and assigning lesson titles to a counter
// that starts at startLessonNumber and increments across group boundaries.
//
// An entry that strips to an empty title is skipped and does not consume a
// counter value, keeping the counters dense over titled lessons only. That
// matches the observed producer; reserving the slot instead would silently
// reindex every downstream lesson-title lookup.
func ParseToc(doc Toc, startLessonNumber int) TocIndex {
	if startLessonNumber < 1 {
		startLessonNumber = 1
	}
	index := TocIndex{
		LessonTitles: make(map[int]string),
		WeekTitles:   make(map[int]string),
		LessonWeeks:  make(map[int]int),
	}

	counter := startLessonNumber
	week := 0
	for _, subject := range doc.Subjects {
		week = extractWeekNumber(subject.Title, week+1)
		index.WeekTitles[week] = StripTags(weekMarker.ReplaceAllString(subject.Title, ""))

		for _, entry := range subject.Lists {
			title := StripTags(lessonMarker.ReplaceAllString(entry, ""))
			if title == "" {
				continue
			}
			index.LessonTitles[counter] = title
			index.LessonWeeks[counter] = week
			counter++
		}
	}
	return index
}

// extractWeekNumber pulls the numeric week marker out of a group title,
// falling back to the sequential week number when the marker is missing or
// malformed.
func extractWeekNumber(title string, fallback int) int {
	match := weekMarker.FindStringSubmatch(title)
	if match == nil {
		return fallback
	}
	number, err := strconv.Atoi(match[1])
	if err != nil || number < 1 {
		return fallback
	}
	return number
}
