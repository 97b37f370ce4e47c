package convert

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"coursebuild/internal/course"
	"coursebuild/internal/pagedoc"
)

var (
	// Career rows are authored as "<b>PERIOD</b><br/>DESCRIPTION" or
	// "<b>PERIOD</b>" alone.
	careerBoldBreak = regexp.MustCompile(`(?s)<b>(.*?)</b><br\s*/?>\s*(.*)`)
	careerBoldOnly  = regexp.MustCompile(`(?s)<b>(.*?)</b>`)

	// Period text uses the Korean year/month unit suffixes.
	periodRange = regexp.MustCompile(`(\d{4})년\s*(\d{1,2})월\s*~\s*(\d{4})년\s*(\d{1,2})월`)
	periodOpen  = regexp.MustCompile(`(\d{4})년\s*(\d{1,2})월\s*~`)
)

// ParseProfessor extracts the professor record from a lesson document's
// intro page. A missing intro page yields the neutral default; a malformed
// profile degrades row by row.
func ParseProfessor(doc pagedoc.Document) course.Professor {
	page, ok := doc.Lookup().Page(pagedoc.ComponentIntro)
	if !ok {
		return course.DefaultProfessor()
	}
	data := page.Intro().Professor
	if data.Name == "" && data.Photo == "" && len(data.Profile) == 0 {
		return course.DefaultProfessor()
	}

	prof := course.Professor{
		Name:      data.Name,
		Photo:     data.Photo,
		Education: []string{""},
		Career:    []course.CareerEntry{{}},
	}

	if row, ok := findProfileRow(data.Profile, "학"); ok {
		if education := rawStrings(row.Content); len(education) > 0 {
			prof.Education = education
		}
	}
	if row, ok := findProfileRow(data.Profile, "경"); ok {
		if career := parseCareer(row.Content); len(career) > 0 {
			prof.Career = career
		}
	}
	return prof
}

// findProfileRow matches a profile row by a marker rune in its title. Titles
// are padded with full-width spaces ("학　력", "경　력"), so the comparison
// runs on width-folded text.
func findProfileRow(rows []pagedoc.ProfileRow, marker string) (pagedoc.ProfileRow, bool) {
	for _, row := range rows {
		folded := width.Fold.String(row.Title)
		if strings.Contains(folded, marker) {
			return row, true
		}
	}
	return pagedoc.ProfileRow{}, false
}

// rawStrings decodes profile content values that are plain strings, dropping
// anything else.
func rawStrings(values []json.RawMessage) []string {
	out := make([]string, 0, len(values))
	for _, raw := range values {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// parseCareer normalizes career rows from the three shapes that occur in the
// wild: bold-period strings with a description, bold-period strings alone,
// and already-structured objects.
func parseCareer(values []json.RawMessage) []course.CareerEntry {
	entries := make([]course.CareerEntry, 0, len(values))
	for _, raw := range values {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			entries = append(entries, parseCareerString(s))
			continue
		}
		var structured course.CareerEntry
		if err := json.Unmarshal(raw, &structured); err == nil {
			start, end := ParsePeriod(structured.Period)
			if structured.StartDate == "" {
				structured.StartDate = start
			}
			if structured.EndDate == "" {
				structured.EndDate = end
			}
			entries = append(entries, structured)
			continue
		}
		entries = append(entries, course.CareerEntry{})
	}
	return entries
}

func parseCareerString(s string) course.CareerEntry {
	if match := careerBoldBreak.FindStringSubmatch(s); match != nil {
		period := strings.TrimSpace(match[1])
		start, end := ParsePeriod(period)
		return course.CareerEntry{
			Period:      period,
			StartDate:   start,
			EndDate:     end,
			Description: strings.TrimSpace(match[2]),
		}
	}
	if match := careerBoldOnly.FindStringSubmatch(s); match != nil {
		period := strings.TrimSpace(match[1])
		start, end := ParsePeriod(period)
		return course.CareerEntry{Period: period, StartDate: start, EndDate: end}
	}
	// Plain text rows predate the period convention; keep them as a bare
	// description.
	return course.CareerEntry{Description: s}
}

// ParsePeriod converts "YYYY년 MM월 ~ YYYY년 MM월" (or the open-ended
// "YYYY년 MM월 ~") to ISO YYYY-MM-01 date strings. Non-matching text yields
// empty dates; the period text itself is always preserved by callers. The
// professor edit form formats dates back through the inverse rule, so the
// two must stay in lockstep.
func ParsePeriod(period string) (startDate, endDate string) {
	if period == "" {
		return "", ""
	}
	if match := periodRange.FindStringSubmatch(period); match != nil {
		return isoMonth(match[1], match[2]), isoMonth(match[3], match[4])
	}
	if match := periodOpen.FindStringSubmatch(period); match != nil {
		return isoMonth(match[1], match[2]), ""
	}
	return "", ""
}

// FormatPeriod is the inverse of ParsePeriod, rebuilding the authored period
// text from ISO dates.
func FormatPeriod(startDate, endDate string) string {
	start := koreanMonth(startDate)
	if start == "" {
		return ""
	}
	if end := koreanMonth(endDate); end != "" {
		return start + " ~ " + end
	}
	return start + " ~"
}

func isoMonth(year, month string) string {
	m, err := strconv.Atoi(month)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s-%02d-01", year, m)
}

func koreanMonth(date string) string {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) < 2 {
		return ""
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 {
		return ""
	}
	return fmt.Sprintf("%s년 %d월", parts[0], month)
}
