package convert

import (
	"encoding/json"
	"testing"

	"coursebuild/internal/pagedoc"
)

func introDocument(professorJSON string) pagedoc.Document {
	return pagedoc.Document{Pages: []pagedoc.Page{{
		Component: pagedoc.ComponentIntro,
		Data:      json.RawMessage(`{"professor":` + professorJSON + `}`),
	}}}
}

func TestParseProfessorMissingIntro(t *testing.T) {
	prof := ParseProfessor(pagedoc.Document{})
	if prof.Name != "" || prof.Photo != "" {
		t.Fatalf("unexpected professor: %+v", prof)
	}
	if len(prof.Education) != 1 || prof.Education[0] != "" {
		t.Fatalf("education default: %v", prof.Education)
	}
	if len(prof.Career) != 1 || prof.Career[0].Period != "" {
		t.Fatalf("career default: %v", prof.Career)
	}
}

func TestParseProfessorFullProfile(t *testing.T) {
	doc := introDocument(`{
		"name": "홍길동",
		"photo": "../images/25itinse_professor.png",
		"profile": [
			{"title": "학　력", "content": ["OO대학교 박사", "OO대학교 석사"]},
			{"title": "경　력", "content": [
				"<b>2020년 3월 ~ 2021년 11월</b><br />OO기업 연구원",
				"<b>2022년 1월 ~</b>",
				"구형 문자열 경력"
			]}
		]
	}`)
	prof := ParseProfessor(doc)
	if prof.Name != "홍길동" || prof.Photo != "../images/25itinse_professor.png" {
		t.Fatalf("identity: %+v", prof)
	}
	if len(prof.Education) != 2 || prof.Education[0] != "OO대학교 박사" {
		t.Fatalf("education: %v", prof.Education)
	}
	if len(prof.Career) != 3 {
		t.Fatalf("career count: %v", prof.Career)
	}
	first := prof.Career[0]
	if first.Period != "2020년 3월 ~ 2021년 11월" || first.StartDate != "2020-03-01" || first.EndDate != "2021-11-01" || first.Description != "OO기업 연구원" {
		t.Fatalf("first career: %+v", first)
	}
	second := prof.Career[1]
	if second.Period != "2022년 1월 ~" || second.StartDate != "2022-01-01" || second.EndDate != "" || second.Description != "" {
		t.Fatalf("second career: %+v", second)
	}
	third := prof.Career[2]
	if third.Period != "" || third.Description != "구형 문자열 경력" {
		t.Fatalf("third career: %+v", third)
	}
}

func TestParseProfessorStructuredCareer(t *testing.T) {
	doc := introDocument(`{
		"name": "홍길동",
		"profile": [
			{"title": "경력", "content": [
				{"period": "2019년 9월 ~ 2020년 2월", "description": "조교"}
			]}
		]
	}`)
	prof := ParseProfessor(doc)
	entry := prof.Career[0]
	if entry.Period != "2019년 9월 ~ 2020년 2월" || entry.Description != "조교" {
		t.Fatalf("structured career: %+v", entry)
	}
	if entry.StartDate != "2019-09-01" || entry.EndDate != "2020-02-01" {
		t.Fatalf("derived dates: %+v", entry)
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		period, start, end string
	}{
		{"2020년 3월 ~ 2021년 11월", "2020-03-01", "2021-11-01"},
		{"2020년 3월 ~", "2020-03-01", ""},
		{"2020년3월~2021년11월", "2020-03-01", "2021-11-01"},
		{"", "", ""},
		{"재직 중", "", ""},
	}
	for _, tt := range tests {
		start, end := ParsePeriod(tt.period)
		if start != tt.start || end != tt.end {
			t.Errorf("ParsePeriod(%q) = (%q, %q), want (%q, %q)", tt.period, start, end, tt.start, tt.end)
		}
	}
}

func TestFormatPeriodRoundTrip(t *testing.T) {
	tests := []struct {
		start, end, want string
	}{
		{"2020-03-01", "2021-11-01", "2020년 3월 ~ 2021년 11월"},
		{"2020-03-01", "", "2020년 3월 ~"},
		{"", "", ""},
	}
	for _, tt := range tests {
		if got := FormatPeriod(tt.start, tt.end); got != tt.want {
			t.Errorf("FormatPeriod(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
	// Parsing the formatted text must reproduce the dates.
	start, end := ParsePeriod(FormatPeriod("2020-03-01", "2021-11-01"))
	if start != "2020-03-01" || end != "2021-11-01" {
		t.Fatalf("round trip: (%q, %q)", start, end)
	}
}
