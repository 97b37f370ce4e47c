package pagedoc

import (
	"encoding/json"
	"testing"
)

func TestLookupKeepsFirstPagePerTag(t *testing.T) {
	doc := Document{Pages: []Page{
		{Component: ComponentTerm, Title: "first"},
		{Component: ComponentTerm, Title: "second"},
		{Component: ComponentLecture, Title: "lecture"},
		{Component: ""},
	}}
	lookup := doc.Lookup()
	if len(lookup) != 2 {
		t.Fatalf("expected 2 indexed pages, got %d", len(lookup))
	}
	page, ok := lookup.Page(ComponentTerm)
	if !ok || page.Title != "first" {
		t.Fatalf("expected first term page, got %+v (ok=%v)", page, ok)
	}
	if lookup.Has(ComponentExercise) {
		t.Fatal("expected no exercise page")
	}
}

func TestStringListAcceptsStringAndArray(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{`"single"`, []string{"single"}},
		{`["a", "b"]`, []string{"a", "b"}},
		{`["a", 3, "b"]`, []string{"a", "b"}},
		{`null`, nil},
		{`{"bad": true}`, nil},
	}
	for _, tt := range tests {
		var list StringList
		if err := json.Unmarshal([]byte(tt.raw), &list); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.raw, err)
		}
		if len(list) != len(tt.want) {
			t.Fatalf("unmarshal %s: got %v, want %v", tt.raw, list, tt.want)
		}
		for i := range list {
			if list[i] != tt.want[i] {
				t.Fatalf("unmarshal %s: got %v, want %v", tt.raw, list, tt.want)
			}
		}
	}
}

func TestTermEntriesDecodesMixedContent(t *testing.T) {
	page := Page{
		Component: ComponentTerm,
		Data:      json.RawMessage(`[{"title":"평문","content":"• 정의"},{"title":"암호문","content":["줄1","줄2"]}]`),
	}
	entries := page.TermEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if len(entries[0].Content) != 1 || entries[0].Content[0] != "• 정의" {
		t.Fatalf("unexpected first content: %v", entries[0].Content)
	}
	if len(entries[1].Content) != 2 {
		t.Fatalf("unexpected second content: %v", entries[1].Content)
	}
}

func TestPayloadDecodeDegradesOnMalformedShape(t *testing.T) {
	page := Page{Component: ComponentExercise, Data: json.RawMessage(`{"not":"a list"}`)}
	if items := page.ExerciseItems(); items != nil {
		t.Fatalf("expected nil exercises, got %v", items)
	}
	empty := Page{Component: ComponentCheck}
	if think := empty.Check().Think; think != "" {
		t.Fatalf("expected empty think, got %q", think)
	}
}

func TestTimestampsAndCaptionSrc(t *testing.T) {
	page := Page{
		Component: ComponentLecture,
		Caption:   []Caption{{Src: "../subtitles/a.vtt", Language: "ko"}},
		Data:      json.RawMessage(`[{"time":"0:00:04"},{"time":"0:10:00"}]`),
	}
	stamps := page.Timestamps()
	if len(stamps) != 2 || stamps[0] != "0:00:04" {
		t.Fatalf("unexpected timestamps: %v", stamps)
	}
	if page.CaptionSrc() != "../subtitles/a.vtt" {
		t.Fatalf("unexpected caption src: %q", page.CaptionSrc())
	}
	if (Page{}).CaptionSrc() != "" {
		t.Fatal("expected empty caption src for captionless page")
	}
}
