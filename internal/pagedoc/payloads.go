package pagedoc

import "encoding/json"

// StringList unmarshals either a bare string or an array of strings. Older
// lesson documents stored term content as a single string; newer ones use an
// array.
type StringList []string

// UnmarshalJSON accepts a string, an array of strings, or null. Array entries
// that are not strings are dropped rather than failing the whole document.
func (s *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringList{single}
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = nil
		return nil
	}
	out := make(StringList, 0, len(raw))
	for _, item := range raw {
		var value string
		if err := json.Unmarshal(item, &value); err == nil {
			out = append(out, value)
		}
	}
	*s = out
	return nil
}

// TermEntry is one term/definition pair on a term page.
type TermEntry struct {
	Title   string     `json:"title"`
	Content StringList `json:"content"`
}

// ObjectiveGroup is one titled list on an objectives page. The page carries
// two groups: learning contents first, learning objectives second.
type ObjectiveGroup struct {
	Title    string   `json:"title"`
	Contents []string `json:"contents"`
}

// ExerciseItem is one question on an exercise page. Type is "boolean" or
// "multiple"; Value holds the choice labels.
type ExerciseItem struct {
	Type       string   `json:"type"`
	Subject    string   `json:"subject"`
	Value      []string `json:"value,omitempty"`
	Answer     string   `json:"answer"`
	Commentary string   `json:"commentary"`
}

// TimestampItem is one chapter marker on a lecture or practice page.
type TimestampItem struct {
	Time string `json:"time"`
}

// OpinionData is the payload of an opinion page.
type OpinionData struct {
	Title string `json:"title"`
}

// CheckData is the payload of a check page.
type CheckData struct {
	Title string `json:"title"`
	Photo string `json:"photo"`
	Think string `json:"think"`
}

// TheoremData is the payload of a theorem (summary) page.
type TheoremData struct {
	Theorem   StringList `json:"theorem"`
	Reference string     `json:"reference"`
}

// IntroData is the payload of an intro page.
type IntroData struct {
	Professor ProfessorData `json:"professor"`
}

// ProfessorData carries the professor block embedded in an intro page.
type ProfessorData struct {
	Name    string       `json:"name"`
	Photo   string       `json:"photo"`
	Profile []ProfileRow `json:"profile"`
}

// ProfileRow is one titled list in a professor profile. Content values are
// kept raw because career rows mix plain strings with structured objects.
type ProfileRow struct {
	Title   string            `json:"title"`
	Content []json.RawMessage `json:"content"`
}

// TermEntries decodes the page payload as term data. Malformed payloads
// decode to nil; the caller is expected to default.
func (p Page) TermEntries() []TermEntry {
	var entries []TermEntry
	decode(p.Data, &entries)
	return entries
}

// ObjectiveGroups decodes the page payload as objectives data.
func (p Page) ObjectiveGroups() []ObjectiveGroup {
	var groups []ObjectiveGroup
	decode(p.Data, &groups)
	return groups
}

// ExerciseItems decodes the page payload as exercise data.
func (p Page) ExerciseItems() []ExerciseItem {
	var items []ExerciseItem
	decode(p.Data, &items)
	return items
}

// Timestamps decodes the page payload as chapter markers, returning the raw
// time strings in order.
func (p Page) Timestamps() []string {
	var items []TimestampItem
	decode(p.Data, &items)
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Time)
	}
	return out
}

// Opinion decodes the page payload as opinion data.
func (p Page) Opinion() OpinionData {
	var data OpinionData
	decode(p.Data, &data)
	return data
}

// Check decodes the page payload as check data.
func (p Page) Check() CheckData {
	var data CheckData
	decode(p.Data, &data)
	return data
}

// Theorem decodes the page payload as theorem data.
func (p Page) Theorem() TheoremData {
	var data TheoremData
	decode(p.Data, &data)
	return data
}

// Intro decodes the page payload as intro data.
func (p Page) Intro() IntroData {
	var data IntroData
	decode(p.Data, &data)
	return data
}

// decode unmarshals into out, leaving the zero value on any error. Content
// is authored incrementally and must always produce something editable, so
// shape mismatches degrade instead of failing.
func decode(raw json.RawMessage, out any) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, out)
}
