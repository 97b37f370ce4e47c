package pagedoc

import "encoding/json"

// Component tags identify the semantic kind of a page. The playback
// application recognises exactly this set.
const (
	ComponentIntro       = "intro"
	ComponentOrientation = "orientation"
	ComponentTerm        = "term"
	ComponentObjectives  = "objectives"
	ComponentOpinion     = "opinion"
	ComponentLecture     = "lecture"
	ComponentPractice    = "practice"
	ComponentCheck       = "check"
	ComponentExercise    = "exercise"
	ComponentTheorem     = "theorem"
	ComponentNext        = "next"
)

// Document is one lesson's data.json as consumed by the playback application.
type Document struct {
	Subject     string   `json:"subject"`
	Index       int      `json:"index"`
	Section     int      `json:"section"`
	Instruction string   `json:"instruction"`
	Guide       string   `json:"guide"`
	Sections    []string `json:"sections"`
	Pages       []Page   `json:"pages"`
}

// Page is a single page record inside a lesson document. The Data payload
// shape depends on Component; typed accessors below decode it tolerantly.
type Page struct {
	Path        string          `json:"path"`
	Section     int             `json:"section"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Script      string          `json:"script,omitempty"`
	Component   string          `json:"component"`
	Media       string          `json:"media,omitempty"`
	Photo       string          `json:"photo,omitempty"`
	Caption     []Caption       `json:"caption,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// Caption describes a subtitle track attached to a media page.
// The "lable" key is misspelled in the playback format; keep it verbatim.
type Caption struct {
	Src      string `json:"src"`
	Label    string `json:"lable"`
	Language string `json:"language"`
	Kind     string `json:"kind"`
}

// Lookup maps each component tag to the first page carrying it. Building it
// once makes "at most one page per tag" an enforced property instead of an
// assumption repeated at every call site.
type Lookup map[string]Page

// Lookup indexes the document's pages by component tag, keeping only the
// first page per tag.
func (d Document) Lookup() Lookup {
	index := make(Lookup, len(d.Pages))
	for _, page := range d.Pages {
		if page.Component == "" {
			continue
		}
		if _, ok := index[page.Component]; ok {
			continue
		}
		index[page.Component] = page
	}
	return index
}

// Page returns the page for the given component tag, reporting presence.
func (l Lookup) Page(component string) (Page, bool) {
	page, ok := l[component]
	return page, ok
}

// Has reports whether a page with the given component tag exists.
func (l Lookup) Has(component string) bool {
	_, ok := l[component]
	return ok
}

// CaptionSrc returns the first caption track path, or "" when none exists.
func (p Page) CaptionSrc() string {
	if len(p.Caption) == 0 {
		return ""
	}
	return p.Caption[0].Src
}
