// Package course defines the builder data model: the flat course and lesson
// records the authoring frontend edits, plus the factories and numbering
// rules that keep them consistent.
//
// Two week derivations exist on purpose. DefaultWeek is the plain
// two-lessons-per-week rule the extractor falls back to when a document
// carries no week; FactoryWeek additionally skips the reserved midterm week
// and applies only when scaffolding new lessons. SectionInWeek is always
// recomputed from lesson numbers before export rather than trusted from
// storage.
package course
