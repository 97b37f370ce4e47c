// Package pagedoc models the per-lesson page documents consumed by the
// playback application: a list of heterogeneous page records discriminated by
// a component tag, each with a tag-specific data payload.
//
// Payload decoding is deliberately tolerant. Lesson content is authored
// incrementally, so a payload that does not match the expected shape decodes
// to a zero value rather than an error; callers substitute their documented
// defaults. The Lookup type indexes pages by tag in a single pass and pins
// down the "first page wins" rule for duplicate tags.
package pagedoc
