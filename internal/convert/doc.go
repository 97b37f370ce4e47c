// Package convert implements the structural converter between the playback
// page-document format and the flat builder records: per-lesson extraction,
// table-of-contents parsing, professor-profile parsing, and the relative
// image annotation seam, together with the text cleanup rules they share.
//
// The whole package follows a no-throw, default-on-missing policy. Lesson
// content is authored incrementally and must always produce something the
// editor can display, so absent or malformed fields degrade to documented
// defaults instead of surfacing errors. File access and JSON decoding stay at
// the folder boundary; every function here is pure over its inputs.
//
// The converter deliberately does not parse arbitrary rich-text HTML. Only
// the <img> annotation pattern and the inline practice wrapper are
// recognised; everything else is treated as an opaque serialized document so
// the core does not couple to the editor's evolving dialect.
package convert
