// Package export renders a builder course back into the playback folder
// layout: per-lesson page documents, the subjects.json table of contents, the
// static playback shell, and an images directory. It is the inverse of the
// folder/convert import path and keeps embedded image bytes out of the
// written documents.
package export
