package folder

import "errors"

var (
	// ErrNoLessonDocuments is the one hard precondition failure: the course
	// directory holds no readable lesson documents at all.
	ErrNoLessonDocuments = errors.New("no lesson documents found")

	// ErrDocumentRead marks a per-file I/O failure.
	ErrDocumentRead = errors.New("document read error")

	// ErrDocumentParse marks a per-file malformed-JSON failure.
	ErrDocumentParse = errors.New("document parse error")
)

// Issue records a per-file failure that did not abort the batch. The
// wrapped error matches ErrDocumentRead or ErrDocumentParse.
type Issue struct {
	Path string
	Err  error
}

func (i Issue) Error() string {
	return i.Path + ": " + i.Err.Error()
}

func (i Issue) Unwrap() error {
	return i.Err
}
