// Package document provides text sources for resume files. The parsing
// pipeline only ever sees plain text; converting a document into that text is
// the job of a TextSource.
package document

import (
	"context"
	"fmt"
)

// TextSource extracts the full plain text of a document, page breaks
// represented as newlines. A failure means the document is unreadable, which
// is fatal to that document's parse.
type TextSource interface {
	Extract(ctx context.Context, path string) (string, error)
}

// UnreadableError reports that a document's text could not be extracted.
type UnreadableError struct {
	Path    string
	Message string
	Cause   error
}

func (e *UnreadableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document unreadable: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("document unreadable: %s: %s", e.Path, e.Message)
}

func (e *UnreadableError) Unwrap() error {
	return e.Cause
}
