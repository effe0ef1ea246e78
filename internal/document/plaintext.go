package document

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// PlainTextSource reads .txt files as-is.
type PlainTextSource struct{}

// NewPlainTextSource returns a TextSource for plain text files.
func NewPlainTextSource() *PlainTextSource {
	return &PlainTextSource{}
}

// Extract reads the whole file, normalizing CRLF line endings.
func (s *PlainTextSource) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &UnreadableError{Path: path, Message: "context canceled", Cause: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &UnreadableError{Path: path, Message: "failed to read file", Cause: err}
	}

	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// ForFile picks a TextSource by file extension: PDFs go through the PDF
// extractor, everything else is read as plain text.
func ForFile(path string) TextSource {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return NewPDFSource()
	}
	return NewPlainTextSource()
}
