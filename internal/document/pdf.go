package document

import (
	"context"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFSource extracts text from PDF files page by page.
type PDFSource struct{}

// NewPDFSource returns a TextSource for PDF files.
func NewPDFSource() *PDFSource {
	return &PDFSource{}
}

// Extract reads every page of the PDF and joins page texts with newlines.
func (s *PDFSource) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &UnreadableError{Path: path, Message: "context canceled", Cause: err}
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &UnreadableError{Path: path, Message: "failed to open pdf", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	}

	if sb.Len() == 0 {
		return "", &UnreadableError{Path: path, Message: "no extractable text"}
	}

	return sb.String(), nil
}
