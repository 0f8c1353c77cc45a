package extractor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	// ErrExtractionFailed wraps any failure turning an upload into text.
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrUnsupportedFormat means the file type has no extractor.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// Extractor turns an uploaded file into a UTF-8 string for ingestion.
// Extraction failures short-circuit ingestion before any provider call.
type Extractor interface {
	Extract(filename string, data []byte) (string, error)
}

// TextExtractor handles plain-text formats. Binary formats (PDF, DOCX) are
// an upstream converter's job and reach the core as already-extracted text.
type TextExtractor struct{}

// Ensure TextExtractor implements Extractor
var _ Extractor = &TextExtractor{}

func NewTextExtractor() *TextExtractor { return &TextExtractor{} }

var textExtensions = map[string]bool{
	"":          true, // raw text posted without a filename
	".txt":      true,
	".text":     true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".log":      true,
}

func (e *TextExtractor) Extract(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !textExtensions[ext] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s is empty", ErrExtractionFailed, filename)
	}

	text := string(data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "�")
	}
	return text, nil
}
