package report

import (
	"fmt"
	"io"

	"github.com/nao1215/gradecard/internal/model"
)

// Writer defines the interface for report output.
// Implementations render a report card in one format.
//
// Writers are pure given a ReportCard: they never sample the clock or read
// any state besides the card, so rendering the same card twice produces the
// same bytes.
type Writer interface {
	// Write renders the report card to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(card *model.ReportCard) (int, error)
}

// Format identifies one output format.
type Format string

// Supported output formats.
const (
	FormatConsole  Format = "console"
	FormatText     Format = "text"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatXLSX     Format = "xlsx"
)

// Extension returns the file extension used for the format, without a dot.
// The console format has no file and returns an empty string.
func (f Format) Extension() string {
	switch f {
	case FormatText:
		return "txt"
	case FormatHTML:
		return "html"
	case FormatMarkdown:
		return "md"
	case FormatJSON:
		return "json"
	case FormatXLSX:
		return "xlsx"
	default:
		return ""
	}
}

// NewWriter returns the Writer for format f writing to output.
func NewWriter(f Format, output io.Writer) (Writer, error) {
	switch f {
	case FormatConsole:
		return NewConsoleWriter(output), nil
	case FormatText:
		return NewTextWriter(output), nil
	case FormatHTML:
		return NewHTMLWriter(output), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case FormatXLSX:
		return NewXLSXWriter(output), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", f)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
