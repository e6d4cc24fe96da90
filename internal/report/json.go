package report

import (
	"encoding/json"
	"io"
	"math"

	"github.com/nao1215/gradecard/internal/model"
)

// JSONWriter outputs report cards in JSON format for tool integration.
// Standard encoding/json is sufficient for a flat document like this one.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport is the serialized form of a report card.
// Average is rounded to two decimals, matching every other format.
type JSONReport struct {
	Name               string      `json:"name"`
	TotalMarks         float64     `json:"totalMarks"`
	NumSubjects        uint32      `json:"numSubjects"`
	Average            float64     `json:"average"`
	Grade              model.Grade `json:"grade"`
	Description        string      `json:"description"`
	PerformanceMessage string      `json:"performanceMessage"`
	GeneratedAt        string      `json:"generatedAt"`
}

// NewJSONReport converts a report card into its serialized form.
func NewJSONReport(card *model.ReportCard) *JSONReport {
	s := card.Student
	return &JSONReport{
		Name:               s.Name(),
		TotalMarks:         s.TotalMarks(),
		NumSubjects:        uint32(s.NumSubjects()),
		Average:            math.Round(s.Average()*100) / 100,
		Grade:              s.Grade(),
		Description:        s.Description(),
		PerformanceMessage: s.Grade().Summary(),
		GeneratedAt:        card.Timestamp(),
	}
}

// Write outputs the report card in JSON format.
func (w *JSONWriter) Write(card *model.ReportCard) (int, error) {
	var data []byte
	var err error

	report := NewJSONReport(card)
	if w.indent {
		data, err = json.MarshalIndent(report, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(report)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
