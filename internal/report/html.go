package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/nao1215/gradecard/internal/model"
)

//go:embed templates/report_card.html.tmpl
var htmlTemplateFS embed.FS

// htmlTemplate is parsed once; a parse failure is a build defect, so it panics.
var htmlTemplate = template.Must(
	template.ParseFS(htmlTemplateFS, "templates/report_card.html.tmpl"),
)

// HTMLWriter outputs a self-contained HTML report card with inline CSS.
// The grade line is colored according to the grade. The document can be
// opened in any browser and printed to PDF.
//
// html/template escapes the student name, so names containing markup are
// shown literally instead of being interpreted.
type HTMLWriter struct {
	baseWriter
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer) *HTMLWriter {
	return &HTMLWriter{
		baseWriter: newBaseWriter(output),
	}
}

// htmlView holds the pre-formatted values substituted into the template.
type htmlView struct {
	Color       template.CSS
	Name        string
	TotalMarks  string
	NumSubjects string
	Average     string
	Grade       string
	Description string
	Message     string
	GeneratedAt string
}

// Write outputs the report card as an HTML document.
func (w *HTMLWriter) Write(card *model.ReportCard) (int, error) {
	s := card.Student
	grade := s.Grade()

	view := htmlView{
		Color:       template.CSS(grade.Color()), //nolint:gosec // fixed palette
		Name:        s.Name(),
		TotalMarks:  fmt.Sprintf("%.2f", s.TotalMarks()),
		NumSubjects: fmt.Sprintf("%d", s.NumSubjects()),
		Average:     fmt.Sprintf("%.2f", s.Average()),
		Grade:       grade.String(),
		Description: grade.Description(),
		Message:     grade.PerformanceMessage(),
		GeneratedAt: card.Timestamp(),
	}

	var sb strings.Builder
	if err := htmlTemplate.Execute(&sb, view); err != nil {
		return 0, fmt.Errorf("failed to render HTML report: %w", err)
	}

	return io.WriteString(w.output, sb.String())
}
