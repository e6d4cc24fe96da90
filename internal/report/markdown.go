package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/nao1215/gradecard/internal/model"
)

// MarkdownWriter outputs report cards in GitHub Flavored Markdown.
// The nao1215/markdown builder takes care of table alignment and alert syntax.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report card in Markdown format.
func (w *MarkdownWriter) Write(card *model.ReportCard) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, card)
	w.writePerformance(md, card.Student)
	w.writeFooter(md, card)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and the table of figures.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, card *model.ReportCard) {
	s := card.Student

	md.H1("Student Report Card")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"Student Name", escapeTableCell(s.Name())},
			{"Total Marks", fmt.Sprintf("%.2f", s.TotalMarks())},
			{"Number of Subjects", fmt.Sprintf("%d", s.NumSubjects())},
			{"Average Score", fmt.Sprintf("%.2f", s.Average())},
			{"Grade", fmt.Sprintf("**%s** (%s)", s.Grade(), s.Description())},
		},
	})
	md.PlainText("")
}

// escapeTableCell escapes the pipes that would otherwise end a table cell.
func escapeTableCell(text string) string {
	return strings.ReplaceAll(text, "|", `\|`)
}

// writePerformance writes the performance summary as an alert whose kind
// follows the grade.
func (w *MarkdownWriter) writePerformance(md *markdown.Markdown, s *model.Student) {
	md.H2("Performance Summary")
	md.PlainText("")

	message := s.PerformanceMessage()
	switch s.Grade() {
	case model.GradeA:
		md.Tip(message)
	case model.GradeB:
		md.Note(message)
	case model.GradeC:
		md.Importantf("%s", message)
	case model.GradeD:
		md.Warningf("%s", message)
	}
	md.PlainText("")
}

// writeFooter writes the generation timestamp.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, card *model.ReportCard) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated on: %s*", card.Timestamp())
}
