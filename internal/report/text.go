package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/gradecard/internal/model"
)

// TextWriter outputs the box-drawn plain-text report card that is saved to
// the .txt file. Field values are left-aligned and padded to fixed widths
// counted in runes, so ASCII names keep the right border aligned.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Box-drawing lines shared by every text report.
const (
	boxTop     = "╔══════════════════════════════════════════════════════════════╗\n"
	boxTitle   = "║                      STUDENT REPORT CARD                    ║\n"
	boxDivider = "╠══════════════════════════════════════════════════════════════╣\n"
	boxBlank   = "║                                                              ║\n"
	boxBottom  = "╚══════════════════════════════════════════════════════════════╝\n"
)

// Write outputs the report card in boxed text format.
func (w *TextWriter) Write(card *model.ReportCard) (int, error) {
	s := card.Student

	var sb strings.Builder
	sb.WriteString(boxTop)
	sb.WriteString(boxTitle)
	sb.WriteString(boxDivider)
	sb.WriteString(boxBlank)
	sb.WriteString(fmt.Sprintf("║  Student Name      : %-42s ║\n", s.Name()))
	sb.WriteString(fmt.Sprintf("║  Total Marks       : %-42.2f ║\n", s.TotalMarks()))
	sb.WriteString(fmt.Sprintf("║  Number of Subjects: %-42d ║\n", s.NumSubjects()))
	sb.WriteString(fmt.Sprintf("║  Average Score     : %-42.2f ║\n", s.Average()))
	sb.WriteString(fmt.Sprintf("║  Grade             : %s (%-35s) ║\n", s.Grade(), s.Description()))
	sb.WriteString(boxBlank)
	sb.WriteString(fmt.Sprintf("║  Generated on      : %-42s ║\n", card.Timestamp()))
	sb.WriteString(boxBlank)
	sb.WriteString(boxDivider)
	sb.WriteString("║  Performance Summary:                                        ║\n")
	sb.WriteString(fmt.Sprintf("║  %-58s ║\n", s.Grade().Summary()))
	sb.WriteString(boxBottom)

	return io.WriteString(w.output, sb.String())
}
