package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/gradecard/internal/model"
)

// consoleRuleWidth is the width of the "=" rule lines in the console report.
const consoleRuleWidth = 50

// ConsoleWriter outputs the report card summary for terminal display.
// It uses plain ASCII rules so the output can also be piped to files.
type ConsoleWriter struct {
	baseWriter
}

// NewConsoleWriter creates a ConsoleWriter that outputs to the given writer.
func NewConsoleWriter(output io.Writer) *ConsoleWriter {
	return &ConsoleWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report card in console format.
func (w *ConsoleWriter) Write(card *model.ReportCard) (int, error) {
	var sb strings.Builder

	w.writeCard(&sb, card.Student)
	w.writePerformance(&sb, card.Student)

	return io.WriteString(w.output, sb.String())
}

// writeCard writes the bordered block with the student's figures.
func (w *ConsoleWriter) writeCard(sb *strings.Builder, s *model.Student) {
	rule := strings.Repeat("=", consoleRuleWidth)

	sb.WriteString("\n")
	sb.WriteString(rule)
	sb.WriteString("\n")
	sb.WriteString("               REPORT CARD\n")
	sb.WriteString(rule)
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Student Name      : %s\n", s.Name()))
	sb.WriteString(fmt.Sprintf("Total Marks       : %.2f\n", s.TotalMarks()))
	sb.WriteString(fmt.Sprintf("Number of Subjects: %d\n", s.NumSubjects()))
	sb.WriteString(fmt.Sprintf("Average Score     : %.2f\n", s.Average()))
	sb.WriteString(fmt.Sprintf("Grade             : %s (%s)\n", s.Grade(), s.Description()))

	sb.WriteString(rule)
	sb.WriteString("\n")
}

// writePerformance writes the performance summary below the card.
func (w *ConsoleWriter) writePerformance(sb *strings.Builder, s *model.Student) {
	sb.WriteString("\nPerformance Summary:\n")
	sb.WriteString(s.PerformanceMessage())
	sb.WriteString("\n\n")
}
