package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nao1215/gradecard/internal/model"
)

// xlsxSheet is the name of the single worksheet in the workbook.
const xlsxSheet = "Report Card"

// XLSXWriter outputs the report card as an Excel workbook with one sheet:
// labels in column A, values in column B. Numeric cells hold numbers so the
// figures can be used in formulas.
type XLSXWriter struct {
	baseWriter
}

// NewXLSXWriter creates an XLSXWriter that outputs to the given writer.
func NewXLSXWriter(output io.Writer) *XLSXWriter {
	return &XLSXWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report card as an .xlsx workbook.
func (w *XLSXWriter) Write(card *model.ReportCard) (int, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return 0, fmt.Errorf("failed to name worksheet: %w", err)
	}

	if err := w.fill(f, card); err != nil {
		return 0, err
	}

	n, err := f.WriteTo(w.output)
	if err != nil {
		return int(n), fmt.Errorf("failed to write workbook: %w", err)
	}
	return int(n), nil
}

// fill writes the cells and styles of the report sheet.
func (w *XLSXWriter) fill(f *excelize.File, card *model.ReportCard) error {
	s := card.Student
	grade := s.Grade()

	rows := [][2]any{
		{"STUDENT REPORT CARD", nil},
		{"Student Name", s.Name()},
		{"Total Marks", s.TotalMarks()},
		{"Number of Subjects", uint32(s.NumSubjects())},
		{"Average Score", s.Average()},
		{"Grade", fmt.Sprintf("%s (%s)", grade, grade.Description())},
		{"Performance Summary", grade.Summary()},
		{"Generated on", card.Timestamp()},
	}

	for i, row := range rows {
		line := i + 1
		if err := f.SetCellValue(xlsxSheet, fmt.Sprintf("A%d", line), row[0]); err != nil {
			return fmt.Errorf("failed to set label: %w", err)
		}
		if row[1] == nil {
			continue
		}
		if err := f.SetCellValue(xlsxSheet, fmt.Sprintf("B%d", line), row[1]); err != nil {
			return fmt.Errorf("failed to set value: %w", err)
		}
	}

	if err := f.SetColWidth(xlsxSheet, "A", "A", 22); err != nil {
		return err
	}
	if err := f.SetColWidth(xlsxSheet, "B", "B", 58); err != nil {
		return err
	}

	return w.applyStyles(f, grade)
}

// applyStyles makes the title and labels bold, shows marks and average with
// two decimals, and colors the grade cell with the grade's accent color.
func (w *XLSXWriter) applyStyles(f *excelize.File, grade model.Grade) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(xlsxSheet, "A1", "A8", bold); err != nil {
		return err
	}

	twoDecimals := "0.00"
	decimal, err := f.NewStyle(&excelize.Style{CustomNumFmt: &twoDecimals})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(xlsxSheet, "B3", "B3", decimal); err != nil {
		return err
	}
	if err := f.SetCellStyle(xlsxSheet, "B5", "B5", decimal); err != nil {
		return err
	}

	accent, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Size:  14,
			Color: strings.TrimPrefix(grade.Color(), "#"),
		},
	})
	if err != nil {
		return err
	}
	return f.SetCellStyle(xlsxSheet, "B6", "B6", accent)
}
