package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/nao1215/gradecard/internal/model"
)

// testTime is the fixed generation time used by every test card.
var testTime = time.Date(2025, time.June, 1, 9, 30, 0, 0, time.UTC)

// createTestCard creates a report card with the given figures.
func createTestCard(t *testing.T, name string, total float64, subjects uint32) *model.ReportCard {
	t.Helper()

	count, err := model.NewSubjectCount(subjects)
	if err != nil {
		t.Fatalf("invalid subject count: %v", err)
	}
	return model.NewReportCard(model.NewStudent(name, total, count), testTime)
}

// render writes card with w and returns the output.
func render(t *testing.T, newWriter func(*bytes.Buffer) Writer, card *model.ReportCard) string {
	t.Helper()

	var buf bytes.Buffer
	n, err := newWriter(&buf).Write(card)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != buf.Len() {
		t.Errorf("reported %d bytes, buffer holds %d", n, buf.Len())
	}
	return buf.String()
}

func consoleWriter(b *bytes.Buffer) Writer  { return NewConsoleWriter(b) }
func textWriter(b *bytes.Buffer) Writer     { return NewTextWriter(b) }
func htmlWriter(b *bytes.Buffer) Writer     { return NewHTMLWriter(b) }
func markdownWriter(b *bytes.Buffer) Writer { return NewMarkdownWriter(b) }

// TestConsoleWriter tests the terminal summary.
func TestConsoleWriter(t *testing.T) {
	t.Parallel()

	t.Run("matches the expected layout", func(t *testing.T) {
		t.Parallel()

		output := render(t, consoleWriter, createTestCard(t, "Alex", 270, 3))

		rule := strings.Repeat("=", 50)
		expected := "\n" + rule + "\n" +
			"               REPORT CARD\n" +
			rule + "\n" +
			"Student Name      : Alex\n" +
			"Total Marks       : 270.00\n" +
			"Number of Subjects: 3\n" +
			"Average Score     : 90.00\n" +
			"Grade             : A (Excellent)\n" +
			rule + "\n" +
			"\nPerformance Summary:\n" +
			"🌟 Outstanding performance! Keep up the excellent work!\n\n"

		if output != expected {
			t.Errorf("unexpected console output:\n%s\nexpected:\n%s", output, expected)
		}
	})

	t.Run("shows message for each grade", func(t *testing.T) {
		t.Parallel()

		testCases := []struct {
			total float64
			grade model.Grade
		}{
			{95, model.GradeA},
			{80, model.GradeB},
			{65, model.GradeC},
			{10, model.GradeD},
		}

		for _, tc := range testCases {
			output := render(t, consoleWriter, createTestCard(t, "Kim", tc.total, 1))
			if !strings.Contains(output, tc.grade.PerformanceMessage()) {
				t.Errorf("expected message for grade %v in output", tc.grade)
			}
		}
	})
}

// TestTextWriter tests the boxed plain-text report.
func TestTextWriter(t *testing.T) {
	t.Parallel()

	t.Run("contains every field", func(t *testing.T) {
		t.Parallel()

		output := render(t, textWriter, createTestCard(t, "Alex", 270, 3))

		for _, want := range []string{
			"STUDENT REPORT CARD",
			"Alex",
			"270.00",
			"Number of Subjects: 3 ",
			"90.00",
			"A (Excellent",
			"Generated on      : 2025-06-01 09:30:00",
			"Outstanding performance! Keep up the excellent work!",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("pads field lines to a fixed width", func(t *testing.T) {
		t.Parallel()

		output := render(t, textWriter, createTestCard(t, "Jane Doe", 123.456, 2))

		lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
		if len(lines) != 16 {
			t.Fatalf("expected 16 lines, got %d", len(lines))
		}
		for _, line := range lines[4:8] {
			if got := utf8.RuneCountInString(line); got != 67 {
				t.Errorf("expected 67 runes, got %d in %q", got, line)
			}
			if !strings.HasSuffix(line, " ║") {
				t.Errorf("expected right border in %q", line)
			}
		}
		if !strings.Contains(lines[5], "123.46") {
			t.Errorf("expected marks rounded to two decimals, got %q", lines[5])
		}
	})

	t.Run("uses the plain summary", func(t *testing.T) {
		t.Parallel()

		output := render(t, textWriter, createTestCard(t, "Sam", 0, 5))

		if !strings.Contains(output, "Focus on your studies. You can do better!") {
			t.Error("expected D summary")
		}
		if strings.Contains(output, "📖") {
			t.Error("expected no emoji in text report")
		}
		if !strings.Contains(output, "D (Needs Improvement") {
			t.Error("expected grade D description")
		}
	})
}

// TestHTMLWriter tests the HTML report.
func TestHTMLWriter(t *testing.T) {
	t.Parallel()

	t.Run("contains every field", func(t *testing.T) {
		t.Parallel()

		output := render(t, htmlWriter, createTestCard(t, "Alex", 270, 3))

		for _, want := range []string{
			"<!DOCTYPE html>",
			"<title>Student Report Card</title>",
			`<span class="value">Alex</span>`,
			`<span class="value">270.00</span>`,
			`<span class="value">3</span>`,
			`<span class="value">90.00</span>`,
			`<span class="value grade">A (Excellent)</span>`,
			"🌟 Outstanding performance!",
			"Generated on: 2025-06-01 09:30:00",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("uses the grade accent color", func(t *testing.T) {
		t.Parallel()

		testCases := []struct {
			total float64
			color string
		}{
			{90, "#27ae60"},
			{75, "#f39c12"},
			{60, "#e67e22"},
			{59, "#e74c3c"},
		}

		for _, tc := range testCases {
			output := render(t, htmlWriter, createTestCard(t, "Kim", tc.total, 1))
			if !strings.Contains(output, "color: "+tc.color+";") {
				t.Errorf("expected accent %s for total %v", tc.color, tc.total)
			}
		}
	})

	t.Run("escapes markup in the name", func(t *testing.T) {
		t.Parallel()

		output := render(t, htmlWriter, createTestCard(t, "<b>Bob</b>", 50, 1))

		if strings.Contains(output, "<b>Bob</b>") {
			t.Error("expected name to be escaped")
		}
		if !strings.Contains(output, "&lt;b&gt;Bob&lt;/b&gt;") {
			t.Error("expected escaped name in output")
		}
	})
}

// TestMarkdownWriter tests the Markdown report.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	output := render(t, markdownWriter, createTestCard(t, "Alex", 270, 3))

	for _, want := range []string{
		"# Student Report Card",
		"Alex",
		"270.00",
		"90.00",
		"**A** (Excellent)",
		"## Performance Summary",
		"[!TIP]",
		"Generated on: 2025-06-01 09:30:00",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

// TestMarkdownWriter_EscapesPipes tests that a pipe in the name stays
// inside the name cell.
func TestMarkdownWriter_EscapesPipes(t *testing.T) {
	t.Parallel()

	output := render(t, markdownWriter, createTestCard(t, "Ann|Lee", 270, 3))

	var row string
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "| Student Name") {
			row = line
		}
	}
	if row == "" {
		t.Fatalf("name row not found:\n%s", output)
	}
	if !strings.Contains(row, `Ann\|Lee`) {
		t.Errorf("expected escaped pipe in %q", row)
	}
	if got := strings.Count(row, "|") - strings.Count(row, `\|`); got != 3 {
		t.Errorf("expected 3 cell separators, got %d in %q", got, row)
	}
}

// TestJSONWriter tests the JSON report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("outputs valid JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestCard(t, "Alex", 270, 3)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed map[string]any
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		if parsed["name"] != "Alex" {
			t.Errorf("expected name Alex, got %v", parsed["name"])
		}
		if parsed["grade"] != "A" {
			t.Errorf("expected grade A, got %v", parsed["grade"])
		}
		if parsed["average"] != 90.0 {
			t.Errorf("expected average 90, got %v", parsed["average"])
		}
		if parsed["numSubjects"] != 3.0 {
			t.Errorf("expected 3 subjects, got %v", parsed["numSubjects"])
		}
	})

	t.Run("compact output by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestCard(t, "Alex", 270, 3)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if strings.Count(buf.String(), "\n") != 1 {
			t.Errorf("expected single line output, got %q", buf.String())
		}
	})

	t.Run("rounds the average", func(t *testing.T) {
		t.Parallel()

		report := NewJSONReport(createTestCard(t, "Alex", 100, 3))
		if report.Average != 33.33 {
			t.Errorf("expected 33.33, got %v", report.Average)
		}
	})
}

// TestXLSXWriter tests the spreadsheet report.
func TestXLSXWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := NewXLSXWriter(&buf).Write(createTestCard(t, "Alex", 270, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == 0 {
		t.Fatal("expected workbook bytes")
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	testCases := []struct {
		cell     string
		expected string
	}{
		{"A1", "STUDENT REPORT CARD"},
		{"B2", "Alex"},
		{"B3", "270.00"},
		{"B4", "3"},
		{"B5", "90.00"},
		{"B6", "A (Excellent)"},
		{"B8", "2025-06-01 09:30:00"},
	}

	for _, tc := range testCases {
		got, err := f.GetCellValue(xlsxSheet, tc.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", tc.cell, err)
		}
		if got != tc.expected {
			t.Errorf("cell %s = %q, expected %q", tc.cell, got, tc.expected)
		}
	}
}

// TestWritersAreDeterministic tests that rendering the same card twice yields
// identical bytes.
func TestWritersAreDeterministic(t *testing.T) {
	t.Parallel()

	card := createTestCard(t, "Jane Doe", 181.5, 2)

	for _, f := range []Format{FormatConsole, FormatText, FormatHTML, FormatMarkdown, FormatJSON} {
		t.Run(string(f), func(t *testing.T) {
			t.Parallel()

			var first, second bytes.Buffer
			for _, buf := range []*bytes.Buffer{&first, &second} {
				w, err := NewWriter(f, buf)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if _, err := w.Write(card); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}

			if !bytes.Equal(first.Bytes(), second.Bytes()) {
				t.Error("expected identical output for identical input")
			}
		})
	}
}

// TestFormat tests format metadata and writer lookup.
func TestFormat(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		format Format
		ext    string
	}{
		{FormatConsole, ""},
		{FormatText, "txt"},
		{FormatHTML, "html"},
		{FormatMarkdown, "md"},
		{FormatJSON, "json"},
		{FormatXLSX, "xlsx"},
	}

	for _, tc := range testCases {
		if got := tc.format.Extension(); got != tc.ext {
			t.Errorf("%s.Extension() = %q, expected %q", tc.format, got, tc.ext)
		}
		if _, err := NewWriter(tc.format, &bytes.Buffer{}); err != nil {
			t.Errorf("NewWriter(%s): unexpected error %v", tc.format, err)
		}
	}

	if _, err := NewWriter(Format("pdf"), &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown format")
	}
}
