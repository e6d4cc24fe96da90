package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Validation errors for the numeric inputs of a Student.
var (
	// ErrNoSubjects is returned when a subject count of zero is requested.
	ErrNoSubjects = errors.New("number of subjects must be positive")

	// ErrNegativeMarks is returned when total marks are negative.
	ErrNegativeMarks = errors.New("total marks must be non-negative")

	// ErrNotANumber is returned when total marks are NaN or infinite.
	ErrNotANumber = errors.New("total marks must be a finite number")
)

// SubjectCount is the number of subjects a student was assessed on.
// A non-zero value can only be obtained through NewSubjectCount or
// ParseSubjectCount; the zero value exists only as Go's default.
type SubjectCount uint32

// NewSubjectCount returns n as a SubjectCount, rejecting zero.
func NewSubjectCount(n uint32) (SubjectCount, error) {
	if n == 0 {
		return 0, ErrNoSubjects
	}
	return SubjectCount(n), nil
}

// ParseSubjectCount parses a positive decimal integer with an optional
// leading '+'. Surrounding whitespace is ignored.
func ParseSubjectCount(s string) (SubjectCount, error) {
	digits, _ := strings.CutPrefix(strings.TrimSpace(s), "+")
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number of subjects %q: %w", s, err)
	}
	return NewSubjectCount(uint32(n))
}

// ParseMarks parses a finite, non-negative decimal number.
// Surrounding whitespace is ignored. Hexadecimal notation such as "0x1p6"
// is rejected.
func ParseMarks(s string) (float64, error) {
	text := strings.TrimSpace(s)
	if strings.ContainsAny(text, "xX") {
		return 0, fmt.Errorf("invalid total marks %q: %w", s, strconv.ErrSyntax)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid total marks %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotANumber
	}
	if v < 0 {
		return 0, ErrNegativeMarks
	}
	return v, nil
}

// Student holds one student's marks and derives their average and grade.
// A Student is never modified after NewStudent returns, so it can be read
// by any number of renderers.
type Student struct {
	name        string
	totalMarks  float64
	numSubjects SubjectCount
}

// NewStudent creates a Student. It does not validate its arguments;
// callers obtain totalMarks from ParseMarks and subjects from
// ParseSubjectCount or NewSubjectCount.
func NewStudent(name string, totalMarks float64, subjects SubjectCount) *Student {
	return &Student{
		name:        name,
		totalMarks:  totalMarks,
		numSubjects: subjects,
	}
}

// Name returns the student's display name.
func (s *Student) Name() string {
	return s.name
}

// TotalMarks returns the sum of marks across all subjects.
func (s *Student) TotalMarks() float64 {
	return s.totalMarks
}

// NumSubjects returns the number of subjects.
func (s *Student) NumSubjects() SubjectCount {
	return s.numSubjects
}

// Average returns total marks divided by the number of subjects,
// or 0 for a zero-valued SubjectCount.
func (s *Student) Average() float64 {
	if s.numSubjects == 0 {
		return 0.0
	}
	return s.totalMarks / float64(s.numSubjects)
}

// Grade returns the letter grade for the student's average.
func (s *Student) Grade() Grade {
	return GradeFor(s.Average())
}

// Description returns the label of the student's grade.
func (s *Student) Description() string {
	return s.Grade().Description()
}

// PerformanceMessage returns the decorated message for the student's grade.
func (s *Student) PerformanceMessage() string {
	return s.Grade().PerformanceMessage()
}

// ReportCard is a student snapshot together with the time it was generated.
// Renderers read the timestamp from here instead of sampling the clock, so
// rendering the same ReportCard twice yields identical output.
type ReportCard struct {
	Student     *Student
	GeneratedAt time.Time
}

// NewReportCard creates a ReportCard for the given student and time.
func NewReportCard(student *Student, generatedAt time.Time) *ReportCard {
	return &ReportCard{
		Student:     student,
		GeneratedAt: generatedAt,
	}
}

// TimestampLayout is the layout used to print ReportCard.GeneratedAt.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp returns GeneratedAt formatted with TimestampLayout.
func (rc *ReportCard) Timestamp() string {
	return rc.GeneratedAt.Format(TimestampLayout)
}

// ReportFileName derives the output file name for a student's report:
// every space in name becomes an underscore, followed by
// "_report_card." and ext. All other characters are kept as they are.
func ReportFileName(name, ext string) string {
	return strings.ReplaceAll(name, " ", "_") + "_report_card." + ext
}
