package model

// Grade is the letter grade awarded for an average score.
// The set is closed: GradeA through GradeD are the only values produced by
// GradeFor, so every switch over Grade in this package is exhaustive.
type Grade int

const (
	// GradeA is awarded for an average of 90 or more.
	GradeA Grade = iota
	// GradeB is awarded for an average from 75 up to (not including) 90.
	GradeB
	// GradeC is awarded for an average from 60 up to (not including) 75.
	GradeC
	// GradeD is awarded for any average below 60.
	GradeD
)

// Lower bounds of the grade bands. Each bound is inclusive.
const (
	ThresholdA = 90.0
	ThresholdB = 75.0
	ThresholdC = 60.0
)

// fallbackColor is used for a Grade value outside the closed set.
// Only reachable through an explicit conversion such as Grade(42).
const fallbackColor = "#95a5a6"

// GradeFor returns the grade band containing the given average.
func GradeFor(average float64) Grade {
	switch {
	case average >= ThresholdA:
		return GradeA
	case average >= ThresholdB:
		return GradeB
	case average >= ThresholdC:
		return GradeC
	default:
		return GradeD
	}
}

// Grades returns every grade in descending order of merit.
func Grades() []Grade {
	return []Grade{GradeA, GradeB, GradeC, GradeD}
}

// String returns the letter of the grade.
func (g Grade) String() string {
	switch g {
	case GradeA:
		return "A"
	case GradeB:
		return "B"
	case GradeC:
		return "C"
	case GradeD:
		return "D"
	default:
		return "?"
	}
}

// MarshalText implements encoding.TextMarshaler so grades serialize as letters.
func (g Grade) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// Description returns the one-word label for the grade.
func (g Grade) Description() string {
	switch g {
	case GradeA:
		return "Excellent"
	case GradeB:
		return "Good"
	case GradeC:
		return "Satisfactory"
	case GradeD:
		return "Needs Improvement"
	default:
		return "Invalid"
	}
}

// PerformanceMessage returns the emoji-decorated message shown on the
// console and in the HTML report.
func (g Grade) PerformanceMessage() string {
	switch g {
	case GradeA:
		return "🌟 Outstanding performance! Keep up the excellent work!"
	case GradeB:
		return "👍 Good work! You're doing well!"
	case GradeC:
		return "📚 Satisfactory performance. There's room for improvement!"
	case GradeD:
		return "📖 Focus on your studies. You can do better!"
	default:
		return "Invalid grade calculation."
	}
}

// Summary returns the undecorated message used in the plain-text report.
// It is shorter than PerformanceMessage so that it fits the text box.
func (g Grade) Summary() string {
	switch g {
	case GradeA:
		return "Outstanding performance! Keep up the excellent work!"
	case GradeB:
		return "Good work! You're doing well!"
	case GradeC:
		return "Satisfactory performance. Room for improvement!"
	case GradeD:
		return "Focus on your studies. You can do better!"
	default:
		return "Invalid grade calculation."
	}
}

// Color returns the HTML accent color for the grade.
func (g Grade) Color() string {
	switch g {
	case GradeA:
		return "#27ae60"
	case GradeB:
		return "#f39c12"
	case GradeC:
		return "#e67e22"
	case GradeD:
		return "#e74c3c"
	default:
		return fallbackColor
	}
}
