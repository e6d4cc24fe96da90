// Package model defines the core data structures used throughout gradecard.
//
// This package contains the following main types:
//   - Student: one student's total marks and subject count, with the derived
//     average, grade and description
//   - Grade: the closed set of letter grades A to D
//   - SubjectCount: a subject count that is positive when built through
//     NewSubjectCount or ParseSubjectCount
//   - ReportCard: a Student plus the timestamp it was generated at
//
// Models live in their own package so that the input, report and pipeline
// packages can share them without import cycles.
package model
