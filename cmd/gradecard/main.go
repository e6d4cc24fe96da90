// Package main provides the entry point for the gradecard CLI.
//
// gradecard asks for a student's name, total marks and number of subjects,
// prints a report card and saves it as text and HTML files (plus Markdown,
// JSON or Excel when enabled).
//
// Usage:
//
//	gradecard
//	gradecard --markdown --xlsx --no-open
//
// See --help for all available options.
package main

// main is the entry point for gradecard.
func main() {
	Execute()
}
