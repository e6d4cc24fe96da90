// Package report renders report cards.
//
// This package contains writers for different output formats:
//   - ConsoleWriter: the bordered summary printed to the terminal
//   - TextWriter: a box-drawn plain-text report card
//   - HTMLWriter: a self-contained, styled HTML document
//   - MarkdownWriter: a GitHub Flavored Markdown report card
//   - JSONWriter: structured JSON for tool integration
//   - XLSXWriter: a one-sheet Excel workbook
//
// Report writing is kept apart from the model package so new formats can be
// added without touching the data structures. Writers implement the Writer
// interface; NewWriter selects one by Format.
package report
