// Package log builds the application's slog logger.
//
// Report cards carry a student's name and marks, and the name also ends up
// in report file names. RedactingHandler masks those values before they
// reach the log output, so logs can be attached to a bug report as is.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("report file written", "path", "out/Alex_report_card.txt")
//	// path=out/***REDACTED***_report_card.txt
package log
