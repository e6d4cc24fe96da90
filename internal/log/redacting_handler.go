package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// personalKeys contains attribute keys whose values are always masked.
var personalKeys = map[string]bool{
	"name":         true,
	"student":      true,
	"student_name": true,
	"total":        true,
	"total_marks":  true,
	"totalmarks":   true,
	"marks":        true,
	"average":      true,
	"input":        true,
}

// reportFilePattern matches a report file name anywhere in a value, such as
// a bare path or a wrapped error message. The student name part is replaced,
// the directory and suffix are kept.
var reportFilePattern = regexp.MustCompile(`[^\s/\\"':]+(_report_card\.[A-Za-z0-9]+)`)

// MaskValue is the string used to replace personal values.
const MaskValue = "***REDACTED***"

// RedactingHandler wraps an slog.Handler and masks personal data in
// attribute values before passing records on.
type RedactingHandler struct {
	handler slog.Handler
}

// NewRedactingHandler creates a RedactingHandler wrapping handler.
// If handler is nil, slog.Default().Handler() is used.
func NewRedactingHandler(handler slog.Handler) *RedactingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RedactingHandler{handler: handler}
}

// Enabled delegates to the underlying handler.
func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it to the underlying handler.
func (h *RedactingHandler) Handle(ctx context.Context, r slog.Record) error {
	redacted := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		redacted.AddAttrs(redactAttr(a))
		return true
	})

	return h.handler.Handle(ctx, redacted)
}

// WithAttrs returns a new handler with the given attributes masked and added.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = redactAttr(a)
	}
	return &RedactingHandler{handler: h.handler.WithAttrs(redacted)}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{handler: h.handler.WithGroup(name)}
}

// redactAttr masks a single attribute, recursing into groups.
func redactAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		redacted := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			redacted[i] = redactAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}
	}

	if personalKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, MaskValue)
	}

	switch a.Value.Kind() {
	case slog.KindString:
		if masked, ok := redactReportPath(a.Value.String()); ok {
			return slog.String(a.Key, masked)
		}
	case slog.KindAny:
		if masked, ok := redactReportPath(anyText(a.Value.Any())); ok {
			return slog.String(a.Key, masked)
		}
	}

	return a
}

// anyText returns the text a handler would print for an arbitrary value.
func anyText(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(v)
}

// redactReportPath replaces the student name in a report file path.
func redactReportPath(value string) (string, bool) {
	if !reportFilePattern.MatchString(value) {
		return value, false
	}
	return reportFilePattern.ReplaceAllString(value, MaskValue+"$1"), true
}

// NewLogger creates a text logger that masks personal data.
// verbose selects slog.LevelDebug, otherwise slog.LevelWarn.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewRedactingHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
