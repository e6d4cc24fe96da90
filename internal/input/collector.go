// Package input collects a student's details from an interactive session.
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nao1215/gradecard/internal/model"
)

// ErrInputClosed is returned when input ends before every value was read.
var ErrInputClosed = errors.New("input closed before all student details were read")

// Prompts and retry messages shown during collection.
const (
	Banner         = "=== Student Grade Management System ==="
	DetailsPrompt  = "Enter student details:"
	NamePrompt     = "Student Name: "
	MarksPrompt    = "Total Marks: "
	SubjectsPrompt = "Number of Subjects: "
	MarksRetry     = "Please enter a valid positive number for total marks:"
	SubjectsRetry  = "Please enter a valid positive number for subjects:"
)

// Collector reads student details line by line, re-prompting until each
// numeric value parses. It never gives up on invalid values; only a read
// failure, the end of input or a cancelled context stops it.
//
// A Collector must not be reused after Collect returned a context error:
// the read that was in flight still owns the reader.
type Collector struct {
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger sets the logger used to record rejected values.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}

// NewCollector creates a Collector reading from in and prompting on out.
func NewCollector(in io.Reader, out io.Writer, opts ...Option) *Collector {
	c := &Collector{
		in:  bufio.NewReader(in),
		out: out,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Collect prints the banner, prompts for name, total marks and number of
// subjects, and returns the resulting Student.
// The name is kept exactly as typed apart from surrounding whitespace.
// Collect returns ctx.Err() as soon as ctx is cancelled, even while a
// prompt is waiting for input.
func (c *Collector) Collect(ctx context.Context) (*model.Student, error) {
	fmt.Fprintf(c.out, "%s\n\n", Banner)
	fmt.Fprintln(c.out, DetailsPrompt)

	fmt.Fprint(c.out, NamePrompt)
	line, err := c.readLine(ctx)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(line)

	fmt.Fprint(c.out, MarksPrompt)
	marks, err := readUntil(ctx, c, MarksRetry, model.ParseMarks)
	if err != nil {
		return nil, err
	}

	fmt.Fprint(c.out, SubjectsPrompt)
	subjects, err := readUntil(ctx, c, SubjectsRetry, model.ParseSubjectCount)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("student details collected",
		"name", name,
		"totalMarks", marks,
		"subjects", subjects,
	)

	return model.NewStudent(name, marks, subjects), nil
}

// readUntil reads lines until parse accepts one, printing retry after each
// rejected line.
func readUntil[T any](ctx context.Context, c *Collector, retry string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := c.readLine(ctx)
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := parse(line)
		if err == nil {
			return v, nil
		}

		c.logger.Debug("rejected input", "error", err)
		fmt.Fprintln(c.out, retry)
	}
}

// lineResult carries the outcome of one background read.
type lineResult struct {
	line string
	err  error
}

// readLine returns the next line, or ctx.Err() if ctx is cancelled first.
// The blocking read runs in its own goroutine since an io.Reader cannot be
// interrupted.
func (c *Collector) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ch := make(chan lineResult, 1)
	go func() {
		line, err := c.read()
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// read returns the next line including its terminator. A final line
// without a terminator is still returned; ErrInputClosed is returned only
// when nothing at all could be read.
func (c *Collector) read() (string, error) {
	line, err := c.in.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		return "", ErrInputClosed
	}
	return "", fmt.Errorf("failed to read input: %w", err)
}
