package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/gradecard/internal/model"
	"github.com/nao1215/gradecard/internal/opener"
	"github.com/nao1215/gradecard/internal/report"
)

// reportFilePerm is the permission used for written report files.
const reportFilePerm = 0o644

// ConsoleStep prints the report card summary.
type ConsoleStep struct {
	out io.Writer
}

// NewConsoleStep creates a step that prints the console summary to out.
func NewConsoleStep(out io.Writer) *ConsoleStep {
	return &ConsoleStep{out: out}
}

// Name returns the step name.
func (s *ConsoleStep) Name() string {
	return "console"
}

// Do prints the console report.
func (s *ConsoleStep) Do(_ context.Context, card *model.ReportCard) error {
	_, err := report.NewConsoleWriter(s.out).Write(card)
	return err
}

// Notice holds the status lines a FileStep prints after writing its file.
type Notice struct {
	// Label names the file at the start of the success message.
	Label string

	// Subject names the file inside the failure message.
	Subject string

	// Tip is printed after a successful write.
	Tip string
}

// notices are the status lines for each file format.
var notices = map[report.Format]Notice{
	report.FormatText: {
		Label:   "Report card",
		Subject: "report card",
		Tip:     "💡 Tip: You can convert this to PDF using online converters or tools like pandoc",
	},
	report.FormatHTML: {
		Label:   "HTML report card",
		Subject: "HTML report card",
		Tip:     "💡 Open the HTML file in your browser and use 'Print to PDF' for a PDF version",
	},
	report.FormatMarkdown: {
		Label:   "Markdown report card",
		Subject: "Markdown report card",
		Tip:     "💡 Markdown renders as formatted text on GitHub and in most editors",
	},
	report.FormatJSON: {
		Label:   "JSON report card",
		Subject: "JSON report card",
		Tip:     "💡 Other tools can read this file for further processing",
	},
	report.FormatXLSX: {
		Label:   "Excel report card",
		Subject: "Excel report card",
		Tip:     "💡 Open this workbook in Excel or LibreOffice Calc",
	},
}

// FileStep renders one format and writes it to
// <dir>/<Name_With_Underscores>_report_card.<ext>, overwriting any existing
// file.
//
// Both outcomes are reported on out. A failed write is returned as an error
// so the pipeline can log it, but the process carries on.
type FileStep struct {
	format report.Format
	dir    string
	out    io.Writer
	opener opener.Opener
	logger *slog.Logger
}

// FileStepOption configures a FileStep.
type FileStepOption func(*FileStep)

// WithDir sets the directory the file is written to. Default is ".".
func WithDir(dir string) FileStepOption {
	return func(s *FileStep) {
		s.dir = dir
	}
}

// WithOpener makes the step open the written file with o.
// Opening is best effort: failures are logged at debug level only.
func WithOpener(o opener.Opener) FileStepOption {
	return func(s *FileStep) {
		s.opener = o
	}
}

// WithStepLogger sets a custom logger for the step.
func WithStepLogger(logger *slog.Logger) FileStepOption {
	return func(s *FileStep) {
		s.logger = logger
	}
}

// NewFileStep creates a step that writes format f and prints status to out.
func NewFileStep(f report.Format, out io.Writer, opts ...FileStepOption) *FileStep {
	s := &FileStep{
		format: f,
		dir:    ".",
		out:    out,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *FileStep) Name() string {
	return string(s.format) + "_file"
}

// Do renders the report card, writes the file and prints the outcome.
func (s *FileStep) Do(ctx context.Context, card *model.ReportCard) error {
	notice := notices[s.format]
	filename := model.ReportFileName(card.Student.Name(), s.format.Extension())

	if err := s.write(card, filename); err != nil {
		fmt.Fprintf(s.out, "❌ Error saving %s: %v\n", notice.Subject, err)
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}

	fmt.Fprintf(s.out, "✅ %s saved as: %s\n", notice.Label, filename)
	fmt.Fprintln(s.out, notice.Tip)

	if s.format == report.FormatHTML {
		s.announce(ctx, filename)
	}
	return nil
}

// write renders the card into memory and then writes it in one call, so a
// render error never leaves a truncated file behind.
func (s *FileStep) write(card *model.ReportCard, filename string) error {
	var buf bytes.Buffer

	w, err := report.NewWriter(s.format, &buf)
	if err != nil {
		return err
	}
	if _, err := w.Write(card); err != nil {
		return err
	}

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, buf.Bytes(), reportFilePerm); err != nil {
		return err
	}

	s.logger.Debug("report file written", "format", s.format, "path", path, "bytes", buf.Len())
	return nil
}

// announce prints where the HTML file is and tries to open it.
func (s *FileStep) announce(ctx context.Context, filename string) {
	path := filepath.Join(s.dir, filename)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	fmt.Fprintf(s.out, "📁 File location: %s\n", path)

	if s.opener == nil {
		return
	}

	fmt.Fprintln(s.out, "🌐 Attempting to open in browser...")
	if err := s.opener.Open(ctx, path); err != nil {
		s.logger.Debug("could not open report in browser", "path", path, "error", err)
	}

	fmt.Fprintln(s.out, "📝 If browser didn't open automatically, copy this path to your browser:")
	fmt.Fprintf(s.out, "   file://%s\n", path)
}

// DefaultPipelineConfig holds configuration for the default pipeline.
type DefaultPipelineConfig struct {
	// Out receives the console report and every status line.
	Out io.Writer

	// Dir is the directory report files are written to.
	Dir string

	// Opener opens the HTML report. Nil disables opening.
	Opener opener.Opener

	// ExtraFormats are written after the text and HTML files, in order.
	ExtraFormats []report.Format

	// Logger is passed to every file step.
	Logger *slog.Logger
}

// DefaultPipelineOption configures the default pipeline.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithPipelineOutput sets where the console report and status lines go.
func WithPipelineOutput(out io.Writer) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Out = out
	}
}

// WithPipelineDir sets the directory report files are written to.
func WithPipelineDir(dir string) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Dir = dir
	}
}

// WithPipelineOpener sets the opener used for the HTML report.
func WithPipelineOpener(o opener.Opener) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Opener = o
	}
}

// WithPipelineExtraFormats adds file formats beyond text and HTML.
// The console, text and HTML formats are ignored here since they always run.
func WithPipelineExtraFormats(formats ...report.Format) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		for _, f := range formats {
			switch f {
			case report.FormatConsole, report.FormatText, report.FormatHTML:
				continue
			default:
				c.ExtraFormats = append(c.ExtraFormats, f)
			}
		}
	}
}

// WithPipelineLogger sets the logger used by the file steps.
func WithPipelineLogger(logger *slog.Logger) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Logger = logger
	}
}

// DefaultPipeline creates the standard report card pipeline:
// console summary, text file, HTML file (then open), then extra formats.
// File steps keep going after a failed write, so the pipeline is created
// with continue-on-error unless pipelineOpts says otherwise.
func DefaultPipeline(pipelineOpts []Option, configOpts ...DefaultPipelineOption) *Pipeline {
	opts := append([]Option{WithContinueOnError(true)}, pipelineOpts...)
	p := New(opts...)

	cfg := &DefaultPipelineConfig{
		Out:    os.Stdout,
		Dir:    ".",
		Logger: slog.Default(),
	}
	for _, opt := range configOpts {
		opt(cfg)
	}

	fileOpts := []FileStepOption{
		WithDir(cfg.Dir),
		WithStepLogger(cfg.Logger),
	}

	p.AddSteps(
		NewConsoleStep(cfg.Out),
		NewFileStep(report.FormatText, cfg.Out, fileOpts...),
	)

	htmlOpts := fileOpts
	if cfg.Opener != nil {
		htmlOpts = append(htmlOpts[:len(htmlOpts):len(htmlOpts)], WithOpener(cfg.Opener))
	}
	p.AddStep(NewFileStep(report.FormatHTML, cfg.Out, htmlOpts...))

	for _, f := range cfg.ExtraFormats {
		p.AddStep(NewFileStep(f, cfg.Out, fileOpts...))
	}

	return p
}
