package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nao1215/gradecard/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence and each receives the same read-only
// report card.
type Step interface {
	// Do executes the pipeline step.
	// Returns an error if the step failed; whether later steps still run is
	// decided by the pipeline's continue-on-error setting.
	Do(ctx context.Context, card *model.ReportCard) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Result records the outcome of one Execute call.
type Result struct {
	// Performed lists the names of steps that ran, in order.
	Performed []string

	// Failed maps the name of each failed step to its error.
	Failed map[string]error
}

// Err joins the errors of all failed steps, or returns nil if none failed.
func (r *Result) Err() error {
	errs := make([]error, 0, len(r.Failed))
	for _, name := range r.Performed {
		if err, ok := r.Failed[name]; ok {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Pipeline orchestrates the execution of multiple steps.
// It maintains a list of steps and executes them in order.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing steps
	// after one fails. If false, the pipeline stops on first error.
	continueOnError bool
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to continue execution
// even when a step fails. A failed text file write, for example, must not
// prevent the HTML file from being written.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps:           make([]Step, 0),
		continueOnError: false,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence.
// Cancellation is checked before each step; a running step is not
// interrupted.
//
// The returned Result lists every step that ran. The error is the first
// step error when continueOnError is false, ctx.Err() when cancelled, and
// nil otherwise (inspect Result.Failed in that case).
func (p *Pipeline) Execute(ctx context.Context, card *model.ReportCard) (*Result, error) {
	result := &Result{
		Performed: make([]string, 0, len(p.steps)),
		Failed:    make(map[string]error),
	}

	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return result, ctx.Err()
		default:
		}

		p.logger.Info("executing step", "step", step.Name())

		err := step.Do(ctx, card)
		result.Performed = append(result.Performed, step.Name())

		if err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"error", err,
			)
			result.Failed[step.Name()] = err

			if !p.continueOnError {
				return result, err
			}
			continue
		}

		p.logger.Debug("step completed", "step", step.Name())
	}

	return result, nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
