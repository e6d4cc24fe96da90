package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/gradecard/internal/config"
	"github.com/nao1215/gradecard/internal/input"
	gclog "github.com/nao1215/gradecard/internal/log"
	"github.com/nao1215/gradecard/internal/model"
	"github.com/nao1215/gradecard/internal/opener"
	"github.com/nao1215/gradecard/internal/pipeline"
)

// NewRootCmd creates the root command for gradecard.
// Running it without a subcommand starts the interactive report card flow.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gradecard",
		Short: "Generate a student report card",
		Long: `gradecard asks for a student's name, total marks and number of subjects,
then prints a report card and saves it next to you as
<Name>_report_card.txt and <Name>_report_card.html.

The grade is A (90 and above), B (75 and above), C (60 and above) or D.
The HTML report is opened in your browser unless --no-open is given or
open_browser is false in the config file.`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringP("config", "c", "",
		"Path to config file (default: .gradecard in current or home directory)")
	cmd.Flags().StringP("output-dir", "d", "",
		"Directory report files are written to (default: current directory)")
	cmd.Flags().Bool("no-open", false,
		"Do not open the HTML report in a browser")
	cmd.Flags().BoolP("markdown", "m", false,
		"Also write a Markdown report card")
	cmd.Flags().BoolP("json", "j", false,
		"Also write a JSON report card")
	cmd.Flags().BoolP("xlsx", "x", false,
		"Also write an Excel report card")

	// Add subcommands
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRootCmd executes the interactive report card flow.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := gclog.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown. The
	// context also stops a prompt that is waiting for input.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return run(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
}

// run collects the student's details and produces every report.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, logger *slog.Logger) error {
	student, err := input.NewCollector(in, out, input.WithLogger(logger)).Collect(ctx)
	if err != nil {
		return err
	}

	card := model.NewReportCard(student, time.Now())

	opts := []pipeline.DefaultPipelineOption{
		pipeline.WithPipelineOutput(out),
		pipeline.WithPipelineDir(cfg.OutputDir),
		pipeline.WithPipelineLogger(logger),
		pipeline.WithPipelineExtraFormats(cfg.ExtraFormats()...),
	}
	if cfg.OpenBrowser {
		opts = append(opts, pipeline.WithPipelineOpener(opener.NewSystem()))
	}

	p := pipeline.DefaultPipeline([]pipeline.Option{pipeline.WithLogger(logger)}, opts...)

	logger.Debug("starting report pipeline", "steps", p.StepNames())

	result, err := p.Execute(ctx, card)
	if err != nil {
		return err
	}

	// Failed file writes have already been reported on out. They do not
	// change the exit status.
	if failed := result.Err(); failed != nil {
		logger.Warn("some report files were not saved", "error", failed)
	}

	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the config file and flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(file)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	outputDir, err := cmd.Flags().GetString("output-dir")
	if err != nil {
		return nil, err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	noOpen, err := cmd.Flags().GetBool("no-open")
	if err != nil {
		return nil, err
	}
	if noOpen {
		cfg.OpenBrowser = false
	}

	for flag, target := range map[string]*bool{
		"markdown": &cfg.Markdown,
		"json":     &cfg.JSON,
		"xlsx":     &cfg.XLSX,
	} {
		enabled, err := cmd.Flags().GetBool(flag)
		if err != nil {
			return nil, err
		}
		if enabled {
			*target = true
		}
	}

	return cfg, nil
}
