package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/nao1215/gradecard/internal/report"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "gradecard"

	// DefaultOutputDir is where report files are written: the working
	// directory, as the reports have always been.
	DefaultOutputDir = "."

	// DefaultOpenBrowser opens the HTML report after it is written.
	DefaultOpenBrowser = true
)

// Config holds all configuration options for one gradecard run.
// It is populated from defaults, the config file and CLI flags, in that
// order, and passed to the command rather than kept as global state.
type Config struct {
	// OpenBrowser asks the system to open the HTML report once written.
	OpenBrowser bool

	// Verbose enables debug log output on stderr.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path given with --config.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// OutputDir is the directory report files are written to.
	OutputDir string

	// Markdown, JSON and XLSX enable the extra report formats.
	Markdown bool
	JSON     bool
	XLSX     bool
}

// NewConfig creates a new Config with default values.
// With no config file and no flags these defaults reproduce the classic
// behaviour: text and HTML reports in the working directory, HTML opened.
func NewConfig() *Config {
	return &Config{
		OpenBrowser: DefaultOpenBrowser,
		OutputDir:   DefaultOutputDir,
	}
}

// ApplyFile copies the settings present in f over c.
// Keys missing from the file leave c untouched.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if f.OpenBrowser != nil {
		c.OpenBrowser = *f.OpenBrowser
	}
	if f.OutputDir != "" {
		c.OutputDir = f.OutputDir
	}
	c.Markdown = c.Markdown || f.Formats.Markdown
	c.JSON = c.JSON || f.Formats.JSON
	c.XLSX = c.XLSX || f.Formats.XLSX
}

// ExtraFormats returns the enabled report formats beyond text and HTML,
// in the order they are written.
func (c *Config) ExtraFormats() []report.Format {
	formats := make([]report.Format, 0, 3)
	if c.Markdown {
		formats = append(formats, report.FormatMarkdown)
	}
	if c.JSON {
		formats = append(formats, report.FormatJSON)
	}
	if c.XLSX {
		formats = append(formats, report.FormatXLSX)
	}
	return formats
}

// XDGConfigDir returns the XDG config directory for gradecard.
// On Linux: ~/.config/gradecard
// On macOS: ~/Library/Application Support/gradecard
// On Windows: %APPDATA%\gradecard
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It is called once after flags are parsed, before any input is read, so a
// bad output directory is reported before the user types anything.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return ErrEmptyOutputDir
	}

	info, err := os.Stat(c.OutputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputDirNotFound, c.OutputDir)
	}

	return nil
}
