package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version information set at build time via ldflags:
//
//	go build -ldflags "-X main.version=v1.0.0 -X main.commit=abc1234 -X main.date=2025-06-01"
var (
	version = ""
	commit  = ""
	date    = ""
)

// shortCommitLen is how many characters of a VCS revision are printed.
const shortCommitLen = 7

// buildSetting returns the value of a debug.BuildInfo setting, or "".
func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// firstNonEmpty returns the first non-empty value, or fallback.
func firstNonEmpty(fallback string, values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return fallback
}

// getVersion returns the version: ldflags, then module version, then "(devel)".
func getVersion() string {
	var moduleVersion string
	if info, ok := debug.ReadBuildInfo(); ok {
		moduleVersion = info.Main.Version
	}
	return firstNonEmpty("(devel)", version, moduleVersion)
}

// getCommit returns the short commit hash: ldflags, then vcs.revision.
func getCommit() string {
	revision := buildSetting("vcs.revision")
	if len(revision) > shortCommitLen {
		revision = revision[:shortCommitLen]
	}
	return firstNonEmpty("unknown", commit, revision)
}

// getDate returns the build date: ldflags, then vcs.time.
func getDate() string {
	return firstNonEmpty("unknown", date, buildSetting("vcs.time"))
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of gradecard.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gradecard version %s\n", getVersion())
			fmt.Fprintf(out, "  commit: %s\n", getCommit())
			fmt.Fprintf(out, "  built:  %s\n", getDate())
		},
	}
}
