// Package opener opens files with the platform's default application.
//
// The platform is selected in one place, CommandFor, so callers only see the
// Opener interface. Opening is fire-and-forget: Open starts the helper
// process and returns without waiting for it.
package opener

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
)

// ErrUnsupportedPlatform is returned when no opener command is known for the
// current operating system.
var ErrUnsupportedPlatform = errors.New("no default application opener for this platform")

// Opener opens a file with the default application for its type.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// Command is the helper program and arguments used to open a file.
type Command struct {
	Name string
	Args []string
}

// CommandFor returns the opener command for the given GOOS value.
//
//   - windows: cmd /C start "" <path>
//   - darwin: open <path>
//   - linux and the BSDs: xdg-open <path>
//
// The empty "" argument on Windows is the window title expected by start;
// without it a quoted path would be taken as the title.
func CommandFor(goos, path string) (Command, error) {
	switch goos {
	case "windows":
		return Command{Name: "cmd", Args: []string{"/C", "start", "", path}}, nil
	case "darwin":
		return Command{Name: "open", Args: []string{path}}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos":
		return Command{Name: "xdg-open", Args: []string{path}}, nil
	default:
		return Command{}, ErrUnsupportedPlatform
	}
}

// System opens files by starting the host's opener command.
type System struct {
	goos  string
	start func(cmd *exec.Cmd) error
}

// NewSystem creates an Opener for the running operating system.
func NewSystem() *System {
	return &System{
		goos:  runtime.GOOS,
		start: (*exec.Cmd).Start,
	}
}

// Open starts the opener command for path and returns once it has started.
// The helper process is not waited on and outlives ctx: ctx only stops Open
// from starting it.
func (s *System) Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c, err := CommandFor(s.goos, path)
	if err != nil {
		return err
	}

	cmd := exec.Command(c.Name, c.Args...) //nolint:gosec // fixed helper program, path is our own output file
	if err := s.start(cmd); err != nil {
		return err
	}

	// Reap the child in the background so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}
