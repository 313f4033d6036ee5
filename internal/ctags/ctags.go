// Package ctags shells out to universal-ctags to produce the NDJSON tag
// stream consumed by the outline package.
package ctags

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// ctagsBin is the executable name; a variable so tests can point it at
// something that does not exist.
var ctagsBin = "ctags"

// Options configures a tag generation run.
type Options struct {
	// OutputFile receives the NDJSON tag stream.
	OutputFile string
	// Languages filters the scan, e.g. ["C++", "Python"].
	Languages []string
	// ExtraArgs are appended verbatim after the baseline argument set.
	ExtraArgs []string
}

// Generate runs ctags recursively over sourceDir and returns the process
// exit code. A missing source directory or a missing ctags binary both
// yield code 1; any other tool failure propagates the tool's own code.
func Generate(ctx context.Context, sourceDir string, opts Options) (int, error) {
	if _, err := os.Stat(sourceDir); err != nil {
		return 1, fmt.Errorf("source directory %q: %w", sourceDir, err)
	}

	args := []string{
		"-R",
		"--languages=" + strings.Join(opts.Languages, ","),
		"--output-format=json",
		"--fields=+n+S+a+K+Z+t",
		"--extras=+q",
		"--tag-relative=never",
		"-o", opts.OutputFile,
		sourceDir,
	}
	args = append(args, opts.ExtraArgs...)

	slog.Debug("ctags.run", "bin", ctagsBin, "args", args)
	cmd := exec.CommandContext(ctx, ctagsBin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), fmt.Errorf("ctags exited with code %d", exitErr.ExitCode())
	}
	if errors.Is(err, exec.ErrNotFound) {
		return 1, fmt.Errorf("ctags not found in PATH; install universal-ctags: %w", err)
	}
	return 1, err
}
