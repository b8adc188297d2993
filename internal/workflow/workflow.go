package workflow

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/gofrs/flock"

	"tabular/internal/errs"
	"tabular/internal/fileutil"
)

// Runner executes file-level conversion operations. All checks and
// conversions run synchronously; nothing persists between calls.
type Runner struct {
	logger *slog.Logger
}

func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{logger: logger}
}

// readInput loads the file and requires it to be a regular UTF-8 file.
func (r *Runner) readInput(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, errs.Wrap(errs.ErrInputNotFound, "read input", fmt.Sprintf("input file not found: %s", path), nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInputNotFound, "read input", path, err)
	}
	if !utf8.Valid(data) {
		return nil, errs.Wrap(errs.ErrDecode, "read input", fmt.Sprintf("file is not valid UTF-8: %s", path), nil)
	}
	return data, nil
}

// checkOutput enforces the overwrite policy before any conversion work runs.
func (r *Runner) checkOutput(path string, force bool) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errs.Wrap(errs.ErrOutputConflict, "check output", path, err)
	}
	if info.IsDir() {
		return errs.Wrap(errs.ErrOutputConflict, "check output", fmt.Sprintf("output path is a directory: %s", path), nil)
	}
	if !force {
		return errs.Wrap(errs.ErrOutputConflict, "check output",
			fmt.Sprintf("output already exists: %s (use --force to overwrite)", path), nil)
	}
	return nil
}

// writeOutput creates parent directories, takes an advisory lock so two
// invocations cannot interleave writes to the same path, and writes the data
// atomically. Failure after the rename starts is reported, not rolled back.
func (r *Runner) writeOutput(path string, data []byte) error {
	if err := fileutil.EnsureParentDir(path); err != nil {
		return errs.Wrap(errs.ErrOutputConflict, "write output", path, err)
	}

	lockPath := path + ".lock"
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return errs.Wrap(errs.ErrOutputConflict, "write output", fmt.Sprintf("lock %s", lockPath), err)
	}
	if !locked {
		return errs.Wrap(errs.ErrOutputConflict, "write output",
			fmt.Sprintf("output is being written by another process: %s", path), nil)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}()

	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return errs.Wrap(errs.ErrOutputConflict, "write output", fmt.Sprintf("failed to write output file: %s", path), err)
	}
	return nil
}
