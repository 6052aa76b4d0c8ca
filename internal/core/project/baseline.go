package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"

	"github.com/studio-scaffolder/scaffolder/internal/defs"
)

// BaselineWriter produces the authoring tool's baseline document at path.
// The document is opaque to this package.
type BaselineWriter interface {
	WriteBaseline(path string) error
}

// PlaceholderBaseline writes an empty file. It never overwrites.
type PlaceholderBaseline struct{}

// WriteBaseline creates an empty file at path if none exists.
func (PlaceholderBaseline) WriteBaseline(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, defs.FilePerm)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return ioErr("create", path, err)
	}
	if err := f.Close(); err != nil {
		return ioErr("close", path, err)
	}
	return nil
}

// PathArg is replaced by the target path in ExecBaseline.Args. When no
// argument contains it, the path is appended.
const PathArg = "{path}"

// DefaultBaselineTimeout bounds an ExecBaseline run when Timeout is zero.
const DefaultBaselineTimeout = 2 * time.Minute

// ExecBaseline runs an external command, typically the authoring tool in
// background mode, to save a baseline document.
type ExecBaseline struct {
	Command string
	Args    []string
	Timeout time.Duration
}

// WriteBaseline runs the command and checks that it produced path.
func (e ExecBaseline) WriteBaseline(path string) error {
	if e.Command == "" {
		return errors.New("baseline command is not configured")
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultBaselineTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	args := make([]string, 0, len(e.Args)+1)
	substituted := false
	for _, a := range e.Args {
		if strings.Contains(a, PathArg) {
			a = strings.ReplaceAll(a, PathArg, path)
			substituted = true
		}
		args = append(args, a)
	}
	if !substituted {
		args = append(args, path)
	}

	out, err := exec.CommandContext(ctx, e.Command, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("baseline command %s: %w: %s", e.Command, err, strings.TrimSpace(string(out)))
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("baseline command %s did not create %s", e.Command, path)
	}
	return nil
}

// String describes the command for logs.
func (e ExecBaseline) String() string {
	return strings.Join(slices.Concat([]string{e.Command}, e.Args), " ")
}
