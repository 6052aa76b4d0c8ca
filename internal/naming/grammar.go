package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
)

// ShotScope is the fixed scope segment of every shot filename.
const ShotScope = "shot"

// Subjects may carry digits (seq010sh0010); scope and task are letters and
// underscores only. Groups are greedy, so for a with-task name the scope
// takes the longest prefix that still leaves a subject and a task.
var (
	withTaskPattern    = regexp.MustCompile(`^([a-z_]+)_([a-z0-9_]+)_([a-z_]+)_v(\d+)$`)
	withoutTaskPattern = regexp.MustCompile(`^([a-z0-9_]+)_v(\d+)$`)
)

// Components are the parts extracted from a conformant filename.
type Components struct {
	Scope   string // empty for names without a task
	Subject string
	Task    string // empty for names without a task
	Version int
}

// HasTask reports whether the name was matched by the with-task grammar.
func (c Components) HasTask() bool {
	return c.Task != ""
}

// Stem strips the directory and the last extension from a filename or path.
func Stem(name string) string {
	base := filepath.Base(filepath.ToSlash(name))
	return base[:len(base)-len(filepath.Ext(base))]
}

// Parse extracts filename components. The with-task grammar is tried first.
// The extension, if any, is ignored.
func Parse(filename string) (Components, error) {
	stem := Stem(filename)

	if m := withTaskPattern.FindStringSubmatch(stem); m != nil {
		version, err := parseVersion(m[4])
		if err != nil {
			return Components{}, fmt.Errorf("%w: %s", ErrInvalidFilenameFormat, filename)
		}
		return Components{Scope: m[1], Subject: m[2], Task: m[3], Version: version}, nil
	}

	if m := withoutTaskPattern.FindStringSubmatch(stem); m != nil {
		version, err := parseVersion(m[2])
		if err != nil {
			return Components{}, fmt.Errorf("%w: %s", ErrInvalidFilenameFormat, filename)
		}
		return Components{Subject: m[1], Version: version}, nil
	}

	return Components{}, fmt.Errorf("%w: %s", ErrInvalidFilenameFormat, filename)
}

// parseVersion accepts any run of digits that fits in an int. The grammar
// sets no upper bound; values past the platform int are reported as
// ErrInvalidFilenameFormat.
func parseVersion(digits string) (int, error) {
	v, err := strconv.ParseUint(digits, 10, 0)
	if err != nil {
		return 0, err
	}
	if v > uint64(^uint(0)>>1) {
		return 0, strconv.ErrRange
	}
	return int(v), nil
}
