// Package project implements the structure engine for studio projects: it
// locates and classifies existing project roots and materializes project,
// asset and shot trees from the schema registry.
//
// Every operation is synchronous and performs a bounded sequence of file
// system calls. Operations against the same root must not run concurrently.
package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for the project package.
var (
	// ErrEmptyProjectCode indicates a project code that is empty after normalization.
	ErrEmptyProjectCode = errors.New("project code is empty")

	// ErrUnknownProjectType indicates a project type missing from the registry.
	ErrUnknownProjectType = errors.New("unknown project type")

	// ErrProjectAlreadyExists indicates the target root exists and is not empty.
	ErrProjectAlreadyExists = errors.New("project already exists")

	// ErrUnknownAssetKind indicates an asset kind missing from the registry.
	ErrUnknownAssetKind = errors.New("unknown asset kind")

	// ErrAssetDirAlreadyExists indicates the asset directory is already present.
	ErrAssetDirAlreadyExists = errors.New("asset directory already exists")

	// ErrUnknownSeqOrShot indicates an empty sequence or shot id.
	ErrUnknownSeqOrShot = errors.New("sequence and shot ids are required")

	// ErrShotDirAlreadyExists indicates the shot directory is already present.
	ErrShotDirAlreadyExists = errors.New("shot directory already exists")

	// ErrSourceNotFound indicates the asset to move does not exist.
	ErrSourceNotFound = errors.New("source asset directory not found")

	// ErrDestinationExists indicates the move target is already present.
	ErrDestinationExists = errors.New("destination asset directory exists")

	// ErrNoStartingPoint indicates root detection had neither a hint nor a
	// remembered root to start from.
	ErrNoStartingPoint = errors.New("no starting point for root detection")

	// ErrRootNotFound indicates no project root was found within the walk bound.
	ErrRootNotFound = errors.New("project root not found")

	// ErrInvalidIdentifier indicates an id that cannot be used as a path
	// segment or filename subject.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrPathOutsideRoot indicates a relative path that escapes the project root.
	ErrPathOutsideRoot = errors.New("path escapes project root")

	// ErrIOFailure matches every *IOError.
	ErrIOFailure = errors.New("file system operation failed")
)

// IOError records a failed file system call and the path it was attempted on.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIOFailure.
func (e *IOError) Is(target error) bool {
	return target == ErrIOFailure
}

func ioErr(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
