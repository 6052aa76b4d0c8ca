package cli

import (
	"errors"

	"github.com/studio-scaffolder/scaffolder/internal/config"
	"github.com/studio-scaffolder/scaffolder/internal/core/project"
	"github.com/studio-scaffolder/scaffolder/internal/metadata"
	"github.com/studio-scaffolder/scaffolder/internal/naming"
	"github.com/studio-scaffolder/scaffolder/internal/schema"
	"github.com/studio-scaffolder/scaffolder/internal/studio"
	"github.com/studio-scaffolder/scaffolder/internal/template"
	"github.com/studio-scaffolder/scaffolder/internal/ui"
)

// errorKind names a failure class on the command line.
type errorKind struct {
	target error
	name   string
}

// errorKinds is checked in order; the first match wins, so wrappers such as
// IOFailure come after the errors they may carry.
var errorKinds = []errorKind{
	{schema.ErrUnknownSchemaKey, "UnknownSchemaKey"},
	{schema.ErrInvalidSchema, "InvalidSchema"},
	{project.ErrEmptyProjectCode, "EmptyProjectCode"},
	{project.ErrUnknownProjectType, "UnknownProjectType"},
	{project.ErrProjectAlreadyExists, "ProjectAlreadyExists"},
	{project.ErrUnknownAssetKind, "UnknownAssetKind"},
	{project.ErrAssetDirAlreadyExists, "AssetDirAlreadyExists"},
	{project.ErrUnknownSeqOrShot, "UnknownSeqOrShot"},
	{project.ErrShotDirAlreadyExists, "ShotDirAlreadyExists"},
	{project.ErrSourceNotFound, "SourceNotFound"},
	{project.ErrDestinationExists, "DestinationExists"},
	{project.ErrInvalidIdentifier, "InvalidIdentifier"},
	{project.ErrPathOutsideRoot, "PathOutsideRoot"},
	{naming.ErrInvalidFilenameFormat, "InvalidFilenameFormat"},
	{naming.ErrMissingSubject, "MissingSubject"},
	{naming.ErrForbiddenAssetTask, "ForbiddenAssetTask"},
	{naming.ErrUnknownAssetTask, "UnknownAssetTask"},
	{naming.ErrInvalidShotScope, "InvalidShotScope"},
	{naming.ErrMissingShotTask, "MissingShotTask"},
	{naming.ErrUnknownShotTask, "UnknownShotTask"},
	{naming.ErrIndeterminateDomain, "IndeterminateDomain"},
	{project.ErrNoStartingPoint, "NoStartingPoint"},
	{project.ErrRootNotFound, "NotFound"},
	{studio.ErrNoHostDocument, "NoStartingPoint"},
	{studio.ErrNotInAsset, "SourceNotFound"},
	{template.ErrNoFrontMatter, "InvalidDocument"},
	{template.ErrTemplateNotFound, "TemplateError"},
	{template.ErrMissingTemplateKey, "TemplateError"},
	{template.ErrUnexpandedToken, "TemplateError"},
	{metadata.ErrWriteFailed, "IOFailure"},
	{metadata.ErrReadFailed, "IOFailure"},
	{project.ErrIOFailure, "IOFailure"},
	{config.ErrInvalidConfig, "InvalidConfig"},
	{config.ErrInvalidYAML, "InvalidConfig"},
	{ui.ErrCancelled, "Cancelled"},
	{ui.ErrHeadlessNoDefaults, "MissingInput"},
}

// ErrorKind returns the kind name for err, or "Error" when unclassified.
func ErrorKind(err error) string {
	var ue *usageError
	if errors.As(err, &ue) {
		return "Usage"
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k.name
		}
	}
	return "Error"
}

// usageError marks bad flag combinations detected by a command itself.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func newUsageError(msg string) error { return &usageError{msg: msg} }
