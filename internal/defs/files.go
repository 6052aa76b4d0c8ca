package defs

import "io/fs"

// Names of the entries that identify and describe a project root.
const (
	// MarkerFile is the zero-byte sentinel written at every project root. Root
	// detection does not rely on it.
	MarkerFile = ".blender_project"

	// MetadataFile is the JSON identity document co-located at a project root.
	MetadataFile = "project.json"

	// ReadmeRelPath is the generated structure description, relative to the root.
	ReadmeRelPath = "00_admin/docs/README_project_structure.md"

	// SettingsRelPath is the generated project summary, relative to the root.
	SettingsRelPath = "prod/project_settings.json"
)

// Conventional top-level directories of a project root.
const (
	AssetsDir = "01_assets"
	ShotsDir  = "02_shots"
)

// Shot directory prefixes used for classification and id normalization.
const (
	SequencePrefix = "seq_"
	ShotPrefix     = "sh_"
)

// DocumentExt is the extension of the authoring tool's documents. Seed files with
// this extension are produced through the baseline capability.
const DocumentExt = ".blend"

// Permissions used for everything the scaffolder creates.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)
