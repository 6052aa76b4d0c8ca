// Package models provides shared enums for the studio scaffolder.
//
// These types are used by the schema registry, the structure generator, the
// root detector and the naming grammar, so they live outside internal/ and
// carry no behavior beyond validation.
//
// # Project Types
//
// A project is created from one of three templates:
//   - single_shot: one shot under 02_shots/sh_####
//   - short_film: sequences under 02_shots/seq_###/sh_####
//   - asset_library: assets only, no 02_shots directory
//
// Use [ProjectType] and its constants:
//
//	pt := models.ProjectTypeShortFilm
//	if pt.IsValid() {
//	    fmt.Println("creatable type:", pt)
//	}
//
// # Asset Kinds
//
// Assets are grouped by [AssetKind] (char, prop, env, fx, veh, veg, light).
//
// # Naming Domains
//
// Filenames are validated in the asset or the shot [Domain].
package models
