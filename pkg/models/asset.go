package models

import (
	"fmt"
	"strings"
)

// AssetKind is the category directory an asset lives under in 01_assets/.
type AssetKind string

const (
	AssetKindCharacter   AssetKind = "char"
	AssetKindProp        AssetKind = "prop"
	AssetKindEnvironment AssetKind = "env"
	AssetKindEffects     AssetKind = "fx"
	AssetKindVehicle     AssetKind = "veh"
	AssetKindVegetation  AssetKind = "veg"
	AssetKindLight       AssetKind = "light"
)

// ValidAssetKinds returns every asset kind in directory order.
func ValidAssetKinds() []AssetKind {
	return []AssetKind{
		AssetKindCharacter,
		AssetKindProp,
		AssetKindEnvironment,
		AssetKindEffects,
		AssetKindVehicle,
		AssetKindVegetation,
		AssetKindLight,
	}
}

// IsValid reports whether k is a known asset kind.
func (k AssetKind) IsValid() bool {
	switch k {
	case AssetKindCharacter, AssetKindProp, AssetKindEnvironment, AssetKindEffects,
		AssetKindVehicle, AssetKindVegetation, AssetKindLight:
		return true
	}
	return false
}

// Label returns the long name of the asset kind.
func (k AssetKind) Label() string {
	switch k {
	case AssetKindCharacter:
		return "Character"
	case AssetKindProp:
		return "Prop"
	case AssetKindEnvironment:
		return "Environment"
	case AssetKindEffects:
		return "Effects"
	case AssetKindVehicle:
		return "Vehicle"
	case AssetKindVegetation:
		return "Vegetation"
	case AssetKindLight:
		return "Light"
	default:
		return string(k)
	}
}

// ParseAssetKind converts a user-supplied string to an AssetKind.
func ParseAssetKind(s string) (AssetKind, error) {
	k := AssetKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		kinds := ValidAssetKinds()
		names := make([]string, len(kinds))
		for i, v := range kinds {
			names[i] = string(v)
		}
		return "", fmt.Errorf("unknown asset kind %q: must be one of: %s", s, strings.Join(names, ", "))
	}
	return k, nil
}

// AssetLocation identifies an asset from a path inside a project root.
type AssetLocation struct {
	Kind AssetKind
	ID   string
}
