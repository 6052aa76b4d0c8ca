package models

import "fmt"

// Domain selects the naming rules applied to a filename.
type Domain string

const (
	DomainAsset Domain = "asset"
	DomainShot  Domain = "shot"

	// DomainNone means the domain was not supplied and must be inferred.
	DomainNone Domain = ""
)

// IsValid reports whether d is the asset or the shot domain.
func (d Domain) IsValid() bool {
	return d == DomainAsset || d == DomainShot
}

// ParseDomain converts a flag value to a Domain. The empty string yields DomainNone.
func ParseDomain(s string) (Domain, error) {
	d := Domain(s)
	if d == DomainNone || d.IsValid() {
		return d, nil
	}
	return DomainNone, fmt.Errorf("unknown naming domain %q: must be asset or shot", s)
}
