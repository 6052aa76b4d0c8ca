package project

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/studio-scaffolder/scaffolder/internal/defs"
)

// identPattern is the alphabet of asset, sequence and shot ids. They end up
// as filename subjects, so they follow the naming grammar.
var identPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// NormalizeID lowercases s and turns spaces and hyphens into underscores.
// Input is NFC-normalized first so composed and decomposed forms agree.
func NormalizeID(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

// NormalizeCode normalizes a project code. Codes only name the root
// directory, so any characters valid in a single path segment are kept.
func NormalizeCode(code string) (string, error) {
	c := NormalizeID(code)
	if c == "" {
		return "", ErrEmptyProjectCode
	}
	if c == "." || c == ".." || strings.ContainsAny(c, `/\:*?"<>|`) || strings.ContainsFunc(c, isControl) {
		return "", fmt.Errorf("%w: project code %q", ErrInvalidIdentifier, code)
	}
	return c, nil
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

// normalizeAssetID normalizes and checks an asset id.
func normalizeAssetID(id string) (string, error) {
	n := NormalizeID(id)
	if !identPattern.MatchString(n) {
		return "", fmt.Errorf("%w: asset id %q", ErrInvalidIdentifier, id)
	}
	return n, nil
}

// NormalizeSequenceID prefixes a bare sequence id with "seq_" and pads it
// to three digits: "10" becomes "seq_010".
func NormalizeSequenceID(id string) (string, error) {
	return normalizePrefixed(id, defs.SequencePrefix, 3)
}

// NormalizeShotID prefixes a bare shot id with "sh_" and pads it to four
// digits: "10" becomes "sh_0010".
func NormalizeShotID(id string) (string, error) {
	return normalizePrefixed(id, defs.ShotPrefix, 4)
}

func normalizePrefixed(id, prefix string, width int) (string, error) {
	n := NormalizeID(id)
	if n == "" {
		return "", ErrUnknownSeqOrShot
	}
	if !strings.HasPrefix(n, prefix) {
		if len(n) < width {
			n = strings.Repeat("0", width-len(n)) + n
		}
		n = prefix + n
	}
	if !identPattern.MatchString(n) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	return n, nil
}

// ResolveInside joins rel onto root and verifies the result stays inside
// root, following symlinks that already exist.
func ResolveInside(root, rel string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(cleaned) || filepath.VolumeName(cleaned) != "" {
		return "", fmt.Errorf("%w: absolute path %q", ErrPathOutsideRoot, rel)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", ioErr("resolve", root, err)
	}
	if resolved, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = resolved
	}

	target := filepath.Join(absRoot, cleaned)
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}
	if !within(absRoot, target) {
		return "", fmt.Errorf("%w: %q", ErrPathOutsideRoot, rel)
	}
	return target, nil
}

func within(root, path string) bool {
	if path == root {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(root, string(filepath.Separator))+string(filepath.Separator))
}
