// Package domain contains the index building, rendering and splicing logic
// behind the testindex CLI.
package domain

import (
	"fmt"

	m "testindex/internal/model"
)

// Normalizer maps a raw file or directory name to a Segment that is valid
// as an identifier in the generated registration block. Implementations
// must be total: every input produces a usable segment.
type Normalizer func(raw string) m.Segment

// Normalizer strategy names accepted by NormalizerByName.
const (
	NormalizerIdentity = "identity"
	NormalizerStrict   = "strict"
)

// IdentityNormalizer returns the raw name unchanged. Callers are then
// responsible for supplying names that are already valid identifiers.
func IdentityNormalizer(raw string) m.Segment {
	return m.Segment(raw)
}

// StrictNormalizer transliterates every character that is not a letter,
// digit or underscore to an underscore, and prefixes an underscore when
// the result would start with a digit or be empty.
func StrictNormalizer(raw string) m.Segment {
	out := make([]rune, 0, len(raw))
	for _, r := range raw {
		if isIdentRune(r) {
			out = append(out, r)
			continue
		}

		out = append(out, '_')
	}

	if len(out) == 0 || (out[0] >= '0' && out[0] <= '9') {
		out = append([]rune{'_'}, out...)
	}

	return m.Segment(out)
}

func isIdentRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	}

	return false
}

// NormalizerByName resolves a strategy name from config into a Normalizer.
func NormalizerByName(name string) (Normalizer, error) {
	switch name {
	case NormalizerIdentity, "":
		return IdentityNormalizer, nil
	case NormalizerStrict:
		return StrictNormalizer, nil
	}

	return nil, fmt.Errorf("unknown normalizer %q (expected %q or %q)", name, NormalizerIdentity, NormalizerStrict)
}
