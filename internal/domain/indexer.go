package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	m "testindex/internal/model"
)

// ErrKeyClash reports that a fixture and a directory normalize to the same
// key at the same index level. The pipeline aborts before any write.
var ErrKeyClash = errors.New("fixture and directory share a name at the same level")

// FixtureRef links the two path views of one discovered fixture. Source is
// relative to the sources root and drives namespace derivation; Target is
// relative to the target file's directory and is what the generated block
// binds the fixture name to.
type FixtureRef struct {
	Source m.Path
	Target m.Path
}

// BuildIndex folds an ordered list of discovered fixtures into a single
// rooted index. Groups are created in encounter order, so the output order
// of a later rendering is exactly the discovery order. Two fixtures that
// normalize to the same key under the same parent overwrite last-wins; a
// fixture whose key collides with a group (or vice versa) is a hard error.
func BuildIndex(fixtures []FixtureRef, normalize Normalizer) (*m.Group, error) {
	root := m.NewGroup()

	for _, fixture := range fixtures {
		groups, stem := splitSource(fixture.Source)

		node := root
		for i, part := range groups {
			key := normalize(part)

			child, ok := node.Child(key)
			if !ok {
				next := m.NewGroup()
				node.Insert(key, next)
				node = next

				continue
			}

			group, ok := child.(*m.Group)
			if !ok {
				return nil, fmt.Errorf("%w: %q at %q (from %q)",
					ErrKeyClash, key, strings.Join(groups[:i+1], "/"), fixture.Source)
			}

			node = group
		}

		leafKey := normalize(stem)

		if existing, ok := node.Child(leafKey); ok {
			if _, isGroup := existing.(*m.Group); isGroup {
				return nil, fmt.Errorf("%w: %q (from %q)", ErrKeyClash, leafKey, fixture.Source)
			}

			slog.Warn("duplicate fixture name, later discovery wins",
				"name", string(leafKey), "path", string(fixture.Source))
		}

		node.Insert(leafKey, m.Leaf{Target: fixture.Target})
	}

	return root, nil
}

// NamespacePath returns the fixture's derived namespace as a "::" joined
// string, e.g. "a::b::one" for a/b/one.md. Used for diagnostics only.
func NamespacePath(source m.Path, normalize Normalizer) string {
	groups, stem := splitSource(source)

	parts := make([]string, 0, len(groups)+1)
	for _, part := range groups {
		parts = append(parts, string(normalize(part)))
	}

	parts = append(parts, string(normalize(stem)))

	return strings.Join(parts, "::")
}

// splitSource breaks a root-relative fixture path into its directory
// components and the extension-stripped file stem.
func splitSource(source m.Path) ([]string, string) {
	slashed := filepath.ToSlash(string(source))

	base := path.Base(slashed)
	stem := strings.TrimSuffix(base, path.Ext(base))

	dir := path.Dir(slashed)
	if dir == "." || dir == "/" {
		return nil, stem
	}

	return strings.Split(dir, "/"), stem
}
