package domain

import (
	"fmt"
	"strings"

	m "testindex/internal/model"
)

// indentUnit is the fixed indentation step of the rendered block.
const indentUnit = "    "

// RenderBlock renders the index as a single nested invocation of the
// wrapper token, e.g. "tests!". Rendering is pure and deterministic: the
// same tree produces byte-identical output on every call. An empty root
// renders as a valid empty invocation.
func RenderBlock(root *m.Group, wrapper string) string {
	return wrapper + " {\n" + renderGroupBody(root, 1) + "\n}"
}

// renderGroupBody renders a group's entries at the given depth, one item
// per entry in insertion order, joined by newlines.
func renderGroupBody(group *m.Group, depth int) string {
	items := make([]string, 0, group.Len())

	for _, key := range group.Keys() {
		child, _ := group.Child(key)
		items = append(items, renderItem(key, child, depth))
	}

	return strings.Join(items, "\n")
}

func renderItem(key m.Segment, node m.Node, depth int) string {
	pad := strings.Repeat(indentUnit, depth)

	switch child := node.(type) {
	case *m.Group:
		return pad + "mod " + string(key) + " {\n" +
			renderGroupBody(child, depth+1) + "\n" +
			pad + "},"
	case m.Leaf:
		return fmt.Sprintf("%s%s: %q,", pad, key, string(child.Target))
	}

	// Node is a closed variant; only the two cases above exist.
	return ""
}
