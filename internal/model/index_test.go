package model

import (
	"testing"
)

func TestGroup(t *testing.T) {
	t.Run("empty group has no entries", func(t *testing.T) {
		g := NewGroup()
		if g.Len() != 0 {
			t.Fatalf("expected empty group, got %d entries", g.Len())
		}
		if _, ok := g.Child("missing"); ok {
			t.Fatal("Child on empty group should report absence")
		}
	})

	t.Run("insert preserves order", func(t *testing.T) {
		g := NewGroup()
		g.Insert("c", Leaf{Target: "c.md"})
		g.Insert("a", Leaf{Target: "a.md"})
		g.Insert("b", NewGroup())

		keys := g.Keys()
		want := []Segment{"c", "a", "b"}
		if len(keys) != len(want) {
			t.Fatalf("expected %d keys, got %d", len(want), len(keys))
		}
		for i, key := range want {
			if keys[i] != key {
				t.Errorf("key %d: expected %q, got %q", i, key, keys[i])
			}
		}
	})

	t.Run("overwrite keeps position", func(t *testing.T) {
		g := NewGroup()
		g.Insert("a", Leaf{Target: "old.md"})
		g.Insert("b", Leaf{Target: "b.md"})
		g.Insert("a", Leaf{Target: "new.md"})

		if g.Len() != 2 {
			t.Fatalf("expected 2 entries after overwrite, got %d", g.Len())
		}
		if g.Keys()[0] != "a" {
			t.Errorf("overwritten key should keep first position, got %q", g.Keys()[0])
		}

		node, ok := g.Child("a")
		if !ok {
			t.Fatal("expected key a to be present")
		}
		leaf, ok := node.(Leaf)
		if !ok {
			t.Fatalf("expected a leaf, got %T", node)
		}
		if leaf.Target != "new.md" {
			t.Errorf("expected last write to win, got %q", leaf.Target)
		}
	})

	t.Run("groups and leaves coexist as Node", func(t *testing.T) {
		g := NewGroup()
		g.Insert("dir", NewGroup())
		g.Insert("file", Leaf{Target: "file.md"})

		node, _ := g.Child("dir")
		if _, ok := node.(*Group); !ok {
			t.Fatalf("expected group node, got %T", node)
		}

		node, _ = g.Child("file")
		if _, ok := node.(Leaf); !ok {
			t.Fatalf("expected leaf node, got %T", node)
		}
	})
}
