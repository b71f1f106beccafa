package model

import (
	"testindex/pkg"
)

// Node is one entry of the hierarchical fixture index. It is either a
// *Group (a namespace level derived from a directory) or a Leaf (a single
// fixture binding). The variant is closed: no other type implements it.
type Node interface {
	isNode()
}

// Group is an insertion-ordered mapping from Segment to child nodes.
// Insertion order is significant: it determines rendering order.
type Group struct {
	children *pkg.OrdMap[Segment, Node]
}

// NewGroup creates an empty group. An empty group is legal and renders as
// an empty namespace level.
func NewGroup() *Group {
	return &Group{
		children: pkg.NewOrdMap[Segment, Node](),
	}
}

func (g *Group) isNode() {}

// Insert stores node under key. Inserting an existing key overwrites the
// value but keeps the key's original position.
func (g *Group) Insert(key Segment, node Node) {
	g.children.Set(key, node)
}

// Child returns the node stored under key and whether the key is present.
func (g *Group) Child(key Segment) (Node, bool) {
	return g.children.Get(key)
}

// Keys returns the group's keys in insertion order.
func (g *Group) Keys() []Segment {
	return g.children.Keys()
}

// Len returns the number of entries in the group.
func (g *Group) Len() int {
	return g.children.Len()
}

// Leaf binds a fixture name to the fixture's path relative to the target
// file's directory.
type Leaf struct {
	Target Path
}

func (Leaf) isNode() {}
