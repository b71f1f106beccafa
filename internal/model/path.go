// Package model defines the data structures for the fixture index.
package model

// Path represents a file system path.
type Path string

// Segment is one normalized name component of a fixture's namespace path,
// used as a key at a single index level.
type Segment string
