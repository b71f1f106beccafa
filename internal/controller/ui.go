// Package controller provides output adapters for the testindex CLI.
package controller

import (
	m "testindex/internal/model"
)

// Registration describes one discovered fixture: the namespace derived
// from its directory structure and its two path views.
type Registration struct {
	// Namespace is the "::" joined namespace path, e.g. "a::b::one".
	Namespace string
	// Source is the fixture's path relative to the sources root.
	Source m.Path
	// Target is the fixture's path relative to the target file's
	// directory, as it appears in the generated block.
	Target m.Path
}

// UI defines the interface for reporting pipeline progress and results.
// Implementations can use different output methods.
type UI interface {
	// DisplayRegistration names one discovered-and-registered fixture.
	DisplayRegistration(reg Registration)
	// DisplayFixtureTable summarizes all discovered fixtures.
	DisplayFixtureTable(regs []Registration)
	// DisplayDiff shows a unified diff of a pending or missing change.
	DisplayDiff(diff string)
	// DisplayUpToDate reports that the target file needs no change.
	DisplayUpToDate(target m.Path)
	// DisplayOutOfDate reports that the target file is stale.
	DisplayOutOfDate(target m.Path)
	// DisplayWriteSummary reports a completed regeneration.
	DisplayWriteSummary(target m.Path, fixtureCount int)
}
