package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"

	"testindex/internal/adapter"
	"testindex/internal/controller"
	m "testindex/internal/model"
)

// ErrOutOfDate reports that the target file's marker region no longer
// matches the current fixture set.
var ErrOutOfDate = errors.New("target file is out of date")

// targetFileMode is used when the target file is rewritten.
const targetFileMode = 0o644

// PipelineArgs carries the configuration shared by all operations.
type PipelineArgs struct {
	SourcesDir  m.Path
	TargetFile  m.Path
	Extension   string
	Normalize   Normalizer
	Wrapper     string
	MarkerLabel string
}

// GenerateArgs configures a full regeneration run.
type GenerateArgs struct {
	PipelineArgs

	// DryRun prints the pending diff instead of writing the target file.
	DryRun bool
}

// CheckArgs configures a staleness check.
type CheckArgs struct {
	PipelineArgs
}

// ListArgs configures a discovery-only listing.
type ListArgs struct {
	PipelineArgs
}

// Workflow ties the pipeline stages together: discovery, index building,
// rendering, splicing and the final write. One Workflow value serves one
// process; runs are strictly sequential.
type Workflow interface {
	// Generate runs the full pipeline and rewrites the target file's
	// marker region. The target is written at most once, and only after a
	// complete valid replacement text has been computed. An unchanged
	// result is not rewritten, so repeated runs leave no spurious diff.
	Generate(args GenerateArgs) error

	// Check recomputes the replacement text and fails with ErrOutOfDate
	// when the target file no longer matches the fixture set.
	Check(args CheckArgs) error

	// List shows the discovered fixtures and their derived namespaces
	// without touching the target file.
	List(args ListArgs) error
}

type workflow struct {
	fs adapter.FixtureFSAdapter
	ui controller.UI
}

// NewWorkflow constructs a Workflow over the given filesystem adapter and
// UI.
func NewWorkflow(fs adapter.FixtureFSAdapter, ui controller.UI) Workflow {
	return &workflow{fs: fs, ui: ui}
}

// Generate implements Workflow.
func (w *workflow) Generate(args GenerateArgs) error {
	regs, err := w.discover(args.PipelineArgs)
	if err != nil {
		return err
	}

	for _, reg := range regs {
		w.ui.DisplayRegistration(reg)
	}

	current, updated, err := w.computeReplacement(args.PipelineArgs, regs)
	if err != nil {
		return err
	}

	if updated == current {
		slog.Info("target already up to date", "target", string(args.TargetFile))
		w.ui.DisplayUpToDate(args.TargetFile)

		return nil
	}

	if args.DryRun {
		diff, err := unifiedDiff(current, updated, args.TargetFile)
		if err != nil {
			return err
		}

		w.ui.DisplayDiff(diff)

		return nil
	}

	if err := w.fs.WriteFile(args.TargetFile, []byte(updated), targetFileMode); err != nil {
		return fmt.Errorf("writing target file: %w", err)
	}

	slog.Info("target file rewritten",
		"target", string(args.TargetFile), "fixtures", len(regs))
	w.ui.DisplayWriteSummary(args.TargetFile, len(regs))

	return nil
}

// Check implements Workflow.
func (w *workflow) Check(args CheckArgs) error {
	regs, err := w.discover(args.PipelineArgs)
	if err != nil {
		return err
	}

	current, updated, err := w.computeReplacement(args.PipelineArgs, regs)
	if err != nil {
		return err
	}

	if updated == current {
		w.ui.DisplayUpToDate(args.TargetFile)
		return nil
	}

	diff, err := unifiedDiff(current, updated, args.TargetFile)
	if err != nil {
		return err
	}

	w.ui.DisplayDiff(diff)
	w.ui.DisplayOutOfDate(args.TargetFile)

	return fmt.Errorf("%w: %s", ErrOutOfDate, args.TargetFile)
}

// List implements Workflow.
func (w *workflow) List(args ListArgs) error {
	regs, err := w.discover(args.PipelineArgs)
	if err != nil {
		return err
	}

	// Build the index anyway so key clashes surface in list mode too.
	if _, err := BuildIndex(fixtureRefs(regs), args.Normalize); err != nil {
		return err
	}

	w.ui.DisplayFixtureTable(regs)

	return nil
}

// discover enumerates the fixture files and derives both path views and
// the namespace of each one.
func (w *workflow) discover(args PipelineArgs) ([]controller.Registration, error) {
	sources, err := w.fs.DiscoverFixtures(args.SourcesDir, args.Extension)
	if err != nil {
		return nil, fmt.Errorf("discovering fixtures: %w", err)
	}

	slog.Debug("discovered fixtures",
		"root", string(args.SourcesDir), "extension", args.Extension, "count", len(sources))

	targetDir := filepath.Dir(string(args.TargetFile))

	regs := make([]controller.Registration, 0, len(sources))

	for _, source := range sources {
		full := w.fs.JoinPath(string(args.SourcesDir), string(source))

		target, err := w.fs.RelPath(m.Path(targetDir), full)
		if err != nil {
			return nil, fmt.Errorf("resolving fixture path %q: %w", source, err)
		}

		regs = append(regs, controller.Registration{
			Namespace: NamespacePath(source, args.Normalize),
			Source:    source,
			Target:    m.Path(filepath.ToSlash(string(target))),
		})
	}

	return regs, nil
}

// computeReplacement runs build, render and splice against the target
// file's current text, which is read in full before any mutation.
func (w *workflow) computeReplacement(args PipelineArgs, regs []controller.Registration) (current, updated string, err error) {
	root, err := BuildIndex(fixtureRefs(regs), args.Normalize)
	if err != nil {
		return "", "", err
	}

	block := RenderBlock(root, args.Wrapper)

	currentBytes, err := w.fs.ReadFile(args.TargetFile)
	if err != nil {
		return "", "", fmt.Errorf("reading target file: %w", err)
	}

	current = string(currentBytes)

	updated, err = Splice(current, block, args.MarkerLabel)
	if err != nil {
		return "", "", fmt.Errorf("splicing %q: %w", args.TargetFile, err)
	}

	return current, updated, nil
}

func fixtureRefs(regs []controller.Registration) []FixtureRef {
	refs := make([]FixtureRef, 0, len(regs))
	for _, reg := range regs {
		refs = append(refs, FixtureRef{Source: reg.Source, Target: reg.Target})
	}

	return refs
}

// unifiedDiff formats the pending change of the target file.
func unifiedDiff(current, updated string, target m.Path) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(current),
		B:        difflib.SplitLines(updated),
		FromFile: string(target),
		ToFile:   string(target) + " (regenerated)",
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("formatting diff: %w", err)
	}

	return diff, nil
}
