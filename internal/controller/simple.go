package controller

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "testindex/internal/model"
)

// Status line styles.
var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	staleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// SimpleUI implements UI using a cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRegistration prints one "Adding ..." diagnostic line.
func (s *SimpleUI) DisplayRegistration(reg Registration) {
	s.printf("Adding %s from %s\n", reg.Namespace, reg.Target)
}

// DisplayFixtureTable renders the discovered fixtures as a table.
func (s *SimpleUI) DisplayFixtureTable(regs []Registration) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Namespace", "Fixture"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, reg := range regs {
		table.Append([]string{reg.Namespace, string(reg.Source)})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", len(regs))})
	table.Render()

	s.printf("\n%s", tableBuffer.String())
}

// DisplayDiff prints an already formatted unified diff.
func (s *SimpleUI) DisplayDiff(diff string) {
	s.printf("%s", diff)
}

// DisplayUpToDate reports that the target needs no change.
func (s *SimpleUI) DisplayUpToDate(target m.Path) {
	s.printf("%s %s is up to date\n", okStyle.Render("✓"), target)
}

// DisplayOutOfDate reports that the target is stale.
func (s *SimpleUI) DisplayOutOfDate(target m.Path) {
	s.printf("%s %s is out of date, run `testindex generate`\n", staleStyle.Render("✗"), target)
}

// DisplayWriteSummary reports a completed regeneration.
func (s *SimpleUI) DisplayWriteSummary(target m.Path, fixtureCount int) {
	s.printf("%s registered %d fixture(s) in %s\n", okStyle.Render("✓"), fixtureCount, target)
}

// printf writes formatted output to the underlying command's stdout.
func (s *SimpleUI) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
