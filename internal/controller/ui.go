// Package controller provides output adapters for displaying scan results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/VoidbreakDev/AFL-Coach-Sim/internal/model"
)

// FileCount aggregates the findings of one file by severity.
type FileCount struct {
	File  m.Path
	Warn  int
	Info  int
	OK    int
	Total int
}

// UI defines the interface for displaying scan output. Implementations
// can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayScanInfo(ctx context.Context, files, threads int)
	DisplayScanSummary(ctx context.Context, findings []m.Finding, out m.Path) error
	DisplayFileCounts(ctx context.Context, counts []FileCount) error
	DisplayReport(ctx context.Context, findings []m.Finding) error
}

// NewUI returns a TUI when attached to a terminal and a SimpleUI
// otherwise, so pipelines and CI logs get plain text.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// CountBySeverity folds a finding sequence into per-file severity counts,
// preserving first-seen file order.
func CountBySeverity(findings []m.Finding) []FileCount {
	index := make(map[m.Path]int)
	counts := make([]FileCount, 0)

	for _, finding := range findings {
		i, ok := index[finding.File]
		if !ok {
			i = len(counts)
			index[finding.File] = i
			counts = append(counts, FileCount{File: finding.File})
		}

		switch finding.Severity {
		case m.SeverityWarn, m.SeverityError:
			counts[i].Warn++
		case m.SeverityInfo:
			counts[i].Info++
		case m.SeverityOK:
			counts[i].OK++
		}

		counts[i].Total++
	}

	return counts
}
