package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/VoidbreakDev/AFL-Coach-Sim/internal/model"
)

// SimpleUI implements UI using cobra Command's printers.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayScanInfo prints the scan parameters before work starts.
func (s *SimpleUI) DisplayScanInfo(ctx context.Context, files, threads int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Scanning %d file(s) with %d worker(s)\n", files, threads)
}

// DisplayScanSummary prints per-file severity counts and the report path.
func (s *SimpleUI) DisplayScanSummary(ctx context.Context, findings []m.Finding, out m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	counts := CountBySeverity(findings)
	if len(counts) > 0 {
		s.printf("\n%s", renderCountsTable(counts))
	}

	s.printf("Wrote %d findings to %s\n", len(findings), out)

	return nil
}

// DisplayFileCounts prints the per-file counts table.
func (s *SimpleUI) DisplayFileCounts(ctx context.Context, counts []FileCount) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderCountsTable(counts))

	return nil
}

// DisplayReport prints every finding as one table row.
func (s *SimpleUI) DisplayReport(ctx context.Context, findings []m.Finding) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"File", "Line", "Severity", "Rule", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, finding := range findings {
		table.Append([]string{
			string(finding.File),
			strconv.Itoa(finding.Line),
			string(finding.Severity),
			finding.Rule,
			finding.Detail,
		})
	}

	table.Render()
	s.printf("\n%s", buffer.String())

	return nil
}

func renderCountsTable(counts []FileCount) string {
	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"File", "Warn", "Info", "OK"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totalWarn := 0
	totalInfo := 0
	totalOK := 0

	for _, count := range counts {
		table.Append([]string{
			string(count.File),
			strconv.Itoa(count.Warn),
			strconv.Itoa(count.Info),
			strconv.Itoa(count.OK),
		})

		totalWarn += count.Warn
		totalInfo += count.Info
		totalOK += count.OK
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(counts)),
		strconv.Itoa(totalWarn),
		strconv.Itoa(totalInfo),
		strconv.Itoa(totalOK),
	})

	table.Render()

	return buffer.String()
}

// printf writes formatted output to the underlying cobra command's stdout.
func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
