package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/VoidbreakDev/AFL-Coach-Sim/internal/model"
)

func newBufferedSimpleUI() (*SimpleUI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return NewSimpleUI(cmd), out
}

func testFindings() []m.Finding {
	return []m.Finding{
		{File: "Assets/Player.cs", Line: 12, Severity: m.SeverityWarn, Rule: "update-expensive-call", Detail: "Potentially expensive call inside Update()."},
		{File: "Assets/Player.cs", Line: 12, Severity: m.SeverityInfo, Rule: "update-debuglog", Detail: "Debug logging inside Update() can be noisy."},
		{File: "Assets/Ball.cs", Line: 7, Severity: m.SeverityOK, Rule: "fixedupdate-physics", Detail: "Physics calls in FixedUpdate (generally correct)."},
	}
}

func TestSimpleUI_DisplayScanSummary(t *testing.T) {
	ui, out := newBufferedSimpleUI()

	err := ui.DisplayScanSummary(context.Background(), testFindings(), "report.csv")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Wrote 3 findings to report.csv")
	assert.Contains(t, out.String(), "Assets/Player.cs")
}

func TestSimpleUI_DisplayScanSummary_NoFindings(t *testing.T) {
	ui, out := newBufferedSimpleUI()

	err := ui.DisplayScanSummary(context.Background(), nil, "report.csv")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Wrote 0 findings to report.csv")
}

func TestSimpleUI_DisplayFileCounts(t *testing.T) {
	ui, out := newBufferedSimpleUI()

	err := ui.DisplayFileCounts(context.Background(), CountBySeverity(testFindings()))
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Assets/Player.cs")
	assert.Contains(t, output, "Assets/Ball.cs")
	assert.Contains(t, output, "TOTAL FILES 2")
}

func TestSimpleUI_DisplayReport(t *testing.T) {
	ui, out := newBufferedSimpleUI()

	err := ui.DisplayReport(context.Background(), testFindings())
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "update-expensive-call")
	assert.Contains(t, output, "fixedupdate-physics")
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ui, out := newBufferedSimpleUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, ui.DisplayScanSummary(ctx, testFindings(), "report.csv"))
	assert.Empty(t, out.String())
}

func TestCountBySeverity(t *testing.T) {
	counts := CountBySeverity(testFindings())

	require.Len(t, counts, 2)

	assert.Equal(t, m.Path("Assets/Player.cs"), counts[0].File)
	assert.Equal(t, 1, counts[0].Warn)
	assert.Equal(t, 1, counts[0].Info)
	assert.Equal(t, 0, counts[0].OK)
	assert.Equal(t, 2, counts[0].Total)

	assert.Equal(t, m.Path("Assets/Ball.cs"), counts[1].File)
	assert.Equal(t, 1, counts[1].OK)
	assert.Equal(t, 1, counts[1].Total)
}

func TestCountBySeverity_Empty(t *testing.T) {
	assert.Empty(t, CountBySeverity(nil))
}
