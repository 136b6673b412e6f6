package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/VoidbreakDev/AFL-Coach-Sim/internal/model"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	summaryStyle = lipgloss.NewStyle().Bold(true)

	severityStyles = map[m.Severity]lipgloss.Style{
		m.SeverityOK:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		m.SeverityInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		m.SeverityWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		m.SeverityError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayScanInfo prints the scan parameters before work starts.
func (p *TUI) DisplayScanInfo(ctx context.Context, files, threads int) {
	if err := ctx.Err(); err != nil {
		return
	}

	fmt.Fprintf(p.output, "Scanning %d file(s) with %d worker(s)\n", files, threads)
}

// DisplayScanSummary prints severity totals and the report path.
func (p *TUI) DisplayScanSummary(ctx context.Context, findings []m.Finding, out m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	warn, info, ok := severityTotals(findings)
	line := fmt.Sprintf("%s warn  %s info  %s ok",
		severityStyles[m.SeverityWarn].Render(strconv.Itoa(warn)),
		severityStyles[m.SeverityInfo].Render(strconv.Itoa(info)),
		severityStyles[m.SeverityOK].Render(strconv.Itoa(ok)),
	)

	fmt.Fprintf(p.output, "\n%s\n", line)
	fmt.Fprintln(p.output, summaryStyle.Render(fmt.Sprintf("Wrote %d findings to %s", len(findings), out)))

	return nil
}

// DisplayFileCounts shows per-file counts in a scrollable table.
func (p *TUI) DisplayFileCounts(ctx context.Context, counts []FileCount) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	columns := []table.Column{
		{Title: "File", Width: 48},
		{Title: "Warn", Width: 6},
		{Title: "Info", Width: 6},
		{Title: "OK", Width: 6},
	}

	rows := make([]table.Row, 0, len(counts))
	for _, count := range counts {
		rows = append(rows, table.Row{
			string(count.File),
			strconv.Itoa(count.Warn),
			strconv.Itoa(count.Info),
			strconv.Itoa(count.OK),
		})
	}

	return p.runTable(columns, rows)
}

// DisplayReport shows every finding in a scrollable table.
func (p *TUI) DisplayReport(ctx context.Context, findings []m.Finding) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	columns := []table.Column{
		{Title: "File", Width: 32},
		{Title: "Line", Width: 6},
		{Title: "Severity", Width: 8},
		{Title: "Rule", Width: 28},
		{Title: "Detail", Width: 48},
	}

	rows := make([]table.Row, 0, len(findings))
	for _, finding := range findings {
		rows = append(rows, table.Row{
			string(finding.File),
			strconv.Itoa(finding.Line),
			string(finding.Severity),
			finding.Rule,
			finding.Detail,
		})
	}

	return p.runTable(columns, rows)
}

// runTable renders the table inline when it fits the terminal and
// switches to an interactive alt-screen pager when it does not.
func (p *TUI) runTable(columns []table.Column, rows []table.Row) error {
	model := newReportModel(columns, rows)

	height := 0
	if f, ok := p.output.(*os.File); ok {
		if _, h, err := term.GetSize(int(f.Fd())); err == nil {
			height = h
		}
	}

	if height == 0 || !model.needsPagination(height) {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	model.resize(height)

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// reportModel is the Bubble Tea model wrapping a findings table.
type reportModel struct {
	table table.Model
	rows  int
}

func newReportModel(columns []table.Column, rows []table.Row) reportModel {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)

	return reportModel{table: t, rows: len(rows)}
}

// tableChrome is the number of screen lines used around the table body
// (header, border, help line).
const tableChrome = 4

func (rm reportModel) needsPagination(height int) bool {
	return rm.rows+tableChrome > height
}

func (rm *reportModel) resize(height int) {
	bodyHeight := height - tableChrome
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	rm.table.SetHeight(bodyHeight)
}

// Init implements tea.Model.
func (rm reportModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.resize(msg.Height)
		return rm, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return rm, tea.Quit
		}
	}

	var cmd tea.Cmd
	rm.table, cmd = rm.table.Update(msg)

	return rm, cmd
}

// View implements tea.Model.
func (rm reportModel) View() string {
	return baseStyle.Render(rm.table.View()) + "\n"
}

func severityTotals(findings []m.Finding) (warn, info, ok int) {
	for _, finding := range findings {
		switch finding.Severity {
		case m.SeverityWarn, m.SeverityError:
			warn++
		case m.SeverityInfo:
			info++
		case m.SeverityOK:
			ok++
		}
	}

	return
}
