package adapter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/owenrumney/go-sarif/v2/sarif"

	m "github.com/VoidbreakDev/AFL-Coach-Sim/internal/model"
)

// Report formats accepted by NewReportStore.
const (
	FormatCSV   = "csv"
	FormatSARIF = "sarif"
)

const toolName = "staticscan"
const toolInformationURI = "https://github.com/VoidbreakDev/AFL-Coach-Sim"

// csvHeader is the fixed report header; column order is part of the
// report contract.
var csvHeader = []string{"file", "line", "severity", "rule", "detail"}

// ReportStore persists the ordered finding sequence of one scan run.
type ReportStore interface {
	SaveFindings(path m.Path, findings []m.Finding) error
}

// NewReportStore returns the store for the requested report format.
func NewReportStore(format string) (ReportStore, error) {
	switch format {
	case FormatCSV:
		return NewCSVReportStore(), nil
	case FormatSARIF:
		return NewSARIFReportStore(), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %q", format)
	}
}

// CSVReportStore reads and writes findings as comma-separated rows with
// a fixed header.
type CSVReportStore struct{}

// NewCSVReportStore creates a CSVReportStore.
func NewCSVReportStore() *CSVReportStore {
	return &CSVReportStore{}
}

// SaveFindings writes the header row followed by one row per finding,
// preserving finding order.
func (s *CSVReportStore) SaveFindings(path m.Path, findings []m.Finding) error {
	f, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}

	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}

	for _, finding := range findings {
		row := []string{
			string(finding.File),
			strconv.Itoa(finding.Line),
			string(finding.Severity),
			finding.Rule,
			finding.Detail,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}

	w.Flush()

	return w.Error()
}

// LoadFindings reads a report previously written by SaveFindings.
// Malformed rows are skipped rather than failing the whole load.
func (s *CSVReportStore) LoadFindings(path m.Path) ([]m.Finding, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open report %s: %w", path, err)
	}

	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	findings := make([]m.Finding, 0, len(records))

	for i, record := range records {
		if i == 0 || len(record) < len(csvHeader) {
			continue
		}

		line, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}

		findings = append(findings, m.Finding{
			File:     m.Path(record[0]),
			Line:     line,
			Severity: m.Severity(record[2]),
			Rule:     record[3],
			Detail:   record[4],
		})
	}

	return findings, nil
}

// SARIFReportStore writes findings as a single-run SARIF 2.1.0 report.
type SARIFReportStore struct{}

// NewSARIFReportStore creates a SARIFReportStore.
func NewSARIFReportStore() *SARIFReportStore {
	return &SARIFReportStore{}
}

// SaveFindings emits one SARIF result per finding, registering each
// distinct rule id once on the driver.
func (s *SARIFReportStore) SaveFindings(path m.Path, findings []m.Finding) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("create sarif report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolInformationURI)
	seenRules := make(map[string]bool)

	for _, finding := range findings {
		if !seenRules[finding.Rule] {
			run.AddRule(finding.Rule).WithDescription(finding.Detail)
			seenRules[finding.Rule] = true
		}

		run.CreateResultForRule(finding.Rule).
			WithLevel(sarifLevel(finding.Severity)).
			WithMessage(sarif.NewTextMessage(finding.Detail)).
			AddLocation(
				sarif.NewLocationWithPhysicalLocation(
					sarif.NewPhysicalLocation().
						WithArtifactLocation(sarif.NewSimpleArtifactLocation(string(finding.File))).
						WithRegion(sarif.NewSimpleRegion(finding.Line, finding.Line)),
				),
			)
	}

	report.AddRun(run)

	if err := report.WriteFile(string(path)); err != nil {
		return fmt.Errorf("write sarif report %s: %w", path, err)
	}

	return nil
}

// sarifLevel maps report severities onto the SARIF level vocabulary.
// "ok" and "info" both land on note; SARIF has no positive-confirmation
// level.
func sarifLevel(severity m.Severity) string {
	switch severity {
	case m.SeverityWarn:
		return "warning"
	case m.SeverityError:
		return "error"
	default:
		return "note"
	}
}
