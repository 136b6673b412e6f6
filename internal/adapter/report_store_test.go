package adapter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/VoidbreakDev/AFL-Coach-Sim/internal/model"
)

func sampleFindings() []m.Finding {
	return []m.Finding{
		{
			File:     "Assets/Scripts/Player.cs",
			Line:     42,
			Severity: m.SeverityWarn,
			Rule:     "update-expensive-call",
			Detail:   "Potentially expensive call inside Update().",
		},
		{
			File:     "Assets/Scripts/Spawner.cs",
			Line:     1,
			Severity: m.SeverityInfo,
			Rule:     "coroutine-stop-missing",
			Detail:   "StartCoroutine used without a stop path.",
		},
		{
			File:     "Assets/Scripts/Ball.cs",
			Line:     7,
			Severity: m.SeverityOK,
			Rule:     "fixedupdate-physics",
			Detail:   "Physics calls in FixedUpdate (generally correct).",
		},
	}
}

func TestNewReportStore(t *testing.T) {
	csvStore, err := NewReportStore(FormatCSV)
	require.NoError(t, err)
	assert.IsType(t, &CSVReportStore{}, csvStore)

	sarifStore, err := NewReportStore(FormatSARIF)
	require.NoError(t, err)
	assert.IsType(t, &SARIFReportStore{}, sarifStore)

	_, err = NewReportStore("xml")
	require.Error(t, err)
}

func TestCSVReportStore_RoundTrip(t *testing.T) {
	store := NewCSVReportStore()
	path := m.Path(filepath.Join(t.TempDir(), "report.csv"))
	findings := sampleFindings()

	require.NoError(t, store.SaveFindings(path, findings))

	loaded, err := store.LoadFindings(path)
	require.NoError(t, err)
	assert.Equal(t, findings, loaded)
}

func TestCSVReportStore_HeaderRow(t *testing.T) {
	store := NewCSVReportStore()
	path := m.Path(filepath.Join(t.TempDir(), "report.csv"))

	require.NoError(t, store.SaveFindings(path, nil))

	content, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, "file,line,severity,rule,detail\n", string(content))
}

func TestCSVReportStore_LoadMissingFile(t *testing.T) {
	store := NewCSVReportStore()

	_, err := store.LoadFindings(m.Path(filepath.Join(t.TempDir(), "missing.csv")))
	require.Error(t, err)
}

func TestSARIFReportStore_SaveFindings(t *testing.T) {
	store := NewSARIFReportStore()
	path := m.Path(filepath.Join(t.TempDir(), "report.sarif"))

	require.NoError(t, store.SaveFindings(path, sampleFindings()))

	content, err := os.ReadFile(string(path))
	require.NoError(t, err)

	var report struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID string `json:"ruleId"`
				Level  string `json:"level"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(content, &report))

	assert.Equal(t, "2.1.0", report.Version)
	require.Len(t, report.Runs, 1)

	run := report.Runs[0]
	assert.Equal(t, "staticscan", run.Tool.Driver.Name)
	assert.Len(t, run.Tool.Driver.Rules, 3)

	require.Len(t, run.Results, 3)
	assert.Equal(t, "update-expensive-call", run.Results[0].RuleID)
	assert.Equal(t, "warning", run.Results[0].Level)
	assert.Equal(t, "note", run.Results[1].Level)
	assert.Equal(t, "note", run.Results[2].Level)
}

func TestSARIFLevelMapping(t *testing.T) {
	assert.Equal(t, "warning", sarifLevel(m.SeverityWarn))
	assert.Equal(t, "error", sarifLevel(m.SeverityError))
	assert.Equal(t, "note", sarifLevel(m.SeverityInfo))
	assert.Equal(t, "note", sarifLevel(m.SeverityOK))
}
