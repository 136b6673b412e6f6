package model

// Severity classifies a finding.
type Severity string

const (
	// SeverityOK marks an informational positive confirmation, not a defect.
	SeverityOK Severity = "ok"
	// SeverityInfo marks a pattern worth reviewing.
	SeverityInfo Severity = "info"
	// SeverityWarn marks a likely performance or correctness pitfall.
	SeverityWarn Severity = "warn"
	// SeverityError marks a defect; reserved for future rules.
	SeverityError Severity = "error"
)

// Finding is one structured report row. Line is 1 for file-level
// findings that have no single triggering location.
type Finding struct {
	File     Path
	Line     int
	Severity Severity
	Rule     string
	Detail   string
}
