package rules

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/VoidbreakDev/AFL-Coach-Sim/internal/model"
)

var (
	expensiveCallRE = regexp.MustCompile(`\b(GetComponent|FindObjectOfType|FindObjectsOfType|GameObject\.Find|Resources\.Load|Instantiate|Destroy)\b`)
	linqCallRE      = regexp.MustCompile(`\b(Select|Where|OrderBy|OrderByDescending|ToList|GroupBy|Distinct|Join)\s*\(`)
	debugLogRE      = regexp.MustCompile(`\bDebug\.(Log|LogWarning|LogError)\s*\(`)
	physicsCallRE   = regexp.MustCompile(`\b(AddForce|MovePosition|MoveRotation|velocity)\b`)
)

// BodyRules returns the body-scope rule table in evaluation order.
func BodyRules() []BodyRule {
	return []BodyRule{
		{
			ID:       methodRuleID("expensive-call"),
			Severity: m.SeverityWarn,
			Detail:   methodDetail("Potentially expensive call inside %s()."),
			Trigger:  expensiveCallRE,
		},
		{
			ID:       methodRuleID("linq-allocation"),
			Severity: m.SeverityInfo,
			Detail:   methodDetail("LINQ usage inside %s() can allocate per-frame."),
			Trigger:  linqCallRE,
		},
		{
			ID:       methodRuleID("debuglog"),
			Severity: m.SeverityInfo,
			Detail:   methodDetail("Debug logging inside %s() can be noisy."),
			Trigger:  debugLogRE,
		},
		{
			ID:       fixedRuleID("fixedupdate-physics"),
			Severity: m.SeverityOK,
			Detail:   fixedDetail("Physics calls in FixedUpdate (generally correct)."),
			Trigger:  physicsCallRE,
			Methods:  []m.MethodName{m.FixedUpdate},
		},
	}
}

// methodRuleID parameterizes a rule id by the lowercased callback name,
// e.g. "update-expensive-call".
func methodRuleID(suffix string) func(m.MethodName) string {
	return func(method m.MethodName) string {
		return strings.ToLower(string(method)) + "-" + suffix
	}
}

func methodDetail(format string) func(m.MethodName) string {
	return func(method m.MethodName) string {
		return fmt.Sprintf(format, method)
	}
}

func fixedRuleID(id string) func(m.MethodName) string {
	return func(m.MethodName) string { return id }
}

func fixedDetail(detail string) func(m.MethodName) string {
	return func(m.MethodName) string { return detail }
}
