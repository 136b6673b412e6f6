package domain

import (
	"strings"

	"github.com/VoidbreakDev/AFL-Coach-Sim/internal/domain/rules"
	m "github.com/VoidbreakDev/AFL-Coach-Sim/internal/model"
)

// RuleEngine applies the rule tables to one source unit and the
// callback body ranges extracted from it.
type RuleEngine interface {
	Evaluate(unit m.SourceUnit, ranges map[m.MethodName][]m.MethodRange) []m.Finding
}

type ruleEngine struct {
	fileRules []rules.FileRule
	bodyRules []rules.BodyRule
}

// NewRuleEngine creates a RuleEngine backed by the built-in rule tables.
func NewRuleEngine() RuleEngine {
	return &ruleEngine{
		fileRules: rules.FileRules(),
		bodyRules: rules.BodyRules(),
	}
}

// Evaluate runs file-scope rules in table order, then body-scope rules
// per callback group in canonical order (Update, FixedUpdate,
// LateUpdate), ranges in textual order. A body-scope rule fires at most
// once per range, at the range's start line. Identical input always
// yields an identical finding sequence.
func (e *ruleEngine) Evaluate(unit m.SourceUnit, ranges map[m.MethodName][]m.MethodRange) []m.Finding {
	findings := make([]m.Finding, 0)

	for _, rule := range e.fileRules {
		findings = append(findings, evaluateFileRule(rule, unit.Path, unit.Text)...)
	}

	lines := strings.Split(unit.Text, "\n")

	for _, method := range m.MethodNames() {
		for _, rng := range ranges[method] {
			body := bodyText(lines, rng)

			for _, rule := range e.bodyRules {
				if !rule.AppliesTo(method) {
					continue
				}

				if !rule.Trigger.MatchString(body) {
					continue
				}

				findings = append(findings, m.Finding{
					File:     unit.Path,
					Line:     rng.StartLine,
					Severity: rule.Severity,
					Rule:     rule.ID(method),
					Detail:   rule.Detail(method),
				})
			}
		}
	}

	return findings
}

func evaluateFileRule(rule rules.FileRule, file m.Path, text string) []m.Finding {
	switch rule.Kind {
	case rules.FirstOccurrence:
		loc := rule.Trigger.FindStringIndex(text)
		if loc == nil {
			return nil
		}

		return []m.Finding{fileFinding(rule, file, lineAt(text, loc[0]))}

	case rules.EveryOccurrence:
		var findings []m.Finding
		for _, loc := range rule.Trigger.FindAllStringIndex(text, -1) {
			findings = append(findings, fileFinding(rule, file, lineAt(text, loc[0])))
		}

		return findings

	case rules.Absence:
		if !rule.Trigger.MatchString(text) {
			return nil
		}

		for _, guard := range rule.Guards {
			if guard.MatchString(text) {
				return nil
			}
		}

		// Absence rules have no single triggering location; line 1 is
		// the file-level sentinel.
		return []m.Finding{fileFinding(rule, file, 1)}
	}

	return nil
}

func fileFinding(rule rules.FileRule, file m.Path, line int) m.Finding {
	return m.Finding{
		File:     file,
		Line:     line,
		Severity: rule.Severity,
		Rule:     rule.ID,
		Detail:   rule.Detail,
	}
}

// bodyText returns the text spanned by a body range, boundary-inclusive.
func bodyText(lines []string, rng m.MethodRange) string {
	start := rng.StartLine - 1
	end := rng.EndLine

	if start < 0 {
		start = 0
	}

	if end > len(lines) {
		end = len(lines)
	}

	if start >= end {
		return ""
	}

	return strings.Join(lines[start:end], "\n")
}
