// Package rules defines the pattern rule tables applied by the engine.
package rules

import (
	"regexp"

	m "github.com/VoidbreakDev/AFL-Coach-Sim/internal/model"
)

// Kind distinguishes how a file-scope rule counts matches.
type Kind int

const (
	// FirstOccurrence reports the first match only, at its line.
	FirstOccurrence Kind = iota
	// EveryOccurrence reports each match at its line.
	EveryOccurrence
	// Absence reports once per file at the line-1 sentinel when the
	// trigger pattern is present and every guard pattern is absent.
	Absence
)

// FileRule is evaluated once against the whole file text.
type FileRule struct {
	ID       string
	Kind     Kind
	Severity m.Severity
	Detail   string
	Trigger  *regexp.Regexp
	// Guards apply to Absence rules only: any hit suppresses the finding.
	Guards []*regexp.Regexp
}

// BodyRule is evaluated once per extracted callback body. It fires at
// most once per body regardless of how many times the trigger matches
// inside it.
type BodyRule struct {
	// ID yields the rule identifier for the callback the body belongs to.
	ID       func(method m.MethodName) string
	Severity m.Severity
	Detail   func(method m.MethodName) string
	Trigger  *regexp.Regexp
	// Methods limits the rule to specific callbacks; empty means all.
	Methods []m.MethodName
}

// AppliesTo reports whether the rule runs against bodies of the given callback.
func (r BodyRule) AppliesTo(method m.MethodName) bool {
	if len(r.Methods) == 0 {
		return true
	}

	for _, name := range r.Methods {
		if name == method {
			return true
		}
	}

	return false
}
