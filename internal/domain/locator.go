// Package domain contains the core scanning workflow and logic.
package domain

import (
	"regexp"
	"strings"

	m "github.com/VoidbreakDev/AFL-Coach-Sim/internal/model"
)

// methodStartRE matches a per-frame callback declaration up to its
// opening parenthesis. Parameter lists are not validated and overloads
// are not disambiguated.
var methodStartRE = regexp.MustCompile(`\b(?:public|private|protected|internal)?\s*(?:async\s+)?(?:override\s+)?(?:static\s+)?void\s+(Update|FixedUpdate|LateUpdate)\s*\(`)

// MethodBodyLocator finds the brace-delimited bodies of the known
// per-frame callbacks in raw source text.
type MethodBodyLocator interface {
	Locate(text string) map[m.MethodName][]m.MethodRange
}

type methodBodyLocator struct{}

// NewMethodBodyLocator creates a MethodBodyLocator.
func NewMethodBodyLocator() MethodBodyLocator {
	return &methodBodyLocator{}
}

// Locate scans text for callback declarations and returns the 1-based
// inclusive line span of each brace-delimited body, keyed by callback
// name in declaration order. Declarations without a body, or whose body
// never closes before end of input, are skipped silently. Locate never
// fails: empty text, malformed nesting and pathological input all yield
// empty or partial results.
//
// The brace walk is a naive depth counter. Braces inside string or
// character literals and comments are counted too and can corrupt a
// match; this mirrors the historical scanner and is kept so results
// stay comparable across runs.
func (l *methodBodyLocator) Locate(text string) map[m.MethodName][]m.MethodRange {
	ranges := make(map[m.MethodName][]m.MethodRange)

	for _, match := range methodStartRE.FindAllStringSubmatchIndex(text, -1) {
		name := m.MethodName(text[match[2]:match[3]])

		span, ok := matchBody(text, match[1])
		if !ok {
			continue
		}

		ranges[name] = append(ranges[name], m.MethodRange{
			Method:    name,
			StartLine: lineAt(text, span.open),
			EndLine:   lineAt(text, span.close),
		})
	}

	return ranges
}

// bodySpan holds the absolute byte offsets of a body's braces.
type bodySpan struct {
	open  int
	close int
}

// matchBody walks forward from the signature end to the first opening
// brace and follows brace depth until it returns to zero.
func matchBody(text string, from int) (bodySpan, bool) {
	open := strings.IndexByte(text[from:], '{')
	if open < 0 {
		return bodySpan{}, false
	}

	open += from
	depth := 0

	for i := open; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return bodySpan{open: open, close: i}, true
			}
		}
	}

	return bodySpan{}, false
}

// lineAt maps an absolute byte offset to a 1-based line number.
func lineAt(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}
