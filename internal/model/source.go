// Package model defines the data structures for the static scanner.
package model

// Path represents a file system path.
type Path string

// SourceUnit is one source file's raw text plus its logical identifier.
// The locator and the rule engine borrow it read-only for the duration
// of a single scan.
type SourceUnit struct {
	Path Path
	Text string
}
