// Package models defines the data objects shared across lazysvn packages.
package models

// Status codes reported by svn status, first column.
const (
	StateModified   = "M"
	StateAdded      = "A"
	StateDeleted    = "D"
	StateConflicted = "C"
	StateUntracked  = "?"
	StateMissing    = "!"
	StateIgnored    = "I"
	StateReplaced   = "R"
	StateExternal   = "X"
	StateObstructed = "~"
)

// StatusEntry represents one file reported by svn status.
// Entries are immutable once constructed and ordered by Path.
type StatusEntry struct {
	Path  string
	State string // single-character status code (see State* constants)
}

// WorkingCopyInfo summarizes svn info output for the header pane.
type WorkingCopyInfo struct {
	Path     string // local working copy root
	URL      string // repository URL, empty when svn info failed
	Revision string // checked-out revision, empty when svn info failed
}
