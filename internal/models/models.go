// Package models defines the domain types for Quill.
package models

import "strings"

// AuthorID identifies an author entity: its file name without extension.
type AuthorID string

// AuthorIDFromFile derives an AuthorID from a file name, reporting false when
// the name does not carry ext.
func AuthorIDFromFile(name, ext string) (AuthorID, bool) {
	if !strings.HasSuffix(name, ext) {
		return "", false
	}
	return AuthorID(strings.TrimSuffix(name, ext)), true
}

// FileName returns the storage name of the author entity.
func (id AuthorID) FileName(ext string) string {
	return string(id) + ext
}

func (id AuthorID) String() string { return string(id) }

// ReferenceSet lists article file names that reference an author, in
// directory enumeration order.
type ReferenceSet []string

// Empty reports whether no article references the author.
func (r ReferenceSet) Empty() bool { return len(r) == 0 }

// Outcome is the terminal state of a delete invocation.
type Outcome string

const (
	OutcomeDeleted         Outcome = "deleted"
	OutcomeNothingToDelete Outcome = "nothing_to_delete"
	OutcomeNoSelection     Outcome = "no_selection"
	OutcomeNotFound        Outcome = "not_found"
	OutcomeCancelled       Outcome = "cancelled"
	OutcomeFailed          Outcome = "failed"
)

// Failed reports whether the outcome stems from a fault rather than a
// user-facing condition.
func (o Outcome) Failed() bool { return o == OutcomeFailed }
