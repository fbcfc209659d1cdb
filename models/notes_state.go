// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotesState is a point-in-time copy of the notes client state, handed to
// the presentation layer.
type NotesState struct {
	// Notes are ordered newest-updated first.
	Notes   []LocalNote
	Loading bool
	// Err is the human-readable message of the last failed operation.
	Err string
	// Selected is nil or references an entry of Notes.
	Selected *NoteRef
}

// SelectedNote returns the selected entry, if any.
func (s NotesState) SelectedNote() (LocalNote, bool) {
	if s.Selected == nil {
		return LocalNote{}, false
	}
	for _, n := range s.Notes {
		if n.Ref == *s.Selected {
			return n, true
		}
	}
	return LocalNote{}, false
}

// IndexOf returns the position of ref in Notes or -1.
func (s NotesState) IndexOf(ref NoteRef) int {
	for i, n := range s.Notes {
		if n.Ref == ref {
			return i
		}
	}
	return -1
}
