// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// NoteRefKind tells pending notes apart from server-confirmed ones.
type NoteRefKind uint8

const (
	// RefPending marks a note that exists only locally while its create
	// request is in flight.
	RefPending NoteRefKind = iota + 1
	// RefConfirmed marks a note that carries a server-assigned id.
	RefConfirmed
)

// NoteRef identifies a note in the local collection. It is comparable and
// can be used as a map key; two refs are equal only if both kind and id
// match, so a local id can never be mistaken for a remote one.
type NoteRef struct {
	kind NoteRefKind
	id   string
}

// Pending returns a ref for a locally generated id.
func Pending(localID string) NoteRef {
	return NoteRef{kind: RefPending, id: localID}
}

// Confirmed returns a ref for a server-assigned id.
func Confirmed(remoteID string) NoteRef {
	return NoteRef{kind: RefConfirmed, id: remoteID}
}

// Kind reports whether the ref is pending or confirmed.
func (r NoteRef) Kind() NoteRefKind { return r.kind }

// ID returns the local id of a pending ref or the server id of a
// confirmed one.
func (r NoteRef) ID() string { return r.id }

// IsPending reports whether the note is still waiting for its create request.
func (r NoteRef) IsPending() bool { return r.kind == RefPending }

// IsZero reports whether r is the zero ref, which identifies no note.
func (r NoteRef) IsZero() bool { return r.kind == 0 }

// String renders the ref for logs, e.g. "pending:l1" or "note:42".
func (r NoteRef) String() string {
	switch r.kind {
	case RefPending:
		return fmt.Sprintf("pending:%s", r.id)
	case RefConfirmed:
		return fmt.Sprintf("note:%s", r.id)
	default:
		return "none"
	}
}

// LocalNote is a note held by the client together with its identity.
type LocalNote struct {
	Ref  NoteRef
	Note Note
}

// Clone returns a deep copy.
func (l LocalNote) Clone() LocalNote {
	return LocalNote{Ref: l.Ref, Note: l.Note.Clone()}
}
