// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"strings"
	"time"
)

// DefaultNoteTitle is used for notes created from the UI without a title
// and shown in lists for notes whose title is blank.
const DefaultNoteTitle = "Untitled"

// Note is a single user note as stored in the remote notes table.
//
// JSON field names match the table columns so the same struct is used for
// PostgREST payloads and for export.
type Note struct {
	// ID is the server-assigned identifier (uuid).
	ID string `json:"id,omitempty"`

	// UserID is the owning user. Nil in single-user mode.
	UserID *string `json:"user_id"`

	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`

	IsArchived bool `json:"is_archived"`
	IsDeleted  bool `json:"is_deleted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the default remote table name.
func (n Note) TableName() string {
	return "notes"
}

// DisplayTitle returns the title, or [DefaultNoteTitle] when it is blank.
func (n Note) DisplayTitle() string {
	if strings.TrimSpace(n.Title) == "" {
		return DefaultNoteTitle
	}
	return n.Title
}

// LastTouched returns UpdatedAt, falling back to CreatedAt.
func (n Note) LastTouched() time.Time {
	if n.UpdatedAt.IsZero() {
		return n.CreatedAt
	}
	return n.UpdatedAt
}

// Clone returns a deep copy of the note.
func (n Note) Clone() Note {
	c := n
	c.Tags = slices.Clone(n.Tags)
	if n.UserID != nil {
		owner := *n.UserID
		c.UserID = &owner
	}
	return c
}

// NoteDraft holds the fields of a note that does not exist remotely yet.
type NoteDraft struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	IsArchived bool     `json:"is_archived"`
}

// NotePatch is a partial update. Nil fields are left unchanged.
type NotePatch struct {
	Title      *string   `json:"title,omitempty"`
	Content    *string   `json:"content,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	IsArchived *bool     `json:"is_archived,omitempty"`
	IsDeleted  *bool     `json:"is_deleted,omitempty"`

	// UpdatedAt is filled in by gateways right before sending.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Apply returns a copy of n with the non-nil patch fields applied.
func (p NotePatch) Apply(n Note) Note {
	out := n.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Content != nil {
		out.Content = *p.Content
	}
	if p.Tags != nil {
		out.Tags = slices.Clone(*p.Tags)
	}
	if p.IsArchived != nil {
		out.IsArchived = *p.IsArchived
	}
	if p.IsDeleted != nil {
		out.IsDeleted = *p.IsDeleted
	}
	if p.UpdatedAt != nil {
		out.UpdatedAt = *p.UpdatedAt
	}
	return out
}

// Empty reports whether the patch changes nothing.
func (p NotePatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Tags == nil &&
		p.IsArchived == nil && p.IsDeleted == nil
}

// ListOptions scopes a notes listing.
type ListOptions struct {
	// Owner restricts results to notes of this user when non-nil.
	Owner *string

	IncludeArchived bool
	IncludeDeleted  bool
}

// FormatTags renders tags for an editor input.
func FormatTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// ParseTags splits comma separated input, trimming entries and dropping
// empty ones.
func ParseTags(s string) []string {
	return NormalizeTags(strings.Split(s, ","))
}

// NormalizeTags trims every tag and drops the blank ones. The result is
// never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := strings.TrimSpace(tag); t != "" {
			out = append(out, t)
		}
	}
	return out
}
