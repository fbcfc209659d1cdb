package service

import (
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

// Banner messages shown by the presentation layer.
const (
	MsgTitleRequired     = "Title is required"
	MsgBlankTag          = "Tags must not be blank"
	MsgNoteNotFound      = "Note not found"
	MsgNetworkError      = "Network unavailable or server unreachable"
	MsgNotConfigured     = "Notes backend is not configured"
	MsgSessionExpired    = "Session expired, please sign in again"
	MsgNotAllowed        = "You are not allowed to change this note"
	MsgFailedToLoad      = "Failed to load notes"
	MsgFailedToCreate    = "Failed to create note"
	MsgFailedToSave      = "Failed to save note"
	MsgFailedToDelete    = "Failed to delete note"
	MsgFailedToArchive   = "Failed to archive note"
	MsgFailedToFetchNote = "Failed to fetch note"
)

// humanize turns err into a banner message, using fallback for failures
// that have no better description.
func humanize(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, validators.ErrTitleRequired):
		return MsgTitleRequired
	case errors.Is(err, validators.ErrBlankTag):
		return MsgBlankTag
	case errors.Is(err, adapter.ErrNotConfigured):
		return MsgNotConfigured
	case errors.Is(err, adapter.ErrUnavailable), errors.Is(err, store.ErrDatabaseUnavailable):
		return MsgNetworkError
	case errors.Is(err, ErrNotFound):
		return MsgNoteNotFound
	case errors.Is(err, adapter.ErrUnauthorized):
		return MsgSessionExpired
	case errors.Is(err, adapter.ErrForbidden):
		return MsgNotAllowed
	}
	return fallback
}
