// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type idGenerator interface {
	Generate() string
}

// notesSnapshot is the part of the state an operation restores on failure.
type notesSnapshot struct {
	notes    []models.LocalNote
	selected *models.NoteRef
	owner    *string
}

type notesSyncService struct {
	gateway   adapter.NotesGateway
	ids       idGenerator
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger

	mu       sync.Mutex
	notes    []models.LocalNote
	loading  bool
	errMsg   string
	selected *models.NoteRef
	owner    *string

	subsMu  sync.Mutex
	subs    map[int]func(models.NotesState)
	nextSub int
}

// NewClientNotesService returns a ClientNotesService backed by gateway. The
// collection starts empty; call Refresh to load it.
func NewClientNotesService(gateway adapter.NotesGateway, log *logger.Logger) ClientNotesService {
	return &notesSyncService{
		gateway:   gateway,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewNoteValidator(),
		now:       time.Now,
		logger:    log,
		subs:      make(map[int]func(models.NotesState)),
	}
}

func (s *notesSyncService) Snapshot() models.NotesState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *notesSyncService) stateLocked() models.NotesState {
	state := models.NotesState{
		Notes:   cloneNotes(s.notes),
		Loading: s.loading,
		Err:     s.errMsg,
	}
	if s.selected != nil {
		ref := *s.selected
		state.Selected = &ref
	}
	return state
}

func (s *notesSyncService) Subscribe(fn func(models.NotesState)) func() {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			s.subsMu.Unlock()
		})
	}
}

// publish hands a snapshot to every subscriber. Must be called without mu
// held.
func (s *notesSyncService) publish() {
	state := s.Snapshot()

	s.subsMu.Lock()
	fns := make([]func(models.NotesState), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

// update runs fn under the state lock and publishes afterwards.
func (s *notesSyncService) update(fn func()) {
	s.mu.Lock()
	fn()
	s.mu.Unlock()
	s.publish()
}

func (s *notesSyncService) Refresh(ctx context.Context) bool {
	var owner *string
	s.update(func() {
		s.loading = true
		s.errMsg = ""
		owner = s.owner
	})
	defer s.update(func() { s.loading = false })

	notes, err := s.gateway.List(ctx, models.ListOptions{Owner: owner})
	if err != nil {
		err = mapGatewayError(err)
		s.logger.Err(err).Str("func", "notesSyncService.Refresh").Msg("error listing notes")
		s.update(func() {
			if sameOwner(s.owner, owner) {
				s.errMsg = humanize(err, MsgFailedToLoad)
			}
		})
		return false
	}

	stale := false
	s.update(func() {
		// the session changed while the list was in flight
		if !sameOwner(s.owner, owner) {
			stale = true
			return
		}
		s.notes = confirmedNotes(notes)
		if s.selected != nil && s.indexLocked(*s.selected) < 0 {
			s.selected = nil
		}
		if s.selected == nil {
			s.selectFirstLocked()
		}
	})
	if stale {
		s.logger.Debug().Str("func", "notesSyncService.Refresh").Msg("owner changed, list result dropped")
		return false
	}
	return true
}

func (s *notesSyncService) AddNote(ctx context.Context, draft models.NoteDraft) (models.Note, bool) {
	draft.Tags = models.NormalizeTags(draft.Tags)
	if err := s.validator.Validate(ctx, draft); err != nil {
		err = fmt.Errorf("%w: %w", ErrValidation, err)
		s.update(func() { s.errMsg = humanize(err, MsgFailedToCreate) })
		return models.Note{}, false
	}

	now := s.now().UTC()
	pendingRef := models.Pending(s.ids.Generate())

	var owner *string
	s.update(func() {
		owner = s.owner
		pending := models.LocalNote{
			Ref: pendingRef,
			Note: models.Note{
				UserID:     cloneOwner(owner),
				Title:      draft.Title,
				Content:    draft.Content,
				Tags:       slices.Clone(draft.Tags),
				IsArchived: draft.IsArchived,
				CreatedAt:  now,
				UpdatedAt:  now,
			},
		}
		s.notes = slices.Insert(s.notes, 0, pending)
		s.selected = &pendingRef
	})

	created, err := s.gateway.Create(ctx, draft, owner)
	if err != nil {
		err = mapGatewayError(err)
		s.logger.Err(err).Str("func", "notesSyncService.AddNote").Msg("error creating note")
		s.update(func() {
			s.removeLocked(pendingRef)
			if s.selected != nil && *s.selected == pendingRef {
				s.selected = nil
				s.selectFirstLocked()
			}
			s.errMsg = humanize(err, MsgFailedToCreate)
		})
		return models.Note{}, false
	}

	confirmedRef := models.Confirmed(created.ID)
	stale := false
	s.update(func() {
		if !sameOwner(s.owner, owner) {
			stale = true
			return
		}
		s.removeLocked(pendingRef)
		// A refresh may have loaded the new note already.
		s.removeLocked(confirmedRef)
		s.notes = slices.Insert(s.notes, 0, models.LocalNote{Ref: confirmedRef, Note: created.Clone()})
		s.selected = &confirmedRef
		s.errMsg = ""
	})
	if stale {
		s.logger.Debug().Str("func", "notesSyncService.AddNote").Str("note_id", created.ID).
			Msg("owner changed, created note not shown")
		return models.Note{}, false
	}

	return created, true
}

func (s *notesSyncService) SaveNote(ctx context.Context, id string, patch models.NotePatch) (models.Note, bool) {
	ref := models.Confirmed(id)
	if patch.Tags != nil {
		tags := models.NormalizeTags(*patch.Tags)
		patch.Tags = &tags
	}

	var (
		snap notesSnapshot
		ok   bool
	)
	s.update(func() {
		idx := s.indexLocked(ref)
		if idx < 0 {
			s.errMsg = humanize(errUnknownNote, MsgFailedToSave)
			return
		}

		merged := patch.Apply(s.notes[idx].Note)
		if err := s.validator.Validate(ctx, merged, validators.FieldTitle, validators.FieldTags); err != nil {
			s.errMsg = humanize(fmt.Errorf("%w: %w", ErrValidation, err), MsgFailedToSave)
			return
		}

		snap = s.snapshotLocked()
		local := patch
		now := s.now().UTC()
		local.UpdatedAt = &now
		s.notes[idx].Note = local.Apply(s.notes[idx].Note)
		ok = true
	})
	if !ok {
		return models.Note{}, false
	}

	updated, err := s.gateway.Update(ctx, id, patch)
	if err != nil {
		err = mapGatewayError(err)
		s.logger.Err(err).Str("func", "notesSyncService.SaveNote").Str("note_id", id).Msg("error updating note")
		s.update(func() {
			s.restoreLocked(snap)
			s.errMsg = humanize(err, MsgFailedToSave)
		})
		return models.Note{}, false
	}

	s.update(func() {
		if idx := s.indexLocked(ref); idx >= 0 {
			s.notes[idx].Note = updated.Clone()
		}
		if updated.IsArchived || updated.IsDeleted {
			s.pruneHiddenLocked()
		}
		s.errMsg = ""
	})

	return updated, true
}

func (s *notesSyncService) RemoveNote(ctx context.Context, id string) bool {
	ref := models.Confirmed(id)

	var (
		snap notesSnapshot
		ok   bool
	)
	s.update(func() {
		if s.indexLocked(ref) < 0 {
			s.errMsg = humanize(errUnknownNote, MsgFailedToDelete)
			return
		}

		snap = s.snapshotLocked()
		s.removeLocked(ref)
		if s.selected != nil && *s.selected == ref {
			s.selected = nil
			s.selectFirstLocked()
		}
		ok = true
	})
	if !ok {
		return false
	}

	if err := s.gateway.SoftDelete(ctx, id); err != nil {
		err = mapGatewayError(err)
		s.logger.Err(err).Str("func", "notesSyncService.RemoveNote").Str("note_id", id).Msg("error deleting note")
		s.update(func() {
			s.restoreLocked(snap)
			s.errMsg = humanize(err, MsgFailedToDelete)
		})
		return false
	}

	s.update(func() { s.errMsg = "" })
	return true
}

func (s *notesSyncService) SetArchived(ctx context.Context, id string, archived bool) bool {
	ref := models.Confirmed(id)

	var (
		snap notesSnapshot
		ok   bool
	)
	s.update(func() {
		idx := s.indexLocked(ref)
		if idx < 0 {
			s.errMsg = humanize(errUnknownNote, MsgFailedToArchive)
			return
		}

		snap = s.snapshotLocked()
		s.notes[idx].Note.IsArchived = archived
		s.notes[idx].Note.UpdatedAt = s.now().UTC()
		ok = true
	})
	if !ok {
		return false
	}

	if err := s.gateway.SetArchived(ctx, id, archived); err != nil {
		err = mapGatewayError(err)
		s.logger.Err(err).Str("func", "notesSyncService.SetArchived").Str("note_id", id).Msg("error archiving note")
		s.update(func() {
			s.restoreLocked(snap)
			s.errMsg = humanize(err, MsgFailedToArchive)
		})
		return false
	}

	s.update(func() {
		if s.selected != nil && *s.selected == ref {
			s.selected = nil
		}
		s.pruneHiddenLocked()
		s.errMsg = ""
	})
	return true
}

func (s *notesSyncService) GetNote(ctx context.Context, id string) (models.Note, error) {
	s.mu.Lock()
	owner := cloneOwner(s.owner)
	s.mu.Unlock()

	note, err := s.gateway.Get(ctx, id, models.ListOptions{Owner: owner, IncludeArchived: true})
	if err != nil {
		return models.Note{}, mapGatewayError(err)
	}
	return note, nil
}

func (s *notesSyncService) Select(ref models.NoteRef) {
	s.mu.Lock()
	if s.indexLocked(ref) < 0 {
		s.mu.Unlock()
		return
	}
	s.selected = &ref
	s.mu.Unlock()
	s.publish()
}

func (s *notesSyncService) SelectNext() { s.moveSelection(1) }
func (s *notesSyncService) SelectPrev() { s.moveSelection(-1) }

func (s *notesSyncService) moveSelection(step int) {
	s.update(func() {
		if len(s.notes) == 0 {
			return
		}
		idx := -1
		if s.selected != nil {
			idx = s.indexLocked(*s.selected)
		}
		if idx < 0 {
			s.selectFirstLocked()
			return
		}
		next := min(max(idx+step, 0), len(s.notes)-1)
		ref := s.notes[next].Ref
		s.selected = &ref
	})
}

func (s *notesSyncService) DismissError() {
	s.update(func() { s.errMsg = "" })
}

func (s *notesSyncService) SetOwner(owner *string) bool {
	changed := false
	s.update(func() {
		if sameOwner(s.owner, owner) {
			return
		}
		s.owner = cloneOwner(owner)
		s.notes = nil
		s.selected = nil
		changed = true
	})
	return changed
}

func (s *notesSyncService) indexLocked(ref models.NoteRef) int {
	return slices.IndexFunc(s.notes, func(n models.LocalNote) bool { return n.Ref == ref })
}

func (s *notesSyncService) removeLocked(ref models.NoteRef) {
	s.notes = slices.DeleteFunc(s.notes, func(n models.LocalNote) bool { return n.Ref == ref })
}

func (s *notesSyncService) selectFirstLocked() {
	if len(s.notes) == 0 {
		s.selected = nil
		return
	}
	ref := s.notes[0].Ref
	s.selected = &ref
}

// pruneHiddenLocked drops archived and deleted notes and clears a selection
// that pointed at one of them.
func (s *notesSyncService) pruneHiddenLocked() {
	s.notes = slices.DeleteFunc(s.notes, func(n models.LocalNote) bool {
		return n.Note.IsArchived || n.Note.IsDeleted
	})
	if s.selected != nil && s.indexLocked(*s.selected) < 0 {
		s.selected = nil
	}
}

func (s *notesSyncService) snapshotLocked() notesSnapshot {
	snap := notesSnapshot{notes: cloneNotes(s.notes), owner: cloneOwner(s.owner)}
	if s.selected != nil {
		ref := *s.selected
		snap.selected = &ref
	}
	return snap
}

// restoreLocked puts snap back unless the owner changed since it was
// taken; the collection then belongs to someone else.
func (s *notesSyncService) restoreLocked(snap notesSnapshot) {
	if !sameOwner(s.owner, snap.owner) {
		return
	}
	s.notes = snap.notes
	s.selected = snap.selected
}

// confirmedNotes wraps gateway records and orders them newest-updated
// first, keeping the gateway order for ties.
func confirmedNotes(notes []models.Note) []models.LocalNote {
	out := make([]models.LocalNote, 0, len(notes))
	for _, n := range notes {
		out = append(out, models.LocalNote{Ref: models.Confirmed(n.ID), Note: n.Clone()})
	}
	slices.SortStableFunc(out, func(a, b models.LocalNote) int {
		return b.Note.LastTouched().Compare(a.Note.LastTouched())
	})
	return out
}

func cloneNotes(notes []models.LocalNote) []models.LocalNote {
	if notes == nil {
		return nil
	}
	out := make([]models.LocalNote, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}

func cloneOwner(owner *string) *string {
	if owner == nil {
		return nil
	}
	o := *owner
	return &o
}

func sameOwner(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
