// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var (
	t0 = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
	t2 = t0.Add(2 * time.Hour)

	errNetwork = fmt.Errorf("%w: list request: dial tcp: connection refused", adapter.ErrUnavailable)
)

type seqIDs struct{ n int }

func (g *seqIDs) Generate() string {
	g.n++
	return fmt.Sprintf("local-%d", g.n)
}

func newTestNotesSvc(t *testing.T) (*notesSyncService, *mock.MockNotesGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock.NewMockNotesGateway(ctrl)

	svc := NewClientNotesService(gw, logger.Nop()).(*notesSyncService)
	svc.ids = &seqIDs{}
	svc.now = func() time.Time { return t2.Add(time.Minute) }
	return svc, gw
}

func note(id, title string, updated time.Time) models.Note {
	return models.Note{ID: id, Title: title, Tags: []string{}, CreatedAt: updated, UpdatedAt: updated}
}

// seed loads notes through Refresh so the collection starts confirmed.
func seed(t *testing.T, svc *notesSyncService, gw *mock.MockNotesGateway, notes ...models.Note) {
	t.Helper()
	gw.EXPECT().List(gomock.Any(), models.ListOptions{}).Return(notes, nil)
	require.True(t, svc.Refresh(context.Background()))
}

func ids(state models.NotesState) []string {
	out := make([]string, 0, len(state.Notes))
	for _, n := range state.Notes {
		out = append(out, n.Ref.String())
	}
	return out
}

func ref(id string) *models.NoteRef {
	r := models.Confirmed(id)
	return &r
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestNotesSyncService_Refresh_SelectsFirst(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("2", "B", t1), note("1", "A", t0))

	state := svc.Snapshot()
	assert.Equal(t, []string{"note:2", "note:1"}, ids(state))
	assert.Equal(t, ref("2"), state.Selected)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Err)
}

func TestNotesSyncService_Refresh_Idempotent(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	notes := []models.Note{note("3", "C", t2), note("1", "A", t0), note("2", "B", t0)}

	gw.EXPECT().List(gomock.Any(), gomock.Any()).Return(notes, nil).Times(2)

	require.True(t, svc.Refresh(context.Background()))
	first := svc.Snapshot()
	require.True(t, svc.Refresh(context.Background()))
	second := svc.Snapshot()

	assert.Equal(t, first, second)
	// ties keep gateway order
	assert.Equal(t, []string{"note:3", "note:1", "note:2"}, ids(second))
}

func TestNotesSyncService_Refresh_OrdersByUpdatedAt(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("old", "A", t0), note("new", "B", t2), note("mid", "C", t1))

	assert.Equal(t, []string{"note:new", "note:mid", "note:old"}, ids(svc.Snapshot()))
}

func TestNotesSyncService_Refresh_FailureKeepsNotes(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("1", "A", t0))
	before := svc.Snapshot()

	gw.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errNetwork)

	assert.False(t, svc.Refresh(context.Background()))

	after := svc.Snapshot()
	assert.Equal(t, before.Notes, after.Notes)
	assert.Equal(t, before.Selected, after.Selected)
	assert.False(t, after.Loading)
	assert.Equal(t, MsgNetworkError, after.Err)
}

func TestNotesSyncService_Refresh_FallbackMessage(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	gw.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: boom", adapter.ErrInternalServerError))

	assert.False(t, svc.Refresh(context.Background()))
	assert.Equal(t, MsgFailedToLoad, svc.Snapshot().Err)
}

func TestNotesSyncService_Refresh_LoadingDuringCall(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	svc.update(func() { svc.errMsg = "old error" })

	gw.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.ListOptions) ([]models.Note, error) {
			state := svc.Snapshot()
			assert.True(t, state.Loading)
			assert.Empty(t, state.Err)
			return []models.Note{}, nil
		})

	require.True(t, svc.Refresh(context.Background()))
	assert.False(t, svc.Snapshot().Loading)
}

func TestNotesSyncService_Refresh_DropsVanishedSelection(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("2", "B", t1), note("1", "A", t0))
	svc.Select(models.Confirmed("1"))

	seed(t, svc, gw, note("3", "C", t2), note("2", "B", t1))

	assert.Equal(t, ref("3"), svc.Snapshot().Selected)
}

func TestNotesSyncService_Refresh_UsesOwnerScope(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	owner := "user-1"
	require.True(t, svc.SetOwner(&owner))

	gw.EXPECT().List(gomock.Any(), models.ListOptions{Owner: &owner}).Return([]models.Note{}, nil)

	require.True(t, svc.Refresh(context.Background()))
}

// ── AddNote ──────────────────────────────────────────────────────────────────

func TestNotesSyncService_AddNote_BlankTitle(t *testing.T) {
	for _, title := range []string{"", " ", "\t\n  "} {
		t.Run(fmt.Sprintf("%q", title), func(t *testing.T) {
			svc, gw := newTestNotesSvc(t)
			seed(t, svc, gw, note("1", "A", t0))
			before := svc.Snapshot()

			// no Create expectation: any gateway call fails the test
			_, ok := svc.AddNote(context.Background(), models.NoteDraft{Title: title, Content: "x"})

			assert.False(t, ok)
			after := svc.Snapshot()
			assert.Equal(t, before.Notes, after.Notes)
			assert.Equal(t, before.Selected, after.Selected)
			assert.Equal(t, MsgTitleRequired, after.Err)
		})
	}
}

func TestNotesSyncService_AddNote_Scenario(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("1", "A", t1))

	draft := models.NoteDraft{Title: "B", Tags: []string{"x"}}
	created := models.Note{ID: "2", Title: "B", Tags: []string{"x"}, CreatedAt: t2, UpdatedAt: t2}

	gw.EXPECT().Create(gomock.Any(), draft, (*string)(nil)).DoAndReturn(
		func(context.Context, models.NoteDraft, *string) (models.Note, error) {
			// optimistic insert is visible and selected before the round trip ends
			state := svc.Snapshot()
			require.Len(t, state.Notes, 2)
			assert.True(t, state.Notes[0].Ref.IsPending())
			assert.Equal(t, "B", state.Notes[0].Note.Title)
			assert.Equal(t, state.Notes[0].Ref, *state.Selected)
			return created, nil
		})

	got, ok := svc.AddNote(context.Background(), draft)
	require.True(t, ok)
	assert.Equal(t, created, got)

	state := svc.Snapshot()
	assert.Equal(t, []string{"note:2", "note:1"}, ids(state))
	assert.Equal(t, ref("2"), state.Selected)
	assert.Equal(t, "B", state.Notes[0].Note.Title)
	assert.Equal(t, "A", state.Notes[1].Note.Title)
	for _, n := range state.Notes {
		assert.False(t, n.Ref.IsPending())
	}
}

func TestNotesSyncService_AddNote_ReplacesNoteLoadedMeanwhile(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	created := note("2", "B", t2)

	gw.EXPECT().List(gomock.Any(), gomock.Any()).Return([]models.Note{created}, nil)
	gw.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.NoteDraft, _ *string) (models.Note, error) {
			svc.Refresh(ctx)
			return created, nil
		})

	_, ok := svc.AddNote(context.Background(), models.NoteDraft{Title: "B"})
	require.True(t, ok)

	assert.Equal(t, []string{"note:2"}, ids(svc.Snapshot()))
}

func TestNotesSyncService_AddNote_FailureRollsBack(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("1", "A", t0))

	gw.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Note{}, fmt.Errorf("%w: new row violates row-level security policy", adapter.ErrForbidden))

	_, ok := svc.AddNote(context.Background(), models.NoteDraft{Title: "B"})
	assert.False(t, ok)

	state := svc.Snapshot()
	assert.Equal(t, []string{"note:1"}, ids(state))
	assert.Equal(t, ref("1"), state.Selected)
	assert.Equal(t, MsgNotAllowed, state.Err)
}

func TestNotesSyncService_AddNote_FailureOnEmptyCollection(t *testing.T) {
	svc, gw := newTestNotesSvc(t)

	gw.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Note{}, errNetwork)

	_, ok := svc.AddNote(context.Background(), models.NoteDraft{Title: "B"})
	assert.False(t, ok)

	state := svc.Snapshot()
	assert.Empty(t, state.Notes)
	assert.Nil(t, state.Selected)
	assert.Equal(t, MsgNetworkError, state.Err)
}

func TestNotesSyncService_AddNote_SendsOwner(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	owner := "user-1"
	svc.SetOwner(&owner)

	gw.EXPECT().Create(gomock.Any(), models.NoteDraft{Title: "B", Tags: []string{}}, &owner).
		Return(models.Note{ID: "9", Title: "B", UserID: &owner}, nil)

	_, ok := svc.AddNote(context.Background(), models.NoteDraft{Title: "B"})
	require.True(t, ok)
	assert.Empty(t, svc.Snapshot().Err)
}

// ── SaveNote ─────────────────────────────────────────────────────────────────

func TestNotesSyncService_SaveNote_Success(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("2", "B", t1), note("1", "A", t0))

	title := "A2"
	patch := models.NotePatch{Title: &title}
	stored := note("1", "A2", t2)

	gw.EXPECT().Update(gomock.Any(), "1", patch).DoAndReturn(
		func(context.Context, string, models.NotePatch) (models.Note, error) {
			optimistic := svc.Snapshot().Notes[1].Note
			assert.Equal(t, "A2", optimistic.Title)
			assert.Equal(t, t2.Add(time.Minute), optimistic.UpdatedAt)
			return stored, nil
		})

	got, ok := svc.SaveNote(context.Background(), "1", patch)
	require.True(t, ok)
	assert.Equal(t, stored, got)

	state := svc.Snapshot()
	// updated in place, no re-sort
	assert.Equal(t, []string{"note:2", "note:1"}, ids(state))
	assert.Equal(t, stored, state.Notes[1].Note)
}

func TestNotesSyncService_SaveNote_EffectiveTitle(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("1", "A", t0))
	before := svc.Snapshot()

	blank := "   "
	_, ok := svc.SaveNote(context.Background(), "1", models.NotePatch{Title: &blank})
	assert.False(t, ok)
	assert.Equal(t, MsgTitleRequired, svc.Snapshot().Err)
	assert.Equal(t, before.Notes, svc.Snapshot().Notes)

	// no title in the patch: the current title is checked and passes
	content := "body"
	gw.EXPECT().Update(gomock.Any(), "1", models.NotePatch{Content: &content}).Return(note("1", "A", t1), nil)

	_, ok = svc.SaveNote(context.Background(), "1", models.NotePatch{Content: &content})
	assert.True(t, ok)
	assert.Empty(t, svc.Snapshot().Err)
}

func TestNotesSyncService_BlankTagsDropped(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("1", "A", t0))

	gw.EXPECT().Create(gomock.Any(), models.NoteDraft{Title: "B", Tags: []string{"x"}}, (*string)(nil)).
		Return(models.Note{ID: "2", Title: "B", Tags: []string{"x"}, CreatedAt: t1, UpdatedAt: t1}, nil)

	_, ok := svc.AddNote(context.Background(), models.NoteDraft{Title: "B", Tags: []string{" x ", " "}})
	require.True(t, ok)
	assert.Empty(t, svc.Snapshot().Err)

	empty := []string{}
	gw.EXPECT().Update(gomock.Any(), "1", models.NotePatch{Tags: &empty}).Return(note("1", "A", t2), nil)

	blank := []string{""}
	_, ok = svc.SaveNote(context.Background(), "1", models.NotePatch{Tags: &blank})
	assert.True(t, ok)
	assert.Empty(t, svc.Snapshot().Err)
}

func TestNotesSyncService_MutationsOnUnknownNote(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("1", "A", t0))
	title := "x"

	_, ok := svc.SaveNote(context.Background(), "404", models.NotePatch{Title: &title})
	assert.False(t, ok)
	assert.Equal(t, MsgNoteNotFound, svc.Snapshot().Err)

	svc.DismissError()
	assert.False(t, svc.RemoveNote(context.Background(), "404"))
	assert.Equal(t, MsgNoteNotFound, svc.Snapshot().Err)

	svc.DismissError()
	assert.False(t, svc.SetArchived(context.Background(), "404", true))
	assert.Equal(t, MsgNoteNotFound, svc.Snapshot().Err)
}

func TestNotesSyncService_PendingNoteCannotBeMutated(t *testing.T) {
	svc, gw := newTestNotesSvc(t)

	gw.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.NoteDraft, _ *string) (models.Note, error) {
			// the local id of the pending note is not a remote id
			assert.False(t, svc.RemoveNote(ctx, "local-1"))
			return note("7", "B", t2), nil
		})

	_, ok := svc.AddNote(context.Background(), models.NoteDraft{Title: "B"})
	require.True(t, ok)
	assert.Equal(t, []string{"note:7"}, ids(svc.Snapshot()))
}

// ── Rollback property ────────────────────────────────────────────────────────

func TestNotesSyncService_FailedMutationsRollBack(t *testing.T) {
	third := note("3", "C", t0)

	tests := []struct {
		name   string
		expect func(gw *mock.MockNotesGateway)
		call   func(svc *notesSyncService) bool
	}{
		{
			name: "save",
			expect: func(gw *mock.MockNotesGateway) {
				gw.EXPECT().Update(gomock.Any(), "1", gomock.Any()).Return(models.Note{}, errNetwork)
			},
			call: func(svc *notesSyncService) bool {
				title, tags := "changed", []string{"t"}
				_, ok := svc.SaveNote(context.Background(), "1", models.NotePatch{Title: &title, Tags: &tags})
				return ok
			},
		},
		{
			name: "remove selected",
			expect: func(gw *mock.MockNotesGateway) {
				gw.EXPECT().SoftDelete(gomock.Any(), "1").Return(errNetwork)
			},
			call: func(svc *notesSyncService) bool { return svc.RemoveNote(context.Background(), "1") },
		},
		{
			name: "remove other",
			expect: func(gw *mock.MockNotesGateway) {
				gw.EXPECT().SoftDelete(gomock.Any(), "2").Return(fmt.Errorf("%w: gone", adapter.ErrNotFound))
			},
			call: func(svc *notesSyncService) bool { return svc.RemoveNote(context.Background(), "2") },
		},
		{
			name: "archive",
			expect: func(gw *mock.MockNotesGateway) {
				gw.EXPECT().SetArchived(gomock.Any(), "1", true).Return(store.ErrDatabaseUnavailable)
			},
			call: func(svc *notesSyncService) bool { return svc.SetArchived(context.Background(), "1", true) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gw := newTestNotesSvc(t)
			seed(t, svc, gw, note("1", "A", t2), note("2", "B", t1), third)
			before := svc.Snapshot()

			tt.expect(gw)
			assert.False(t, tt.call(svc))

			after := svc.Snapshot()
			assert.Equal(t, before.Notes, after.Notes)
			assert.Equal(t, before.Selected, after.Selected)
			assert.NotEmpty(t, after.Err)
		})
	}
}

func TestNotesSyncService_RemoveNote_ScenarioFailure(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("1", "A", t1), note("2", "B", t0))
	require.Equal(t, ref("1"), svc.Snapshot().Selected)

	gw.EXPECT().SoftDelete(gomock.Any(), "1").DoAndReturn(func(context.Context, string) error {
		// optimistic removal moved the selection to the new first note
		state := svc.Snapshot()
		assert.Equal(t, []string{"note:2"}, ids(state))
		assert.Equal(t, ref("2"), state.Selected)
		return errNetwork
	})

	assert.False(t, svc.RemoveNote(context.Background(), "1"))

	state := svc.Snapshot()
	assert.Equal(t, []string{"note:1", "note:2"}, ids(state))
	assert.Equal(t, ref("1"), state.Selected)
	assert.Equal(t, MsgNetworkError, state.Err)
}

func TestNotesSyncService_RemoveNote_Success(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("1", "A", t0))

	gw.EXPECT().SoftDelete(gomock.Any(), "1").Return(nil)

	assert.True(t, svc.RemoveNote(context.Background(), "1"))
	state := svc.Snapshot()
	assert.Empty(t, state.Notes)
	assert.Nil(t, state.Selected)
}

// ── SetArchived ──────────────────────────────────────────────────────────────

func TestNotesSyncService_SetArchived_PrunesAllArchived(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	second := note("2", "B", t0)
	second.IsArchived = true
	seed(t, svc, gw, note("1", "A", t1), second)
	require.Equal(t, ref("1"), svc.Snapshot().Selected)

	gw.EXPECT().SetArchived(gomock.Any(), "1", true).Return(nil)

	assert.True(t, svc.SetArchived(context.Background(), "1", true))

	state := svc.Snapshot()
	assert.Empty(t, state.Notes)
	assert.Nil(t, state.Selected)
	assert.Empty(t, state.Err)
}

func TestNotesSyncService_SetArchived_KeepsOtherSelection(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("1", "A", t1), note("2", "B", t0))
	svc.Select(models.Confirmed("2"))

	gw.EXPECT().SetArchived(gomock.Any(), "1", true).Return(nil)

	assert.True(t, svc.SetArchived(context.Background(), "1", true))

	state := svc.Snapshot()
	assert.Equal(t, []string{"note:2"}, ids(state))
	assert.Equal(t, ref("2"), state.Selected)
}

func TestNotesSyncService_SetArchived_OptimisticFlag(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("1", "A", t1))

	gw.EXPECT().SetArchived(gomock.Any(), "1", true).DoAndReturn(func(context.Context, string, bool) error {
		state := svc.Snapshot()
		require.Len(t, state.Notes, 1)
		assert.True(t, state.Notes[0].Note.IsArchived)
		return nil
	})

	assert.True(t, svc.SetArchived(context.Background(), "1", true))
}

// ── Selection, owner, subscriptions ──────────────────────────────────────────

func TestNotesSyncService_Selection(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("1", "A", t2), note("2", "B", t1), note("3", "C", t0))

	svc.SelectNext()
	assert.Equal(t, ref("2"), svc.Snapshot().Selected)
	svc.SelectNext()
	svc.SelectNext()
	assert.Equal(t, ref("3"), svc.Snapshot().Selected)
	svc.SelectPrev()
	assert.Equal(t, ref("2"), svc.Snapshot().Selected)

	svc.Select(models.Confirmed("404"))
	svc.Select(models.Pending("2"))
	assert.Equal(t, ref("2"), svc.Snapshot().Selected)
}

func TestNotesSyncService_SetOwner(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("1", "A", t0))

	assert.False(t, svc.SetOwner(nil))
	assert.Len(t, svc.Snapshot().Notes, 1)

	a, a2, b := "a", "a", "b"
	assert.True(t, svc.SetOwner(&a))
	assert.Empty(t, svc.Snapshot().Notes)
	assert.Nil(t, svc.Snapshot().Selected)
	assert.False(t, svc.SetOwner(&a2))
	assert.True(t, svc.SetOwner(&b))
	assert.True(t, svc.SetOwner(nil))
}

func TestNotesSyncService_SetOwner_DropsInFlightList(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	u1, u2 := "u1", "u2"
	require.True(t, svc.SetOwner(&u1))

	gw.EXPECT().List(gomock.Any(), models.ListOptions{Owner: &u1}).
		DoAndReturn(func(context.Context, models.ListOptions) ([]models.Note, error) {
			// sign-in as another user lands while the request is running
			svc.SetOwner(&u2)
			return []models.Note{note("secret-of-u1", "A", t0)}, nil
		})

	assert.False(t, svc.Refresh(context.Background()))

	state := svc.Snapshot()
	assert.Empty(t, state.Notes)
	assert.Nil(t, state.Selected)
	assert.Empty(t, state.Err)
	assert.False(t, state.Loading)
}

func TestNotesSyncService_SetOwner_DropsInFlightCreate(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	u1, u2 := "u1", "u2"
	require.True(t, svc.SetOwner(&u1))

	gw.EXPECT().Create(gomock.Any(), gomock.Any(), &u1).
		DoAndReturn(func(context.Context, models.NoteDraft, *string) (models.Note, error) {
			svc.SetOwner(&u2)
			return note("created-for-u1", "B", t1), nil
		})

	_, ok := svc.AddNote(context.Background(), models.NoteDraft{Title: "B"})
	assert.False(t, ok)

	state := svc.Snapshot()
	assert.Empty(t, state.Notes)
	assert.Nil(t, state.Selected)
}

func TestNotesSyncService_SetOwner_RollbackKeepsNewOwnerState(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	seed(t, svc, gw, note("1", "A", t0))
	u2 := "u2"

	gw.EXPECT().SoftDelete(gomock.Any(), "1").DoAndReturn(func(context.Context, string) error {
		svc.SetOwner(&u2)
		return errNetwork
	})

	assert.False(t, svc.RemoveNote(context.Background(), "1"))
	assert.Empty(t, svc.Snapshot().Notes)
	assert.Nil(t, svc.Snapshot().Selected)
}

func TestNotesSyncService_Subscribe(t *testing.T) {
	svc, gw := newTestNotesSvc(t)

	var states []models.NotesState
	unsubscribe := svc.Subscribe(func(s models.NotesState) { states = append(states, s) })

	seed(t, svc, gw, note("1", "A", t0))
	require.NotEmpty(t, states)
	last := states[len(states)-1]
	assert.False(t, last.Loading)
	assert.Len(t, last.Notes, 1)

	// snapshots are copies
	last.Notes[0].Note.Title = "mutated"
	assert.Equal(t, "A", svc.Snapshot().Notes[0].Note.Title)

	unsubscribe()
	unsubscribe()
	n := len(states)
	svc.DismissError()
	assert.Len(t, states, n)
}

func TestNotesSyncService_GetNote(t *testing.T) {
	svc, gw := newTestNotesSvc(t)
	owner := "u"
	svc.SetOwner(&owner)

	gw.EXPECT().Get(gomock.Any(), "1", models.ListOptions{Owner: &owner, IncludeArchived: true}).
		Return(note("1", "A", t0), nil)
	gw.EXPECT().Get(gomock.Any(), "2", gomock.Any()).
		Return(models.Note{}, fmt.Errorf("%w: no rows", adapter.ErrNotFound))

	got, err := svc.GetNote(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Title)

	_, err = svc.GetNote(context.Background(), "2")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.True(t, errors.Is(err, ErrNotFound))
}
