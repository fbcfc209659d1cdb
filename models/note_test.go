package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "only separators", in: " , ,,", want: []string{}},
		{name: "trims", in: " work ,  ideas", want: []string{"work", "ideas"}},
		{name: "single", in: "todo", want: []string{"todo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.in))
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{}, NormalizeTags(nil))
	assert.Equal(t, []string{"x", "y"}, NormalizeTags([]string{" x ", "", "  ", "y"}))
}

func TestFormatTags_RoundTrip(t *testing.T) {
	tags := []string{"a", "b c", "d"}
	assert.Equal(t, "a, b c, d", FormatTags(tags))
	assert.Equal(t, tags, ParseTags(FormatTags(tags)))
}

func TestNotePatch_Apply(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	orig := Note{ID: "1", Title: "old", Content: "body", Tags: []string{"x"}}

	title := "new"
	archived := true
	got := NotePatch{Title: &title, IsArchived: &archived, UpdatedAt: &now}.Apply(orig)

	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "body", got.Content)
	assert.True(t, got.IsArchived)
	assert.Equal(t, now, got.UpdatedAt)
	assert.Equal(t, "old", orig.Title, "original must not change")

	got.Tags[0] = "changed"
	assert.Equal(t, "x", orig.Tags[0], "apply must deep copy tags")
}

func TestNotePatch_Empty(t *testing.T) {
	assert.True(t, NotePatch{}.Empty())
	deleted := true
	assert.False(t, NotePatch{IsDeleted: &deleted}.Empty())
}

func TestNote_DisplayTitleAndLastTouched(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	n := Note{Title: "  ", CreatedAt: created}
	assert.Equal(t, DefaultNoteTitle, n.DisplayTitle())
	assert.Equal(t, created, n.LastTouched())

	n.UpdatedAt = created.Add(time.Hour)
	assert.Equal(t, created.Add(time.Hour), n.LastTouched())
}

func TestNoteRef_KindsNeverCollide(t *testing.T) {
	assert.NotEqual(t, Pending("abc"), Confirmed("abc"))
	assert.Equal(t, Confirmed("abc"), Confirmed("abc"))
	assert.True(t, Pending("abc").IsPending())
	assert.False(t, Confirmed("abc").IsPending())
	assert.True(t, NoteRef{}.IsZero())
}

func TestNoteRef_String(t *testing.T) {
	assert.Equal(t, "pending:l1", Pending("l1").String())
	assert.Equal(t, "note:42", Confirmed("42").String())
	assert.Equal(t, "none", NoteRef{}.String())
	assert.Equal(t, RefConfirmed, Confirmed("42").Kind())
	assert.Equal(t, "42", Confirmed("42").ID())
}

func TestNotesState_SelectedNote(t *testing.T) {
	ref := Confirmed("2")
	st := NotesState{
		Notes: []LocalNote{
			{Ref: Confirmed("1"), Note: Note{ID: "1"}},
			{Ref: ref, Note: Note{ID: "2"}},
		},
		Selected: &ref,
	}
	got, ok := st.SelectedNote()
	assert.True(t, ok)
	assert.Equal(t, "2", got.Note.ID)
	assert.Equal(t, 1, st.IndexOf(ref))

	st.Selected = nil
	_, ok = st.SelectedNote()
	assert.False(t, ok)
}

func TestSession_ExpiresWithin(t *testing.T) {
	now := time.Unix(1_000, 0)
	s := &Session{ExpiresAt: 1_100}
	assert.False(t, s.ExpiresWithin(now, 50*time.Second))
	assert.True(t, s.ExpiresWithin(now, 100*time.Second))
	assert.False(t, (&Session{}).ExpiresWithin(now, time.Hour))

	var nilSession *Session
	assert.Nil(t, nilSession.UserID())
	assert.Equal(t, "u1", *(&Session{User: &SessionUser{ID: "u1"}}).UserID())
}
