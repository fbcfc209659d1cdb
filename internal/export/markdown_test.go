package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNote() models.Note {
	return models.Note{
		ID:        "7f0c2a9e-1111-2222-3333-444455556666",
		Title:     "Groceries",
		Content:   "milk\neggs\n",
		Tags:      []string{"home", "weekly"},
		CreatedAt: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 3, 8, 30, 0, 0, time.UTC),
	}
}

func TestMarkdown(t *testing.T) {
	data, err := Markdown(testNote())
	require.NoError(t, err)

	out := string(data)
	assert.True(t, len(out) > 4 && out[:4] == "---\n")
	assert.Contains(t, out, "id: 7f0c2a9e-1111-2222-3333-444455556666\n")
	assert.Contains(t, out, "title: Groceries\n")
	assert.Contains(t, out, "archived: false\n")
	assert.Contains(t, out, "created_at: 2026-01-02T10:00:00Z\n")
	assert.Contains(t, out, "\n---\nmilk\neggs\n")
}

func TestParseMarkdown_ReadsWhatMarkdownWrites(t *testing.T) {
	n := testNote()
	n.IsArchived = true

	data, err := Markdown(n)
	require.NoError(t, err)

	got, err := ParseMarkdown(data)
	require.NoError(t, err)

	assert.Equal(t, n.ID, got.ID)
	assert.Equal(t, n.Title, got.Title)
	assert.Equal(t, n.Content, got.Content)
	assert.Equal(t, n.Tags, got.Tags)
	assert.True(t, got.IsArchived)
	assert.True(t, n.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, n.UpdatedAt.Equal(got.UpdatedAt))
}

func TestParseMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.Note
		wantErr error
	}{
		{
			name:  "plain text",
			input: "just a thought",
			want:  models.Note{Content: "just a thought"},
		},
		{
			name:  "crlf frontmatter",
			input: "---\r\ntitle: Todo\r\ntags: [a, b]\r\n---\r\nbody",
			want:  models.Note{Title: "Todo", Tags: []string{"a", "b"}, Content: "body"},
		},
		{
			name:  "frontmatter only",
			input: "---\ntitle: Empty\n---",
			want:  models.Note{Title: "Empty"},
		},
		{
			name:    "unterminated",
			input:   "---\ntitle: Broken\nbody",
			wantErr: ErrNoClosingDelimiter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMarkdown([]byte(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMarkdown_InvalidYAML(t *testing.T) {
	_, err := ParseMarkdown([]byte("---\ntitle: [unclosed\n---\nbody"))
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		note models.Note
		want string
	}{
		{"title and id", models.Note{ID: "7f0c2a9e-aaaa", Title: "Weekly Plan!"}, "weekly-plan-7f0c2a9e.md"},
		{"blank title", models.Note{ID: "abc"}, "untitled-abc.md"},
		{"no id", models.Note{Title: "Ideas"}, "ideas.md"},
		{"symbols only", models.Note{Title: "!!!", ID: "1"}, "note-1.md"},
		{"unicode", models.Note{Title: "Привет мир", ID: "1"}, "привет-мир-1.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.note))
		})
	}
}

func TestWriteDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	notes := []models.Note{testNote(), {ID: "second-id-123", Title: "Other", Content: "x"}}

	paths, err := WriteDir(dir, notes)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	got, err := ParseMarkdown(data)
	require.NoError(t, err)
	assert.Equal(t, "Other", got.Title)
	assert.Equal(t, "x", got.Content)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files are left behind")
}

func TestWriteDir_EmptyDir(t *testing.T) {
	_, err := WriteDir(" ", nil)
	assert.ErrorIs(t, err, ErrEmptyDir)
}
