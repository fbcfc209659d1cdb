package service

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// SearchNotes returns the notes whose title, content or tags contain query,
// ignoring case. A blank query matches everything. Order is preserved.
func SearchNotes(notes []models.LocalNote, query string) []models.LocalNote {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.LocalNote, 0, len(notes))
	for _, n := range notes {
		if q == "" || noteMatches(n.Note, q) {
			out = append(out, n)
		}
	}
	return out
}

func noteMatches(n models.Note, q string) bool {
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q) ||
		strings.Contains(strings.ToLower(strings.Join(n.Tags, " ")), q)
}
