package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"gopkg.in/yaml.v3"
)

const delimiter = "---\n"

type frontmatter struct {
	ID        string    `yaml:"id,omitempty"`
	Title     string    `yaml:"title"`
	Tags      []string  `yaml:"tags,omitempty"`
	Archived  bool      `yaml:"archived"`
	CreatedAt time.Time `yaml:"created_at,omitempty"`
	UpdatedAt time.Time `yaml:"updated_at,omitempty"`
}

// Markdown renders n as frontmatter followed by the note content.
func Markdown(n models.Note) ([]byte, error) {
	meta := frontmatter{
		ID:        n.ID,
		Title:     n.Title,
		Tags:      n.Tags,
		Archived:  n.IsArchived,
		CreatedAt: n.CreatedAt.UTC(),
		UpdatedAt: n.UpdatedAt.UTC(),
	}

	var buf bytes.Buffer
	buf.WriteString(delimiter)
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(meta); err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	buf.WriteString(delimiter)
	buf.WriteString(n.Content)

	return buf.Bytes(), nil
}

// ParseMarkdown reads a note written by [Markdown]. Input without
// frontmatter becomes the content of an untitled note.
func ParseMarkdown(data []byte) (models.Note, error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(data, []byte(delimiter)) {
		return models.Note{Content: string(data)}, nil
	}

	rest := data[len(delimiter):]
	head, body, found := bytes.Cut(rest, []byte("\n"+delimiter))
	if !found {
		// frontmatter closed at the very end of the file
		if bytes.HasSuffix(rest, []byte("\n---")) {
			head, body = rest[:len(rest)-len("\n---")], nil
		} else if bytes.HasPrefix(rest, []byte(delimiter)) {
			head, body = nil, rest[len(delimiter):]
		} else {
			return models.Note{}, ErrNoClosingDelimiter
		}
	}

	var meta frontmatter
	if err := yaml.Unmarshal(head, &meta); err != nil {
		return models.Note{}, fmt.Errorf("parse frontmatter: %w", err)
	}

	return models.Note{
		ID:         meta.ID,
		Title:      meta.Title,
		Content:    string(body),
		Tags:       meta.Tags,
		IsArchived: meta.Archived,
		CreatedAt:  meta.CreatedAt,
		UpdatedAt:  meta.UpdatedAt,
	}, nil
}
