package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const maxSlugLen = 48

// FileName returns "<slug>-<id prefix>.md" for n. The id suffix keeps
// notes with equal titles apart.
func FileName(n models.Note) string {
	slug := slugify(n.DisplayTitle())
	id := n.ID
	if len(id) > 8 {
		id = id[:8]
	}
	if id == "" {
		return slug + ".md"
	}
	return slug + "-" + id + ".md"
}

func slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if r := []rune(slug); len(r) > maxSlugLen {
		slug = strings.TrimRight(string(r[:maxSlugLen]), "-")
	}
	if slug == "" {
		return "note"
	}
	return slug
}

// WriteDir writes every note into dir, creating it when missing, and
// returns the written paths.
func WriteDir(dir string, notes []models.Note) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, ErrEmptyDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	paths := make([]string, 0, len(notes))
	for _, n := range notes {
		data, err := Markdown(n)
		if err != nil {
			return paths, fmt.Errorf("render note %s: %w", n.ID, err)
		}

		path := filepath.Join(dir, FileName(n))
		if err = writeFileAtomic(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("write note %s: %w", n.ID, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// writeFileAtomic writes to a temp file in the same directory and renames
// it over filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".export-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return err
	}

	return os.Rename(tmpName, filename)
}
