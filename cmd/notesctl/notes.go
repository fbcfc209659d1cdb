package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/export"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

const timeLayout = "2006-01-02 15:04"

func visibleNotes(e *env, query string) []models.Note {
	local := service.SearchNotes(e.notes.Snapshot().Notes, query)
	notes := make([]models.Note, 0, len(local))
	for _, n := range local {
		notes = append(notes, n.Note)
	}
	return notes
}

func (c *cli) listCmd() *cobra.Command {
	var (
		query  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, most recently updated first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.connectNotes(cmd)
			if err != nil {
				return err
			}

			notes := visibleNotes(e, query)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(notes)
			}

			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notes.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), notesTable(notes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "search", "s", "", "only notes whose title, content or tags contain this text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print notes as JSON")
	return cmd
}

func notesTable(notes []models.Note) string {
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, []string{
			n.ID,
			n.DisplayTitle(),
			models.FormatTags(n.Tags),
			n.LastTouched().Local().Format(timeLayout),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		Headers("ID", "TITLE", "TAGS", "UPDATED").
		Rows(rows...).
		String()
}

// noteFlags are the editable fields shared by add and edit.
type noteFlags struct {
	title   string
	content string
	tags    string
	file    string
}

func (f *noteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&f.content, "content", "m", "", "note content, \"-\" reads stdin")
	cmd.Flags().StringVar(&f.tags, "tags", "", "comma separated tags")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "markdown file with optional YAML frontmatter")
}

// patch builds a patch from the flags the user set. A file is applied
// first so explicit flags win over its frontmatter.
func (f *noteFlags) patch(cmd *cobra.Command) (models.NotePatch, error) {
	var patch models.NotePatch

	if f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return patch, fmt.Errorf("read %s: %w", f.file, err)
		}
		n, err := export.ParseMarkdown(data)
		if err != nil {
			return patch, fmt.Errorf("parse %s: %w", f.file, err)
		}
		if n.Title != "" {
			patch.Title = &n.Title
		}
		patch.Content = &n.Content
		if n.Tags != nil {
			patch.Tags = &n.Tags
		}
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		title := f.title
		patch.Title = &title
	}
	if flags.Changed("content") {
		content := f.content
		if content == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return patch, fmt.Errorf("read stdin: %w", err)
			}
			content = string(data)
		}
		patch.Content = &content
	}
	if flags.Changed("tags") {
		tags := models.ParseTags(f.tags)
		patch.Tags = &tags
	}

	return patch, nil
}

func (c *cli) addCmd() *cobra.Command {
	var f noteFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := f.patch(cmd)
			if err != nil {
				return err
			}

			draft := models.NoteDraft{Title: models.DefaultNoteTitle}
			if patch.Title != nil {
				draft.Title = *patch.Title
			}
			if patch.Content != nil {
				draft.Content = *patch.Content
			}
			if patch.Tags != nil {
				draft.Tags = *patch.Tags
			}

			e, err := c.connectNotes(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := c.withTimeout(cmd)
			defer cancel()
			note, ok := e.notes.AddNote(ctx, draft)
			if !ok {
				return notesError(e.notes, service.MsgFailedToCreate)
			}

			fmt.Fprintln(cmd.OutOrStdout(), note.ID)
			return nil
		},
	}

	f.register(cmd)
	return cmd
}

func (c *cli) editCmd() *cobra.Command {
	var f noteFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title, content or tags of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := f.patch(cmd)
			if err != nil {
				return err
			}
			if patch.Empty() {
				return fmt.Errorf("nothing to change, set --title, --content, --tags or --file")
			}

			e, err := c.connectNotes(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := c.withTimeout(cmd)
			defer cancel()

			current, err := e.notes.GetNote(ctx, args[0])
			if err != nil {
				return err
			}
			if current.IsArchived {
				return fmt.Errorf("note %s is archived", current.ID)
			}

			note, ok := e.notes.SaveNote(ctx, current.ID, patch)
			if !ok {
				return notesError(e.notes, service.MsgFailedToSave)
			}

			c.logger.Debug().Str("id", note.ID).Msg("note saved")
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", note.ID, note.LastTouched().Local().Format(timeLayout))
			return nil
		},
	}

	f.register(cmd)
	return cmd
}

func (c *cli) archiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>...",
		Short: "Archive notes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.eachNote(cmd, args, service.MsgFailedToArchive, func(e *env, id string) bool {
				ctx, cancel := c.withTimeout(cmd)
				defer cancel()
				return e.notes.SetArchived(ctx, id, true)
			})
		},
	}
}

func (c *cli) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"delete"},
		Short:   "Delete notes",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.eachNote(cmd, args, service.MsgFailedToDelete, func(e *env, id string) bool {
				ctx, cancel := c.withTimeout(cmd)
				defer cancel()
				return e.notes.RemoveNote(ctx, id)
			})
		},
	}
}

// eachNote runs op for every id and stops at the first failure.
func (c *cli) eachNote(cmd *cobra.Command, ids []string, fallback string, op func(e *env, id string) bool) error {
	e, err := c.connectNotes(cmd)
	if err != nil {
		return err
	}

	for _, id := range ids {
		id = strings.TrimSpace(id)
		if !op(e, id) {
			return fmt.Errorf("%s: %w", id, notesError(e.notes, fallback))
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}
