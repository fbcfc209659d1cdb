// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type notesRepository struct {
	db     *DB
	table  string
	now    func() time.Time
	logger *logger.Logger
}

// NewNotesRepository returns a NotesRepository over the notes table of db.
// An empty table falls back to the model's default table name.
func NewNotesRepository(db *DB, table string, log *logger.Logger) NotesRepository {
	if table == "" {
		table = models.Note{}.TableName()
	}
	return &notesRepository{db: db, table: table, now: time.Now, logger: log}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note   models.Note
		userID sql.NullString
		tags   pq.StringArray
	)

	err := row.Scan(&note.ID, &userID, &note.Title, &note.Content, &tags,
		&note.IsArchived, &note.IsDeleted, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return models.Note{}, err
	}

	if userID.Valid {
		owner := userID.String
		note.UserID = &owner
	}
	note.Tags = []string(tags)
	if note.Tags == nil {
		note.Tags = []string{}
	}

	return note, nil
}

func (r *notesRepository) List(ctx context.Context, opts models.ListOptions) ([]models.Note, error) {
	log := r.logger

	query, args, err := buildListQuery(r.table, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "notesRepository.List").Msg("error listing notes")
		return nil, classifyNoteError(err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Err(err).Str("func", "notesRepository.List").Msg("error scanning note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, classifyNoteError(err)
	}

	return notes, nil
}

func (r *notesRepository) Get(ctx context.Context, id string, opts models.ListOptions) (models.Note, error) {
	query, args, err := buildGetQuery(r.table, id, opts)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			r.logger.Err(err).Str("func", "notesRepository.Get").Str("note_id", id).Msg("error getting note")
		}
		return models.Note{}, classifyNoteError(err)
	}

	return note, nil
}

func (r *notesRepository) Create(ctx context.Context, draft models.NoteDraft, owner *string) (models.Note, error) {
	query, args, err := buildInsertQuery(r.table, draft, owner, r.now().UTC())
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		r.logger.Err(err).Str("func", "notesRepository.Create").Msg("error inserting note")
		return models.Note{}, classifyNoteError(err)
	}

	return note, nil
}

func (r *notesRepository) Update(ctx context.Context, id string, patch models.NotePatch) (models.Note, error) {
	query, args, err := buildUpdateQuery(r.table, id, patch, r.now().UTC())
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		r.logger.Err(err).Str("func", "notesRepository.Update").Str("note_id", id).Msg("error updating note")
		return models.Note{}, classifyNoteError(err)
	}

	return note, nil
}

func (r *notesRepository) SoftDelete(ctx context.Context, id string) error {
	deleted := true
	_, err := r.Update(ctx, id, models.NotePatch{IsDeleted: &deleted})
	return err
}

func (r *notesRepository) SetArchived(ctx context.Context, id string, archived bool) error {
	_, err := r.Update(ctx, id, models.NotePatch{IsArchived: &archived})
	return err
}
