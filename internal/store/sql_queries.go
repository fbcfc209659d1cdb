package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Columns are cast to text so the database/sql driver hands back plain
// strings regardless of wire format. Tags come back in array literal form
// and are decoded by pq.StringArray.
var noteColumns = []string{
	"id::text AS id",
	"user_id::text AS user_id",
	"title",
	"content",
	"tags::text AS tags",
	"is_archived",
	"is_deleted",
	"created_at",
	"updated_at",
}

const returningNoteColumns = "RETURNING id::text AS id, user_id::text AS user_id, title, content, " +
	"tags::text AS tags, is_archived, is_deleted, created_at, updated_at"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func applyScope(b sq.SelectBuilder, opts models.ListOptions) sq.SelectBuilder {
	if !opts.IncludeDeleted {
		b = b.Where(sq.Eq{"is_deleted": false})
	}
	if !opts.IncludeArchived {
		b = b.Where(sq.Eq{"is_archived": false})
	}
	if opts.Owner != nil {
		b = b.Where(sq.Eq{"user_id": *opts.Owner})
	}
	return b
}

func buildListQuery(table string, opts models.ListOptions) (string, []any, error) {
	return applyScope(psql.Select(noteColumns...).From(table), opts).
		OrderBy("updated_at DESC").
		ToSql()
}

func buildGetQuery(table, id string, opts models.ListOptions) (string, []any, error) {
	return applyScope(psql.Select(noteColumns...).From(table), opts).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
}

func buildInsertQuery(table string, draft models.NoteDraft, owner *string, now time.Time) (string, []any, error) {
	tags := draft.Tags
	if tags == nil {
		tags = []string{}
	}

	return psql.Insert(table).
		Columns("user_id", "title", "content", "tags", "is_archived", "is_deleted", "created_at", "updated_at").
		Values(owner, draft.Title, draft.Content, pq.StringArray(tags), draft.IsArchived, false, now, now).
		Suffix(returningNoteColumns).
		ToSql()
}

// buildUpdateQuery sets only the non-nil patch fields plus updated_at.
func buildUpdateQuery(table, id string, patch models.NotePatch, now time.Time) (string, []any, error) {
	b := psql.Update(table)

	if patch.Title != nil {
		b = b.Set("title", *patch.Title)
	}
	if patch.Content != nil {
		b = b.Set("content", *patch.Content)
	}
	if patch.Tags != nil {
		tags := *patch.Tags
		if tags == nil {
			tags = []string{}
		}
		b = b.Set("tags", pq.StringArray(tags))
	}
	if patch.IsArchived != nil {
		b = b.Set("is_archived", *patch.IsArchived)
	}
	if patch.IsDeleted != nil {
		b = b.Set("is_deleted", *patch.IsDeleted)
	}

	return b.Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Suffix(returningNoteColumns).
		ToSql()
}
