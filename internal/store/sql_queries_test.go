package store

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/models"
)

func TestBuildUpdateQuery_EmptyPatchTouchesTimestampOnly(t *testing.T) {
	now := time.Now()
	query, args, err := buildUpdateQuery("notes", "n1", models.NotePatch{}, now)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE notes SET updated_at = $1 WHERE id = $2")
	assert.Equal(t, []any{now, "n1"}, args)
}

func TestBuildUpdateQuery_NilTagsBecomeEmptyArray(t *testing.T) {
	var tags []string
	_, args, err := buildUpdateQuery("notes", "n1", models.NotePatch{Tags: &tags}, time.Now())
	require.NoError(t, err)

	require.Len(t, args, 3)
	arr, ok := args[0].(pq.StringArray)
	require.True(t, ok)
	assert.NotNil(t, arr)
	assert.Empty(t, arr)
}

func TestBuildInsertQuery_CustomTable(t *testing.T) {
	owner := "u1"
	query, args, err := buildInsertQuery("team_notes", models.NoteDraft{Title: "x", Tags: []string{"a"}}, &owner, time.Now())
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO team_notes")
	assert.Contains(t, query, "RETURNING id::text AS id")
	assert.Equal(t, &owner, args[0])
	assert.Equal(t, pq.StringArray{"a"}, args[3])
}

func TestBuildListQuery_Scopes(t *testing.T) {
	query, args, err := buildListQuery("notes", models.ListOptions{IncludeArchived: true})
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE is_deleted = $1 ORDER BY updated_at DESC")
	assert.Equal(t, []any{false}, args)
}
