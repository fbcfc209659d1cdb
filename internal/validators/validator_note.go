package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	FieldID     = "id"
	FieldTitle  = "title"
	FieldTags   = "tags"
	FieldFields = "fields"
)

type NoteValidator struct{}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.NoteDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.NoteDraft:
		return v.validateDraft(ctx, *value, fields...)

	case models.NotePatch:
		return v.validatePatch(ctx, value, fields...)
	case *models.NotePatch:
		return v.validatePatch(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	return nil
}

func validateTags(tags []string) error {
	for i, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("tag at index %d: %w", i, ErrBlankTag)
		}
	}
	return nil
}

func (v *NoteValidator) validateNote(ctx context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(note.ID) == "" {
				return ErrInvalidNoteID
			}
		case FieldTitle:
			if err := validateTitle(note.Title); err != nil {
				return err
			}
		case FieldTags:
			if err := validateTags(note.Tags); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateDraft(ctx context.Context, draft models.NoteDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateTitle(draft.Title); err != nil {
				return err
			}
		case FieldTags:
			if err := validateTags(draft.Tags); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePatch only checks the fields the patch sets.
func (v *NoteValidator) validatePatch(ctx context.Context, patch models.NotePatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFields, FieldTitle, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldFields:
			if patch.Empty() {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if patch.Title != nil {
				if err := validateTitle(*patch.Title); err != nil {
					return err
				}
			}
		case FieldTags:
			if patch.Tags != nil {
				if err := validateTags(*patch.Tags); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
