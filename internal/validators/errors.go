package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrTitleRequired    = errors.New("title is required")
	ErrBlankTag         = errors.New("tags must not be blank")
	ErrInvalidNoteID    = errors.New("invalid note id")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
