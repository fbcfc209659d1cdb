package export

import "errors"

var (
	ErrNoClosingDelimiter = errors.New("frontmatter started but no closing delimiter found")
	ErrEmptyDir           = errors.New("export directory is not set")
)
