package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when the targeted note does not exist or is
	// hidden by the requested scope.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoteRejected is returned when the database refuses a note because of
	// a constraint or a row-level security policy.
	ErrNoteRejected = errors.New("note was rejected by the database")

	// ErrDatabaseUnavailable is returned for connection-class failures.
	ErrDatabaseUnavailable = errors.New("database unavailable")

	// ErrSessionSealed is returned when a sealed session is stored but no
	// passphrase was configured to open it.
	ErrSessionSealed = errors.New("stored session is sealed")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query fails for any other reason.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan note row")
)
