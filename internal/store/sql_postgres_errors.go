package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyNoteError maps a driver error onto the repository sentinels,
// keeping the original error in the chain.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func classifyNoteError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNoteNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	switch pgErr.Code {
	case pgerrcode.NoDataFound:
		return fmt.Errorf("%w: %w", ErrNoteNotFound, err)

	// Class 22 data exceptions: malformed uuid, value too long.
	case pgerrcode.InvalidTextRepresentation,
		pgerrcode.StringDataRightTruncationDataException,
		pgerrcode.NullValueNotAllowedDataException:
		return fmt.Errorf("%w: %w", ErrNoteRejected, err)

	// Class 23 integrity constraint violations.
	case pgerrcode.IntegrityConstraintViolation,
		pgerrcode.RestrictViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.UniqueViolation,
		pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %w", ErrNoteRejected, err)

	// Row-level security refusals.
	case pgerrcode.InsufficientPrivilege:
		return fmt.Errorf("%w: %w", ErrNoteRejected, err)

	// Class 08 connection exceptions and 57P03.
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown:
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
