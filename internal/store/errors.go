package store

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	apperrors "github.com/postboard/postboard-backend/errors"
)

// ErrNotFound indicates that a requested resource was not found.
var ErrNotFound = errors.New("resource not found")

const unknownDatabaseErrorMessage = "Unknown database error"

var storeErrorMessages = map[string]string{
	pgerrcode.StringDataRightTruncationDataException: "Value too long for a column",
	pgerrcode.ForeignKeyViolation:                    "Foreign key constraint failed",
	pgerrcode.CheckViolation:                         "A constraint failed on the database",
	pgerrcode.NotNullViolation:                       "A constraint failed on the database",
	pgerrcode.DatatypeMismatch:                       "Invalid value stored in the database for a field",
	pgerrcode.InvalidTextRepresentation:              "Invalid value provided for a field",
	pgerrcode.InvalidParameterValue:                  "Data validation error",
	pgerrcode.NoDataFound:                            "Record not found",
	pgerrcode.NumericValueOutOfRange:                 "Number out of range for the field type",
	pgerrcode.TooManyConnections:                     "Too many database connections",
}

// keyColumns matches the column list in a unique violation detail, e.g.
// `Key (email)=(a@b.co) already exists.`
var keyColumns = regexp.MustCompile(`Key \(([^)]+)\)=`)

// TranslateError maps a storage failure onto a DatabaseError with a stable message. Driver
// text is never copied into the message. An error that already is a DatabaseError is returned
// unchanged.
func TranslateError(err error) *apperrors.AppError {
	if appErr, ok := apperrors.As(err); ok && appErr.Type == apperrors.DatabaseError {
		return appErr
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, ErrNotFound) {
		return apperrors.NewDatabaseError(storeErrorMessages[pgerrcode.NoDataFound], pgerrcode.NoDataFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code == "" {
		return apperrors.NewDatabaseError(unknownDatabaseErrorMessage, "", err)
	}

	if pgErr.Code == pgerrcode.UniqueViolation {
		msg := fmt.Sprintf("Unique constraint failed on fields: %s", uniqueFields(pgErr))
		return apperrors.NewDatabaseError(msg, pgErr.Code, err)
	}

	if msg, ok := storeErrorMessages[pgErr.Code]; ok {
		return apperrors.NewDatabaseError(msg, pgErr.Code, err)
	}

	return apperrors.NewDatabaseError(fmt.Sprintf("Unhandled database error: %s", pgErr.Code), pgErr.Code, err)
}

func uniqueFields(pgErr *pgconn.PgError) string {
	if m := keyColumns.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
		cols := strings.Split(m[1], ",")
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
		return strings.Join(cols, ", ")
	}
	if pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}
	return "unknown"
}
