package postgres

import (
	"context"

	domainerrors "register/internal/domain/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Unique index names declared on the persistence models.
const (
	constraintCredentialsUsername = "uq_credentials_username"
	constraintCredentialsEmail    = "uq_credentials_email"
	constraintPersonsCPF          = "uq_persons_cpf"
)

var constraintErrors = map[string]*domainerrors.BaseError{
	constraintCredentialsUsername: domainerrors.ErrDuplicateUsername,
	constraintCredentialsEmail:    domainerrors.ErrDuplicateEmail,
	constraintPersonsCPF:          domainerrors.ErrDuplicateCPF,
}

// translateError maps driver errors onto the domain taxonomy. Unique
// violations are resolved by constraint name; fallback is used when the
// driver reports a duplicate without naming the index. Timeouts and lost
// connections become ErrTransientStore.
func translateError(err error, fallback *domainerrors.BaseError, details string) error {
	if err == nil {
		return nil
	}

	if isUniqueConstraintViolation(err) {
		if known, ok := constraintErrors[violatedConstraint(err)]; ok {
			return known
		}
		if fallback != nil {
			return fallback
		}
	}

	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails(details + ": missing required column")
	}

	if isTransient(err) {
		return domainerrors.ErrTransientStore.WithDetails(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func violatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.NotNullViolation
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsConnectionException(pgErr.Code) ||
			pgErr.Code == pgerrcode.QueryCanceled ||
			pgErr.Code == pgerrcode.AdminShutdown ||
			pgErr.Code == pgerrcode.CannotConnectNow
	}

	var connectErr *pgconn.ConnectError

	return errors.As(err, &connectErr)
}
