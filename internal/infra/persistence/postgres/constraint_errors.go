package postgres

import (
	"strings"

	domainerrors "crm/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// translateError maps a GORM failure to a domain database error, naming the violated constraint class.
func translateError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		details += ": unique constraint violated"
	case isNotNullConstraintViolation(err):
		details += ": not null constraint violated"
	case isCheckConstraintViolation(err):
		details += ": check constraint violated"
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotNullConstraintViolation(err error) bool {
	// PostgreSQL reports not_null_violation as SQLSTATE 23502
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502")
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
