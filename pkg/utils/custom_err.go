package utils

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTripNotFound       = errors.New("trip not found")
	ErrStopNotFound       = errors.New("stop not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrBudgetNotFound     = errors.New("budget not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrProfileExists      = errors.New("profile already exists")
	ErrConflict           = errors.New("resource conflict")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidDateRange   = errors.New("end date must be on or after start date")
	ErrDatabaseError      = errors.New("database error")
)

// TranslateDBError maps constraint violations surfaced by gorm's
// TranslateError mode onto the given conflict sentinel. A write that races
// past an application-level pre-check still lands on the conflict path
// instead of reading as an infrastructure failure.
func TranslateDBError(err error, conflict error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return conflict
	}
	return ErrDatabaseError
}
