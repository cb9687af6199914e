package domain

import "github.com/cockroachdb/errors"

var (
	// ErrFormat signals malformed or out-of-range text input (coordinates, catalog numbers).
	ErrFormat = errors.New("format error")
	// ErrUnknownCatalog signals an identifier whose prefix matches no supported catalog.
	ErrUnknownCatalog = errors.New("unknown catalog")
	// ErrObjectNotFound signals a well-formed identifier that has no record.
	ErrObjectNotFound = errors.New("object not found")
	// ErrCorruptCatalog signals referential inconsistency in stored data.
	ErrCorruptCatalog = errors.New("corrupt catalog")
	// ErrInvalidCriteria signals an invalid filter or search argument.
	ErrInvalidCriteria = errors.New("invalid criteria")
	// ErrNoCoordinates signals an operation that needs coordinates on an object that has none.
	ErrNoCoordinates = errors.New("object has no registered coordinates")
)

// KeyPrefix is the namespace of every cache key written by ngcdex.
const KeyPrefix = "ngcdex:"

// ObjectNotFound wraps ErrObjectNotFound with the looked-up name.
func ObjectNotFound(name string) error {
	return errors.Wrapf(ErrObjectNotFound, "object named %s", name)
}

// InvalidCriteria wraps ErrInvalidCriteria with a formatted reason.
func InvalidCriteria(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidCriteria, format, args...)
}

// FormatError wraps ErrFormat with a formatted reason.
func FormatError(format string, args ...any) error {
	return errors.Wrapf(ErrFormat, format, args...)
}

// CorruptCatalog wraps ErrCorruptCatalog with a formatted reason.
func CorruptCatalog(format string, args ...any) error {
	return errors.Wrapf(ErrCorruptCatalog, format, args...)
}
