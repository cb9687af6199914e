package db

import "github.com/cockroachdb/errors"

// Sentinel errors for database operations.
var (
	ErrKeyNotFound = errors.New("db: key not found")
)

// Op names used for error context and metrics labels.
const (
	OpFetchObject      = "fetch_object"
	OpFetchAliases     = "fetch_aliases"
	OpFetchCommonNames = "fetch_common_names"
	OpFetchAliasTarget = "fetch_alias_target"
	OpFetchPredicates  = "fetch_predicates"
	OpPing             = "ping"
	OpGet              = "GET"
	OpSet              = "SET"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
