package repositories

import "errors"

// ErrNotFound is returned by lookups when no row matches. Implementations
// translate their driver's not-found error to this one so callers never
// depend on the store.
var ErrNotFound = errors.New("record not found")
