package hashtable

import "errors"

var (
	// ErrEntryNotFound is returned by Remove when the key is absent.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrDestroyed is the panic value for any operation on a destroyed table.
	ErrDestroyed = errors.New("hashtable already destroyed")

	ErrInvalidConfig = errors.New("invalid hashtable config")
)
