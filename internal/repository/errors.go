package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist.
// Wrapped with entity context, e.g. fmt.Errorf("task: %w", ErrNotFound).
var ErrNotFound = errors.New("not found")
