package repositories

import "errors"

// ErrNotFound reports that a referenced record does not exist. Handlers
// map it to HTTP 404; every other repository error is a store failure.
var ErrNotFound = errors.New("record not found")
