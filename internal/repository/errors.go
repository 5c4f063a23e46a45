package repository

import "errors"

// ErrStoreQuery marks a read or write against the attendance store that
// could not complete.
var ErrStoreQuery = errors.New("attendance store query failed")
