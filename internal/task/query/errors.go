package query

import "errors"

// ErrInvalidQuery marks an unknown filter or sort key, rejected before any
// task is scanned.
var ErrInvalidQuery = errors.New("invalid query")
