package repository

import "errors"

var (
	// ErrCorruptStore marks an unparsable or inconsistent backing file.
	// The original file is left intact for manual recovery.
	ErrCorruptStore = errors.New("corrupt task store")

	// ErrStoreWrite marks a failed save. The destination file is guaranteed
	// unchanged and the temporary file removed.
	ErrStoreWrite = errors.New("task store write failed")
)
