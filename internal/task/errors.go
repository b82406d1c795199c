package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrValidation   = errors.New("invalid task field")
	ErrTaskNotFound = errors.New("task not found")
	ErrAlreadyDone  = errors.New("task is already done")
)
