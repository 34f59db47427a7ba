package task

import "errors"

// These conditions are absorbed by the store and only ever logged.
var (
	ErrDuplicateTitle = errors.New("a task with this title already exists")
	ErrUnknownID      = errors.New("unknown task id")
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrPromptPending  = errors.New("a prompt is waiting for an answer")
)
