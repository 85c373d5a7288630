package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrNotebookNotFound indicates the notebook doesn't exist in the project.
	ErrNotebookNotFound = errors.New("notebook not found")
	// ErrDuplicateID indicates an id collision with an existing entity.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrInvalidInput indicates invalid caller input.
	ErrInvalidInput = errors.New("invalid input")
)
