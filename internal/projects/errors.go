package projects

import "errors"

var (
	// ErrEmptyName rejects a create or update whose name is blank.
	ErrEmptyName = errors.New("project name is required")

	// ErrProjectNotFound reports a lookup against a deleted or unknown id.
	ErrProjectNotFound = errors.New("project not found")
)
