package cleanup

import "errors"

// Standard errors returned while organizing a directory.
var (
	// Path resolution errors
	ErrSourceNotFound = errors.New("cleanup: source not found")
	ErrNotDirectory   = errors.New("cleanup: not a directory")
	ErrInvalidPath    = errors.New("cleanup: invalid path")

	// File operation errors
	ErrNoExtension     = errors.New("cleanup: failed to resolve extension")
	ErrCreateDirectory = errors.New("cleanup: failed to create directory")
	ErrMoveFailed      = errors.New("cleanup: failed to move file")
	ErrJournal         = errors.New("cleanup: failed to record move")
)
