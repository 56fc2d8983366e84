package backend

import "errors"

var (
	ErrNotExist     = errors.New("backend: file does not exist")
	ErrExist        = errors.New("backend: file already exists")
	ErrIsDirectory  = errors.New("backend: is a directory")
	ErrNotDirectory = errors.New("backend: not a directory")
	ErrPermission   = errors.New("backend: permission denied")
	ErrInvalidPath  = errors.New("backend: invalid path")
	ErrClosed       = errors.New("backend: backend closed")
)
