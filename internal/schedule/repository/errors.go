package repository

import "errors"

// Store errors shared by all adapters.
var (
	ErrNotFound    = errors.New("store: object not found")
	ErrWriteFailed = errors.New("store: write rejected")
)
