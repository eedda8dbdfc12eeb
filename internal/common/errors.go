// Package common defines sentinel errors shared by the setup steps.
// Each step wraps the underlying cause with one of these values so callers
// can tell the failing stage apart with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// Filesystem errors.
	ErrCreateDir = errors.New("directory creation failed")

	// Database errors.
	ErrOpenDatabase = errors.New("database open failed")
	ErrSchema       = errors.New("schema creation failed")

	// Config document errors.
	ErrInvalidDocument = errors.New("invalid config document")
	ErrConfigWrite     = errors.New("config write failed")
)
