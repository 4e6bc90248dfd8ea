package apperr

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidDate   = errors.New("invalid note date")
	ErrAborted       = errors.New("aborted by user")
)
