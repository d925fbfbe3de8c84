package service

import (
	"errors"
	"fmt"
)

var (
	ErrMissingBody   = errors.New("body is required")
	ErrMalformedBody = errors.New("body is not valid json")
	ErrMissingField  = errors.New("url is required")
	ErrInvalidURL    = errors.New("url is not valid")
	ErrInvalidPath   = errors.New("path is not valid")
	ErrNotFound      = errors.New("path not found")
	ErrPathExhausted = errors.New("could not allocate a unique path")
)

// StorageError reports a datastore failure during Op. It is transient from
// the caller's point of view; no retry happens here.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
