package application

import (
	"errors"
	"fmt"

	"worklog/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound          = errors.New("not found")
	ErrEmptyContent      = errors.New("empty content after processing")
	ErrDuplicateTemplate = errors.New("template with this content already exists")
	ErrInvalidRange      = domain.ErrInvalidRange
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StorageError wraps a persistence failure. Persistence runs exactly
// once after each mutation and is not retried; the caller decides user
// messaging.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
