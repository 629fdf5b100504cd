package repository

import (
	"errors"
	"fmt"

	"portfolio/internal/model"
)

// ErrSectionNotFound is returned by sources when a section has no document.
var ErrSectionNotFound = errors.New("section document not found")

// LoadError is the single error type callers see when a section cannot be
// read, parsed or validated. The original cause is kept for errors.As/Is.
type LoadError struct {
	Section model.Section
	File    string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func newLoadError(section model.Section, err error) *LoadError {
	return &LoadError{Section: section, File: section.FileName(), Err: err}
}
