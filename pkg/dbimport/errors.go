package dbimport

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrArchive indicates an existing output file could not be archived.
var ErrArchive = errors.New("archive failed")

// ArchiveError represents a failure to rename an existing output file.
type ArchiveError struct {
	Path   string
	Target string
	Err    error
}

func (e *ArchiveError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("checking existing file %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("renaming existing file %s to %s: %v", e.Path, e.Target, e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrArchive.
func (e *ArchiveError) Is(target error) bool {
	return target == ErrArchive
}

// ExtractionError represents an unexpected error while reading a sheet.
type ExtractionError struct {
	SheetName string
	Component string // "open", "rows"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("unexpected error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
