package messmenu

import (
	"errors"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNotEnoughRows indicates the first sheet has fewer than two rows.
var ErrNotEnoughRows = errors.New("not enough rows")

// ErrNoDayHeaders indicates no header row with day names was found.
var ErrNoDayHeaders = errors.New("no day header row")

// ErrNoDayColumns indicates the header row yielded no day columns.
var ErrNoDayColumns = errors.New("no day columns")

// ErrNoItems indicates the sheet was laid out correctly but held no menu items.
var ErrNoItems = errors.New("no menu items")

const parseFailurePrefix = "Failed to parse Excel file: "

// StructuralError means the sheet layout could not be understood.
// Parsing stops and the menu is left empty.
type StructuralError struct {
	// Reason is the admin-facing explanation.
	Reason string
	Err    error
}

func (e *StructuralError) Error() string {
	return parseFailurePrefix + e.Reason
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// ContentError means the layout was understood but no items were extracted.
type ContentError struct {
	DaysFound int
}

func (e *ContentError) Error() string {
	return "No menu items found in the Excel file. Please check the file format and ensure food items are listed."
}

func (e *ContentError) Unwrap() error {
	return ErrNoItems
}

func newStructuralError(reason string, err error) *StructuralError {
	return &StructuralError{Reason: reason, Err: err}
}
