package forecast

import (
	"errors"
	"fmt"
)

// ErrDataNotFound indicates an input file is missing or unreadable.
var ErrDataNotFound = errors.New("forecast data not found")

// ErrUnknownPlayerType indicates a player type other than batsman or bowler.
var ErrUnknownPlayerType = errors.New("unknown player type")

// DataNotFoundError names the input file that could not be read.
type DataNotFoundError struct {
	Path string
	Err  error
}

func (e *DataNotFoundError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrDataNotFound, e.Path, e.Err)
}

func (e *DataNotFoundError) Unwrap() []error {
	return []error{ErrDataNotFound, e.Err}
}

// SchemaError reports a malformed input file. Line is 1-based and counts the
// header; it is zero when the problem is with the header itself.
type SchemaError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *SchemaError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("schema error in %s: column %q: %v", e.Path, e.Column, e.Err)
	case e.Column == "":
		return fmt.Sprintf("schema error in %s line %d: %v", e.Path, e.Line, e.Err)
	default:
		return fmt.Sprintf("schema error in %s line %d column %q: %v", e.Path, e.Line, e.Column, e.Err)
	}
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

type UnknownPlayerTypeError struct {
	Value string
}

func (e *UnknownPlayerTypeError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownPlayerType, e.Value)
}

func (e *UnknownPlayerTypeError) Unwrap() error {
	return ErrUnknownPlayerType
}

var (
	errMissingColumn = errors.New("required column missing")
	errEmptyPlayer   = errors.New("player name is empty")
	errNotNumeric    = errors.New("forecast is not a finite number")
)
