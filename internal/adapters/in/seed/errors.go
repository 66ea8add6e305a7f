package seed

import "fmt"

// LoadError reports a fixture file that could not be loaded.
// Index is the zero-based position of the offending entry, or -1 when the
// file as a whole is at fault.
type LoadError struct {
	Path  string
	Index int
	Field string
	Err   error
}

func (e *LoadError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("seed %s: %v", e.Path, e.Err)
	case e.Field != "":
		return fmt.Sprintf("seed %s: trainings[%d].%s: %v", e.Path, e.Index, e.Field, e.Err)
	default:
		return fmt.Sprintf("seed %s: trainings[%d]: %v", e.Path, e.Index, e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func fileError(path string, err error) error {
	return &LoadError{Path: path, Index: -1, Err: err}
}

func entryError(path string, index int, err error) error {
	return &LoadError{Path: path, Index: index, Err: err}
}

func fieldError(path string, index int, field string, err error) error {
	return &LoadError{Path: path, Index: index, Field: field, Err: err}
}
