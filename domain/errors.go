package domain

import (
	"fmt"
	"strings"
)

// MissingInputError is returned when the simulator output file does not exist.
type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input file %q not found: %v", e.Path, e.Err)
}

func (e *MissingInputError) Unwrap() error { return e.Err }

// DataFormatError reports a malformed input table. Line is 1-based and
// counts the header; zero means the problem is not tied to a line.
type DataFormatError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *DataFormatError) Error() string {
	var b strings.Builder
	b.WriteString("malformed input ")
	b.WriteString(fmt.Sprintf("%q", e.Path))
	if e.Line > 0 {
		b.WriteString(fmt.Sprintf(" line %d", e.Line))
	}
	if e.Column != "" {
		b.WriteString(fmt.Sprintf(" column %s", e.Column))
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *DataFormatError) Unwrap() error { return e.Err }

type MissingCapacityError struct {
	Scenario int
}

func (e *MissingCapacityError) Error() string {
	return fmt.Sprintf("no link capacity known for scenario %d", e.Scenario)
}

// IOError is returned when an output artifact cannot be written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
