package orrery

import (
	"errors"
	"fmt"
)

// Error kinds returned by the loaders. Match them with errors.Is.
var (
	ErrFileNotFound    = errors.New("mesh source not readable")
	ErrFormat          = errors.New("malformed mesh description")
	ErrIndexOutOfRange = errors.New("face index out of range")
	ErrDegenerateFace  = errors.New("degenerate face")
)

var (
	errBadIndex        = errors.New("index is not an integer")
	errTooManySegments = errors.New("more than three index segments")
)

// LoadError describes why a mesh could not be loaded. Line is the 1-based
// source line and Face the 1-based face ordinal; either is zero when unknown.
type LoadError struct {
	Kind   error
	Line   int
	Face   int
	Detail string
	Err    error
}

func (e *LoadError) Error() string {
	msg := e.Kind.Error()
	switch {
	case e.Line > 0 && e.Face > 0:
		msg = fmt.Sprintf("line %d (face %d): %s", e.Line, e.Face, msg)
	case e.Line > 0:
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	case e.Face > 0:
		msg = fmt.Sprintf("face %d: %s", e.Face, msg)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return "orrery: " + msg
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func formatError(line int, format string, args ...interface{}) *LoadError {
	return &LoadError{Kind: ErrFormat, Line: line, Detail: fmt.Sprintf(format, args...)}
}
