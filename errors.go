// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jview

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidType is the underlying error of every *TypeError.
	ErrInvalidType = errors.New("invalid token type")

	// ErrNotCollapsible is reported when collapsing a token that is not one
	// side of an array or object.
	ErrNotCollapsible = errors.New("token is not collapsible")

	// ErrNoSuchToken is reported for a token index out of range.
	ErrNoSuchToken = errors.New("no such token")
)

// TypeError is the concrete type of errors reported by Tokenize when the
// input contains a value that is not a JSON value.
type TypeError struct {
	Name  string // the name from the tokenizer options, if set
	Path  string // the access path of the offending value
	Value any    // the offending value
}

// Error satisfies the error interface.
func (e *TypeError) Error() string {
	msg := fmt.Sprintf("%v: %T", ErrInvalidType, e.Value)
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Name != "" {
		return fmt.Sprintf("[%s] %s", e.Name, msg)
	}
	return msg
}

// Unwrap supports error wrapping.
func (e *TypeError) Unwrap() error { return ErrInvalidType }

// SyntaxError is the concrete type of errors reported by Decode when its
// input is not valid JSON.
type SyntaxError struct {
	Offset   int64   // byte offset of the error in the input
	Location LineCol // line and column of Offset

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %v", s.Location, s.err)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
