// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"fmt"
	"strings"
)

// ParseError is the concrete type of errors reported by a failing parser.
type ParseError struct {
	Label   string   // the name of what was being parsed
	Message string   // what went wrong
	Pos     Position // where the failure is reported

	src   Input // the input at Pos, for recovering the source line
	reach int   // furthest byte offset examined by the failing attempt
}

// errorAt constructs a ParseError for the current position of in, with the
// given reach offset.
func errorAt(in Input, reach int, label, msg string) *ParseError {
	return &ParseError{
		Label:   label,
		Message: msg,
		Pos:     in.Pos(),
		src:     in,
		reach:   reach,
	}
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("at %s: parsing %s: %s", e.Pos, e.Label, e.Message)
}

// Line returns the source text of the line where the error was reported.
func (e *ParseError) Line() string { return e.src.CurrentLine() }

// Diagnostic renders e as a header line followed by the offending source line
// and a caret under the failing column:
//
//	Line:0 Col:3 Error parsing null
//	nulp
//	   ^Unexpected 'p'
func (e *ParseError) Diagnostic() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Line:%d Col:%d Error parsing %s\n", e.Pos.Line, e.Pos.Column, e.Label)
	line := e.Line()
	sb.WriteString(line)
	sb.WriteByte('\n')
	sb.WriteString(caretPad(line, e.Pos.Column))
	sb.WriteByte('^')
	sb.WriteString(e.Message)
	return sb.String()
}

// caretPad returns the padding to place under the first col characters of
// line. Tabs are preserved so the caret lines up in a terminal.
func caretPad(line string, col int) string {
	pad := make([]byte, 0, col)
	for _, r := range line {
		if len(pad) == col {
			break
		}
		if r == '\t' {
			pad = append(pad, '\t')
		} else {
			pad = append(pad, ' ')
		}
	}
	for len(pad) < col {
		pad = append(pad, ' ')
	}
	return string(pad)
}

// withLabel returns a copy of e reporting the given label.
func (e *ParseError) withLabel(label string) *ParseError {
	c := *e
	c.Label = label
	return &c
}

// further returns whichever of a and b examined more of the input, preferring
// b if they reach equally far. Either may be nil.
func further(a, b *ParseError) *ParseError {
	if a != nil && (b == nil || a.reach > b.reach) {
		return a
	}
	return b
}

// A Result is the outcome of running a Parser[T]. A successful result holds a
// value and the remaining input; a failed result holds only a *ParseError.
//
// A successful result may also remember the furthest-reaching failure that
// was discarded while producing it, such as the attempt that ended a Many or
// an Opt that matched nothing. If a later step in the same sequence fails
// without reaching as far, that earlier failure is reported instead.
type Result[T any] struct {
	value T
	rest  Input
	err   *ParseError
	hint  *ParseError // discarded failure, successes only
}

// Success constructs a successful result with value v and remaining input.
func Success[T any](v T, rest Input) Result[T] { return Result[T]{value: v, rest: rest} }

// Failure constructs a failed result reporting err, which must not be nil.
func Failure[T any](err *ParseError) Result[T] {
	if err == nil {
		panic("jcomb: failure with nil error")
	}
	return Result[T]{err: err}
}

// OK reports whether r is a success.
func (r Result[T]) OK() bool { return r.err == nil }

// Value returns the parsed value of r, or the zero T if r is a failure.
func (r Result[T]) Value() T { return r.value }

// Rest returns the input remaining after r, or the zero Input if r is a
// failure.
func (r Result[T]) Rest() Input { return r.rest }

// Err returns the error for a failed result, or nil for a success.
func (r Result[T]) Err() *ParseError { return r.err }

// Get returns the value and error of r as a conventional Go pair.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		return r.value, r.err
	}
	return r.value, nil
}

// fail converts a failure of one type into a failure of another.
func fail[U, T any](r Result[T]) Result[U] { return Result[U]{err: r.err} }

// succeed converts a success of one type into a success with value v,
// keeping the remaining input and discarded failure of r.
func succeed[U, T any](r Result[T], v U) Result[U] {
	return Result[U]{value: v, rest: r.rest, hint: r.hint}
}

// PrintResult renders r for display. A success renders its value with the
// %v verb; a failure renders the diagnostic described by ParseError.Diagnostic.
func PrintResult[T any](r Result[T]) string {
	if r.err != nil {
		return r.err.Diagnostic()
	}
	return fmt.Sprintf("%v", r.value)
}
