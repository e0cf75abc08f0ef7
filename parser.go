// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcomb

import "fmt"

// A Parser[T] recognizes a prefix of an Input and produces a value of type T.
// The label of a parser names what it recognizes, for use in error messages.
//
// Parsers are immutable values and are safe for concurrent use once
// constructed.
type Parser[T any] struct {
	run   func(Input) Result[T]
	label string
}

// New constructs a parser with the given label and run function.
// The run function must not modify shared state.
func New[T any](label string, run func(Input) Result[T]) Parser[T] {
	return Parser[T]{run: run, label: label}
}

// Label returns the label of p.
func (p Parser[T]) Label() string { return p.label }

// Run applies p to in.
func (p Parser[T]) Run(in Input) Result[T] {
	if p.run == nil {
		panic("jcomb: run of zero Parser")
	}
	return p.run(in)
}

// Run applies p to the complete text, beginning at line 0, column 0.
// It does not require p to consume all the text; check the remaining input
// of the result or sequence p with EndOfInput if that is needed.
func Run[T any](p Parser[T], text string) Result[T] { return p.Run(FromString(text)) }

// Satisfy returns a parser that consumes exactly one character for which pred
// returns true. Otherwise it fails with the given label, without consuming.
func Satisfy(pred func(rune) bool, label string) Parser[rune] {
	return New(label, func(in Input) Result[rune] {
		ch, next, ok := in.Next()
		if !ok {
			return Failure[rune](errorAt(in, in.pos.Offset, label, "No more input"))
		} else if !pred(ch) {
			return Failure[rune](errorAt(in, in.pos.Offset, label, fmt.Sprintf("Unexpected %s", quoteRune(ch))))
		}
		return Success(ch, next)
	})
}

// SetLabel returns a parser that behaves as p does, except that its failures
// report label instead of the label of p.
func SetLabel[T any](p Parser[T], label string) Parser[T] {
	return New(label, func(in Input) Result[T] {
		r := p.Run(in)
		if r.err != nil {
			r.err = r.err.withLabel(label)
		}
		return r
	})
}

// Fail returns a parser that always fails at its input position with the
// given label and message.
func Fail[T any](label, msg string) Parser[T] {
	return New(label, func(in Input) Result[T] {
		return Failure[T](errorAt(in, in.pos.Offset, label, msg))
	})
}

// quoteRune renders ch between single quotes, escaping only characters that
// would not print legibly in a diagnostic.
func quoteRune(ch rune) string {
	if ch < ' ' || ch == 0x7f {
		return fmt.Sprintf("%+q", ch)
	}
	return "'" + string(ch) + "'"
}
