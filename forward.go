// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"errors"
	"fmt"
)

var (
	// ErrUnpatchedForwardRef is reported (by panic) when a forwarded parser is
	// run before its target has been patched in.
	ErrUnpatchedForwardRef = errors.New("unpatched forward reference")

	// ErrRepatchedForwardRef is reported (by panic) when a forwarded parser is
	// patched more than once.
	ErrRepatchedForwardRef = errors.New("forward reference already patched")
)

// A Patch binds the target of a forwarded parser. See Forwarded.
type Patch[T any] struct {
	label  string
	target *Parser[T] // nil until patched
}

// Forwarded returns a parser that forwards to a target parser not yet
// defined, and a Patch to set the target once it has been constructed.
// This allows mutually recursive grammar rules to refer to one another.
//
//	value, patch := jcomb.Forwarded[Node]("value")
//	list := jcomb.Between(open, jcomb.SepBy(value, comma), close)
//	patch.Patch(jcomb.Choice(atom, list))
//
// The returned parser panics with an error wrapping ErrUnpatchedForwardRef if
// it is run before Patch is called. Such a panic reports a bug in the
// construction of the grammar, not an error in the input, and is never
// converted into a parse failure.
//
// Patch must be called exactly once, before the parser is shared among
// goroutines. After that the parser is safe for concurrent use.
func Forwarded[T any](label string) (Parser[T], *Patch[T]) {
	cell := &Patch[T]{label: label}
	return New(label, func(in Input) Result[T] {
		if cell.target == nil {
			panic(fmt.Errorf("run %q: %w", cell.label, ErrUnpatchedForwardRef))
		}
		return cell.target.Run(in)
	}), cell
}

// Patch sets the target of the forwarded parser. It panics with an error
// wrapping ErrRepatchedForwardRef if the target was already set.
func (p *Patch[T]) Patch(target Parser[T]) {
	if p.target != nil {
		panic(fmt.Errorf("patch %q: %w", p.label, ErrRepatchedForwardRef))
	}
	p.target = &target
}
