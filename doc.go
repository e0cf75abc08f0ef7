// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jcomb implements a parser combinator library.
//
// # Parsers
//
// A Parser[T] recognizes a prefix of an Input and produces a value of type T.
// Running a parser yields a Result[T], which is either a success holding the
// value and the remaining input, or a failure holding a *ParseError:
//
//	r := jcomb.Run(jcomb.String("null"), "nulp")
//	if !r.OK() {
//	   fmt.Println(jcomb.PrintResult(r))
//	}
//
// prints a diagnostic with the offending line and a caret under the column
// where the failure was reported:
//
//	Line:0 Col:3 Error parsing "null"
//	nulp
//	   ^Unexpected 'p'
//
// An Input is an immutable cursor over the source text. Consuming a character
// returns a new Input, so a parser can always retry an alternative from the
// Input it was given. Lines and columns are counted from 0.
//
// # Combinators
//
// Larger parsers are built from smaller ones with combinator functions:
//
//	Combinator   | Notation | Description
//	------------ | -------- | ------------------------------------------
//	AndThen      | .>>.     | p1 then p2, keep both values
//	Left, Right  | .>> >>.  | p1 then p2, keep one value
//	OrElse       | <|>      | p1, or else p2 on the same input
//	Choice       |          | the first of several parsers to succeed
//	Map          | |>>      | transform the value of a match
//	Bind, Apply  | >>= <*>  | sequence with a value-dependent continuation
//	Many, Many1  |          | zero/one or more repetitions
//	Opt          |          | an optional match
//	SepBy, SepBy1|          | separated lists
//	Between      |          | a value bracketed by two other matches
//	SetLabel     | <?>      | rename the parser in failure messages
//
// Sequencing commits to each successful left-hand match: if p1 succeeds and
// p2 fails, AndThen fails without trying to match p1 differently. Backtracking
// happens only at OrElse and Choice, which run each alternative on the
// original input.
//
// # Recursive grammars
//
// A grammar rule that refers to itself, directly or through other rules,
// can be expressed with Forwarded, which returns a placeholder parser and a
// Patch to bind its definition once the rules that refer to it exist.
//
// # Errors
//
// Parsers never panic because of the input they are given; mismatches are
// reported as failures. Panics are reserved for construction errors, such as
// running a forwarded parser that was never patched.
//
// Repetition and optional parsers succeed by discarding a failure. When a
// later step of the same sequence fails, whichever of these failures got
// furthest into the input is the one reported. Thus a bad element deep in a
// list is reported where it occurs, not at the closing bracket.
package jcomb
