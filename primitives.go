// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/creachadair/mds/mapset"
)

// Char returns a parser that matches exactly the character c.
func Char(c rune) Parser[rune] {
	return Satisfy(func(ch rune) bool { return ch == c }, quoteRune(c))
}

// AnyOf returns a parser that matches any one of the specified characters.
// Its label is a description of the set.
func AnyOf(cs ...rune) Parser[rune] {
	set := mapset.New(cs...)
	return Satisfy(set.Has, fmt.Sprintf("any of %q", string(cs)))
}

// String returns a parser that matches the literal string s. The match is all
// or nothing: if any character of s does not match, the parser fails at the
// position of the first mismatched character and consumes nothing.
func String(s string) Parser[string] {
	label := strconv.Quote(s)
	return New(label, func(in Input) Result[string] {
		cur := in
		for _, want := range s {
			ch, next, ok := cur.Next()
			if !ok {
				return Failure[string](errorAt(cur, cur.pos.Offset, label, "No more input"))
			} else if ch != want {
				return Failure[string](errorAt(cur, cur.pos.Offset, label, "Unexpected "+quoteRune(ch)))
			}
			cur = next
		}
		return Success(s, cur)
	})
}

// EndOfInput is a parser that succeeds without consuming if its input is
// exhausted, and fails otherwise.
var EndOfInput = New("end of input", func(in Input) Result[struct{}] {
	if ch, _, ok := in.Next(); ok {
		return Failure[struct{}](errorAt(in, in.pos.Offset, "end of input", "Unexpected "+quoteRune(ch)))
	}
	return Success(struct{}{}, in)
})

var (
	// Digit matches a single decimal digit 0-9.
	Digit = Satisfy(isDigit, "digit")

	// Whitespace matches a single whitespace character.
	Whitespace = Satisfy(unicode.IsSpace, "whitespace")

	// Spaces matches zero or more whitespace characters.
	Spaces = Many(Whitespace)

	// Spaces1 matches one or more whitespace characters.
	Spaces1 = Many1(Whitespace)

	// Int matches an optionally-negated decimal integer.
	Int = SetLabel(Bind(
		AndThen(Opt(Char('-')), ManyChars1(Digit)),
		func(v Pair[Maybe[rune], string]) Parser[int] {
			s := v.Second
			if v.First.Present() {
				s = "-" + s
			}
			z, err := strconv.Atoi(s)
			if err != nil {
				return Fail[int]("integer", "integer out of range")
			}
			return Return(z)
		}), "integer")
)

// ManyChars returns a parser that matches zero or more of the characters
// matched by p, and returns them as a string.
func ManyChars(p Parser[rune]) Parser[string] {
	return Map(Many(p), func(cs []rune) string { return string(cs) })
}

// ManyChars1 returns a parser that matches one or more of the characters
// matched by p, and returns them as a string.
func ManyChars1(p Parser[rune]) Parser[string] {
	return Map(Many1(p), func(cs []rune) string { return string(cs) })
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }
