// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"fmt"
	"strings"

	"go4.org/mem"
)

// A Position describes the location of a character in source text.
type Position struct {
	Line   int // line number, 0-based
	Column int // character offset of column in line, 0-based
	Offset int // byte offset from the start of the text, 0-based
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// An Input is an immutable cursor over a text. The methods of an Input never
// modify it; advancing the cursor returns a new Input value.
type Input struct {
	text  mem.RO
	pos   Position
	lbase int // byte offset of the start of the current line
}

// FromString constructs an Input positioned at the beginning of text.
// The empty string is valid input, already at its end.
func FromString(text string) Input { return Input{text: mem.S(text)} }

// Pos reports the current position of in.
func (in Input) Pos() Position { return in.pos }

// AtEnd reports whether in has no further characters.
func (in Input) AtEnd() bool { return in.pos.Offset >= in.text.Len() }

// Remaining returns a copy of the unconsumed text of in.
func (in Input) Remaining() string { return in.text.SliceFrom(in.pos.Offset).StringCopy() }

// Next returns the character at the cursor of in and an Input advanced past
// that character. If in is at the end of its text, Next returns 0, in, false.
//
// Advancing past a newline increments the line number and resets the column
// to 0. Invalid UTF-8 is reported as utf8.RuneError and advances one byte.
func (in Input) Next() (rune, Input, bool) {
	if in.AtEnd() {
		return 0, in, false
	}
	r, n := mem.DecodeRune(in.text.SliceFrom(in.pos.Offset))
	if n == 0 {
		n = 1
	}
	next := in
	next.pos.Offset += n
	if r == '\n' {
		next.pos.Line++
		next.pos.Column = 0
		next.lbase = next.pos.Offset
	} else {
		next.pos.Column++
	}
	return r, next, true
}

// CurrentLine returns the complete line of text containing the cursor of in,
// not including its line terminator ("\n" or "\r\n").
func (in Input) CurrentLine() string {
	line := in.text.SliceFrom(in.lbase)
	if i := mem.IndexByte(line, '\n'); i >= 0 {
		line = line.SliceTo(i)
	}
	return strings.TrimSuffix(line.StringCopy(), "\r")
}
