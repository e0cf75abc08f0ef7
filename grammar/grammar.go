// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package grammar implements a JSON parser using the combinators of the jcomb
// package.
//
// The exported parsers recognize the individual productions of the JSON
// grammar (RFC 8259), and Value recognizes any JSON value. Whitespace is
// permitted between the tokens of arrays and objects; a value itself does
// not skip leading whitespace.
//
// Parse runs Value at the start of a text and does not check what follows the
// value. Use ParseAll to parse a complete document.
package grammar

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/creachadair/jcomb"
	"github.com/creachadair/jcomb/jvalue"
)

// Value matches any JSON value. It is defined in terms of itself through
// ArrayOf and ObjectOf, and is patched during package initialization.
var Value, patchValue = jcomb.Forwarded[jvalue.Value]("value")

func init() {
	patchValue.Patch(jcomb.Choice(Null, Bool, Number, String, ArrayOf(Value), ObjectOf(Value)))
}

var (
	// Null matches the constant null.
	Null = jcomb.SetLabel(jcomb.Replace(jcomb.String("null"), jvalue.Value(jvalue.Null{})), "null")

	// Bool matches the constants true and false.
	Bool = jcomb.SetLabel(jcomb.Choice(
		jcomb.Replace(jcomb.String("true"), jvalue.Value(jvalue.Bool(true))),
		jcomb.Replace(jcomb.String("false"), jvalue.Value(jvalue.Bool(false))),
	), "bool")

	// String matches a quoted string and decodes its escapes.
	String = jcomb.Map(QuotedString, func(s string) jvalue.Value { return jvalue.String(s) })

	// Number matches a JSON number. The number must be followed by
	// whitespace, a structural character, or the end of the input.
	Number = jcomb.New("number", func(in jcomb.Input) jcomb.Result[jvalue.Value] {
		r := numberText.Run(in)
		if !r.OK() {
			return jcomb.Failure[jvalue.Value](r.Err())
		}
		f, err := strconv.ParseFloat(r.Value(), 64)
		if err != nil {
			return jcomb.Fail[jvalue.Value]("number", "number out of range").Run(r.Rest())
		}
		return jcomb.Success[jvalue.Value](jvalue.Number(f), r.Rest())
	})

	// QuotedString matches a quoted string and returns its decoded contents.
	// It is used both for string values and for the keys of objects.
	QuotedString = jcomb.SetLabel(jcomb.Between(
		jcomb.Char('"'),
		jcomb.ManyChars(jcomb.Choice(unescapedChar, unicodeChar, escapedChar)),
		jcomb.Char('"'),
	), "quoted string")
)

// Characters of a string.
var (
	unescapedChar = jcomb.Satisfy(func(c rune) bool {
		return c != '"' && c != '\\' && c >= ' '
	}, "char")

	escapedChar = jcomb.SetLabel(jcomb.Right(jcomb.Char('\\'), jcomb.Map(
		jcomb.AnyOf('"', '\\', '/', 'b', 'f', 'n', 'r', 't'),
		func(c rune) rune {
			switch c {
			case 'b':
				return '\b'
			case 'f':
				return '\f'
			case 'n':
				return '\n'
			case 'r':
				return '\r'
			case 't':
				return '\t'
			}
			return c
		})), "escaped char")

	hexDigit = jcomb.Satisfy(func(c rune) bool {
		return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
	}, "hex digit")

	// A single \uXXXX escape, as a UTF-16 code unit.
	unicodeUnit = jcomb.Right(jcomb.String(`\u`), jcomb.Map(
		jcomb.Sequence(hexDigit, hexDigit, hexDigit, hexDigit),
		func(ds []rune) rune {
			v, _ := strconv.ParseUint(string(ds), 16, 32)
			return rune(v)
		}))

	// The low half of a surrogate pair.
	lowSurrogate = jcomb.Bind(unicodeUnit, func(lo rune) jcomb.Parser[rune] {
		if lo < 0xdc00 || lo > 0xdfff {
			return jcomb.Fail[rune]("unicode char", "invalid low surrogate")
		}
		return jcomb.Return(lo)
	})

	// A \uXXXX escape, or a pair of escapes encoding a surrogate pair.
	// A surrogate without its partner decodes as the replacement character.
	unicodeChar = jcomb.SetLabel(jcomb.Bind(unicodeUnit, func(hi rune) jcomb.Parser[rune] {
		if !utf16.IsSurrogate(hi) {
			return jcomb.Return(hi)
		} else if hi >= 0xdc00 {
			return jcomb.Return(utf8.RuneError)
		}
		return jcomb.OrElse(
			jcomb.Map(lowSurrogate, func(lo rune) rune { return utf16.DecodeRune(hi, lo) }),
			jcomb.Return(utf8.RuneError),
		)
	}), "unicode char")
)

// Components of a number. Each produces the text it matched, and the
// complete text is converted with strconv.ParseFloat.
var (
	optSign = jcomb.Map(jcomb.Opt(jcomb.Char('-')), func(m jcomb.Maybe[rune]) string {
		if m.Present() {
			return "-"
		}
		return ""
	})

	intPart = jcomb.OrElse(
		jcomb.String("0"),
		jcomb.Lift2(func(d rune, ds string) string {
			return string(d) + ds
		}, jcomb.Satisfy(func(c rune) bool { return '1' <= c && c <= '9' }, "digit"), jcomb.ManyChars(jcomb.Digit)),
	)

	fracPart = optText(jcomb.Lift2(concat, jcomb.String("."), jcomb.ManyChars1(jcomb.Digit)))

	expPart = optText(jcomb.Lift2(concat,
		jcomb.Map(jcomb.AnyOf('e', 'E'), func(c rune) string { return string(c) }),
		jcomb.Lift2(concat,
			jcomb.Map(jcomb.Opt(jcomb.AnyOf('+', '-')), func(m jcomb.Maybe[rune]) string {
				if c, ok := m.GetOK(); ok {
					return string(c)
				}
				return ""
			}),
			jcomb.ManyChars1(jcomb.Digit),
		),
	))

	numberBoundary = jcomb.FollowedBy(jcomb.Choice(
		jcomb.Replace(jcomb.AnyOf(' ', '\t', '\r', '\n', ',', ']', '}', ':'), struct{}{}),
		jcomb.EndOfInput,
	))

	numberText = jcomb.SetLabel(jcomb.Left(
		jcomb.Map(jcomb.Sequence(optSign, intPart, fracPart, expPart), func(ss []string) string {
			return strings.Join(ss, "")
		}),
		numberBoundary,
	), "number")
)

// ws matches optional JSON whitespace, which is narrower than the set of
// characters matched by jcomb.Whitespace.
var ws = jcomb.Many(jcomb.AnyOf(' ', '\t', '\r', '\n'))

func concat(a, b string) string { return a + b }

// optText matches p if possible, and otherwise matches nothing and returns "".
func optText(p jcomb.Parser[string]) jcomb.Parser[string] {
	return jcomb.Map(jcomb.Opt(p), func(m jcomb.Maybe[string]) string {
		s, _ := m.GetOK()
		return s
	})
}

// token matches c followed by optional whitespace.
func token(c rune) jcomb.Parser[rune] { return jcomb.Left(jcomb.Char(c), ws) }

// ArrayOf returns a parser for an array whose elements match elem.
// Whitespace is allowed around the brackets and commas, and a trailing comma
// is rejected.
func ArrayOf(elem jcomb.Parser[jvalue.Value]) jcomb.Parser[jvalue.Value] {
	elts := jcomb.SepBy(jcomb.Left(elem, ws), token(','))
	return jcomb.SetLabel(jcomb.Map(
		jcomb.Between(token('['), elts, jcomb.Char(']')),
		func(vs []jvalue.Value) jvalue.Value {
			if vs == nil {
				vs = []jvalue.Value{}
			}
			return jvalue.Array(vs)
		}), "array")
}

// ObjectOf returns a parser for an object whose member values match elem.
// If a key occurs more than once, the last value for that key is kept.
func ObjectOf(elem jcomb.Parser[jvalue.Value]) jcomb.Parser[jvalue.Value] {
	member := jcomb.AndThen(
		jcomb.Left(jcomb.Left(QuotedString, ws), token(':')),
		jcomb.Left(elem, ws),
	)
	members := jcomb.SepBy(member, token(','))
	return jcomb.SetLabel(jcomb.Map(
		jcomb.Between(token('{'), members, jcomb.Char('}')),
		func(ms []jcomb.Pair[string, jvalue.Value]) jvalue.Value {
			obj := make(jvalue.Object, len(ms))
			for _, m := range ms {
				obj[m.First] = m.Second
			}
			return obj
		}), "object")
}

// Parse runs Value on text, beginning at line 0, column 0. Parse does not
// require the value to span the whole text: anything after the value is left
// in the remaining input of the result.
func Parse(text string) jcomb.Result[jvalue.Value] { return jcomb.Run(Value, text) }

// ParseAll parses text as a complete JSON document: a single value with
// optional whitespace before and after it. If parsing fails, the concrete
// type of the error is *jcomb.ParseError.
func ParseAll(text string) (jvalue.Value, error) { return jcomb.Run(document, text).Get() }

// document matches a value surrounded by optional whitespace, followed by the
// end of the input. Failures are reported as the failing component reports
// them.
var document = jcomb.New("document", func(in jcomb.Input) jcomb.Result[jvalue.Value] {
	in = ws.Run(in).Rest()
	r := Value.Run(in)
	if !r.OK() {
		return r
	}
	rest := ws.Run(r.Rest()).Rest()
	if e := jcomb.EndOfInput.Run(rest); !e.OK() {
		return jcomb.Failure[jvalue.Value](e.Err())
	}
	return jcomb.Success(r.Value(), rest)
})
