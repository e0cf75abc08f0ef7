// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package grammar

import (
	"fmt"

	"github.com/creachadair/jcomb"
	"github.com/creachadair/jcomb/jvalue"
	"github.com/tailscale/hujson"
)

// Options control optional extensions to the JSON grammar.
// A nil *Options or a zero Options parses strict JSON with no depth limit.
type Options struct {
	comments bool
	maxDepth int
}

// AllowComments configures o to accept (true) or reject (false) comments and
// trailing commas in the JWCC style ("JSON with commas and comments").
//
// Comments and trailing commas are replaced by whitespace before parsing, so
// the positions reported in errors match the original text. If the text is
// not valid JWCC, it is parsed as given and the error reflects the first
// problem found by the grammar.
func (o *Options) AllowComments(ok bool) { o.comments = ok }

// MaxDepth configures o to reject input in which arrays and objects are
// nested more than n levels deep. If n <= 0, nesting is not limited.
func (o *Options) MaxDepth(n int) { o.maxDepth = n }

// Parse behaves as the Parse function, subject to the settings of o.
func (o *Options) Parse(text string) jcomb.Result[jvalue.Value] {
	text, err := o.prepare(text)
	if err != nil {
		return jcomb.Failure[jvalue.Value](err)
	}
	return Parse(text)
}

// ParseAll behaves as the ParseAll function, subject to the settings of o.
func (o *Options) ParseAll(text string) (jvalue.Value, error) {
	text, err := o.prepare(text)
	if err != nil {
		return nil, err
	}
	return ParseAll(text)
}

// prepare applies the input transformations and checks requested by o.
func (o *Options) prepare(text string) (string, *jcomb.ParseError) {
	if o == nil {
		return text, nil
	}
	if o.comments {
		if std, err := hujson.Standardize([]byte(text)); err == nil {
			text = string(std)
		}
	}
	if o.maxDepth > 0 {
		if err := checkDepth(text, o.maxDepth); err != nil {
			return "", err
		}
	}
	return text, nil
}

// checkDepth reports an error at the first bracket of text that opens an
// array or object more than limit levels deep. Brackets inside strings are not
// counted. The structure of the text is not otherwise checked.
func checkDepth(text string, limit int) *jcomb.ParseError {
	var depth int
	var inString, escaped bool
	in := jcomb.FromString(text)
	for {
		ch, next, ok := in.Next()
		if !ok {
			return nil
		}
		switch {
		case inString:
			if escaped {
				escaped = false
			} else if ch == '\\' {
				escaped = true
			} else if ch == '"' {
				inString = false
			}
		case ch == '"':
			inString = true
		case ch == '[' || ch == '{':
			depth++
			if depth > limit {
				msg := fmt.Sprintf("nesting depth exceeds %d", limit)
				return jcomb.Fail[struct{}]("value", msg).Run(in).Err()
			}
		case ch == ']' || ch == '}':
			depth--
		}
		in = next
	}
}
