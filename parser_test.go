// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcomb_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jcomb"
	"github.com/google/go-cmp/cmp"
)

// failure summarizes a failed result for comparison.
type failure struct {
	Label, Message string
	Pos            string
}

func failureOf[T any](t *testing.T, r jcomb.Result[T]) failure {
	t.Helper()
	if r.OK() {
		t.Fatalf("Result: got success %v, want failure", r.Value())
	}
	e := r.Err()
	return failure{Label: e.Label, Message: e.Message, Pos: e.Pos.String()}
}

func TestSatisfy(t *testing.T) {
	vowel := jcomb.Satisfy(func(c rune) bool { return c == 'a' || c == 'e' }, "vowel")

	r := jcomb.Run(vowel, "ex")
	if !r.OK() || r.Value() != 'e' || r.Rest().Remaining() != "x" {
		t.Errorf("Run: got (%q, %q, %v), want ('e', \"x\", nil)", r.Value(), r.Rest().Remaining(), r.Err())
	}

	if diff := cmp.Diff(failure{"vowel", "Unexpected 'x'", "0:0"}, failureOf(t, jcomb.Run(vowel, "xe"))); diff != "" {
		t.Errorf("Mismatch (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(failure{"vowel", "No more input", "0:0"}, failureOf(t, jcomb.Run(vowel, ""))); diff != "" {
		t.Errorf("Empty (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(failure{"vowel", "Unexpected '\\n'", "0:0"}, failureOf(t, jcomb.Run(vowel, "\n"))); diff != "" {
		t.Errorf("Control (-want, +got):\n%s", diff)
	}
}

func TestSetLabel(t *testing.T) {
	for _, p := range []jcomb.Parser[string]{
		jcomb.String("abc"),
		jcomb.ManyChars1(jcomb.Digit),
		jcomb.Fail[string]("inner", "always"),
	} {
		lp := jcomb.SetLabel(p, "foo")
		if got := lp.Label(); got != "foo" {
			t.Errorf("Label: got %q, want foo", got)
		}
		r := jcomb.Run(lp, "xyz")
		if got := failureOf(t, r).Label; got != "foo" {
			t.Errorf("SetLabel(%s): got label %q, want foo", p.Label(), got)
		}
	}
}

func TestFail(t *testing.T) {
	p := jcomb.Right(jcomb.Char('a'), jcomb.Fail[int]("thing", "not here"))
	got := failureOf(t, jcomb.Run(p, "abc"))
	if diff := cmp.Diff(failure{"'a' andThen thing", "not here", "0:1"}, got); diff != "" {
		t.Errorf("Fail (-want, +got):\n%s", diff)
	}
}

func TestParseError(t *testing.T) {
	r := jcomb.Run(jcomb.String("null"), "nulp")
	err := r.Err()
	if err == nil {
		t.Fatal("Run: got success, want error")
	}
	if got, want := err.Error(), `at 0:3: parsing "null": Unexpected 'p'`; got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
	if got := err.Line(); got != "nulp" {
		t.Errorf("Line: got %q, want nulp", got)
	}

	_, gerr := r.Get()
	var perr *jcomb.ParseError
	if !errors.As(gerr, &perr) || perr != err {
		t.Errorf("Get: got error %v, want %v", gerr, err)
	}

	if _, gerr := jcomb.Run(jcomb.String("null"), "null").Get(); gerr != nil {
		t.Errorf("Get: got error %v, want nil", gerr)
	}
}

func TestPrintResult(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Success", jcomb.PrintResult(jcomb.Run(jcomb.Int, "-25")), "-25"},
		{"Failure", jcomb.PrintResult(jcomb.Run(jcomb.SetLabel(jcomb.String("null"), "null"), "nulp")),
			"Line:0 Col:3 Error parsing null\nnulp\n   ^Unexpected 'p'"},
		{"SecondLine", jcomb.PrintResult(jcomb.Run(
			jcomb.Right(jcomb.String("a\n\tb"), jcomb.Char('c')), "a\n\tbx y\nz")),
			"Line:1 Col:2 Error parsing \"a\\n\\tb\" andThen 'c'\n\tbx y\n\t ^Unexpected 'x'"},
		{"EndOfText", jcomb.PrintResult(jcomb.Run(jcomb.String("abc"), "ab")),
			"Line:0 Col:2 Error parsing \"abc\"\nab\n  ^No more input"},
		{"Pair", jcomb.PrintResult(jcomb.Run(jcomb.AndThen(jcomb.Char('a'), jcomb.Char('b')), "ab")),
			"(97, 98)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("PrintResult:\ngot:\n%s\nwant:\n%s", tc.got, tc.want)
			}
		})
	}
}

func TestZeroParser(t *testing.T) {
	var zero jcomb.Parser[int]
	defer func() {
		if recover() == nil {
			t.Error("Run of zero parser did not panic")
		}
	}()
	jcomb.Run(zero, "x")
}
