// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jvalue_test

import (
	"errors"
	"math"
	"testing"

	"github.com/creachadair/jcomb/grammar"
	"github.com/creachadair/jcomb/jvalue"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestPath(t *testing.T) {
	v, err := grammar.ParseAll(testJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	obj := v.(jvalue.Object)

	tests := []struct {
		name string
		path []any
		want jvalue.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{11}, v, true},
		{"BadElement", []any{1.5}, v, true},

		{"ArrayPos", []any{"list", 1}, obj["list"].(jvalue.Array)[1], false},
		{"ArrayNeg", []any{"list", -1}, obj["list"].(jvalue.Array)[1], false},
		{"ArrayRange", []any{"o", 25}, v, true},
		{"ArrayNegRange", []any{"o", -3}, v, true},
		{"ObjPath", []any{"xyz", "d"}, jvalue.Bool(true), false},
		{"Deep", []any{"list", 0, "x"}, jvalue.Number(1), false},

		{"FuncArray", []any{"o", testPathFunc}, jvalue.Number(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, jvalue.Number(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, v, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := jvalue.Path(v, tc.path...)
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Path: unexpected error: %v", err)
				}
			} else if tc.fail {
				t.Fatalf("Path: got %v, want error", got)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Path (-want, +got):\n%s", diff)
			}
		})
	}
}

var errNotCountable = errors.New("value has no length")

func testPathFunc(v jvalue.Value) (jvalue.Value, error) {
	switch t := v.(type) {
	case jvalue.Array:
		return jvalue.Number(t.Len()), nil
	case jvalue.Object:
		return jvalue.Number(t.Len()), nil
	}
	return nil, errNotCountable
}

func TestJSON(t *testing.T) {
	tests := []struct {
		input jvalue.Value
		want  string
	}{
		{jvalue.Null{}, "null"},
		{jvalue.Bool(false), "false"},
		{jvalue.Number(-0.25), "-0.25"},
		{jvalue.Number(1e21), "1e+21"},
		{jvalue.Number(math.Inf(1)), "null"},
		{jvalue.Number(math.NaN()), "null"},
		{jvalue.String("a\"b\n"), `"a\"b\n"`},
		{jvalue.Array{}, "[]"},
		{jvalue.Array{jvalue.Number(1), jvalue.Null{}}, "[1,null]"},
		{jvalue.Object{}, "{}"},
		{jvalue.Object{"b": jvalue.Number(2), "a": jvalue.Array{}}, `{"a":[],"b":2}`},
	}
	for _, tc := range tests {
		if got := tc.input.JSON(); got != tc.want {
			t.Errorf("JSON %v: got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	v, err := grammar.ParseAll(testJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	text := v.JSON()
	w, err := grammar.ParseAll(text)
	if err != nil {
		t.Fatalf("Parse %q: %v", text, err)
	}
	if !jvalue.Equal(v, w) {
		t.Errorf("Round trip: got %s, want %s", w.JSON(), text)
	}
	if got := w.JSON(); got != text {
		t.Errorf("JSON: got %q, want %q", got, text)
	}
}

func TestEqual(t *testing.T) {
	obj := jvalue.Object{"a": jvalue.Number(1), "b": jvalue.Array{jvalue.String("x")}}
	tests := []struct {
		a, b jvalue.Value
		want bool
	}{
		{nil, nil, true},
		{jvalue.Null{}, nil, false},
		{jvalue.Null{}, jvalue.Null{}, true},
		{jvalue.Bool(true), jvalue.Bool(true), true},
		{jvalue.Bool(true), jvalue.Number(1), false},
		{jvalue.Number(2), jvalue.Number(2.0), true},
		{jvalue.Number(math.NaN()), jvalue.Number(math.NaN()), false},
		{jvalue.String("x"), jvalue.String("x"), true},
		{jvalue.String("x"), jvalue.String("y"), false},
		{jvalue.Array{jvalue.Number(1), jvalue.Number(2)}, jvalue.Array{jvalue.Number(2), jvalue.Number(1)}, false},
		{jvalue.Array{}, jvalue.Array{jvalue.Null{}}, false},
		{obj, jvalue.Object{"b": jvalue.Array{jvalue.String("x")}, "a": jvalue.Number(1)}, true},
		{obj, jvalue.Object{"a": jvalue.Number(1)}, false},
		{obj, jvalue.Object{"a": jvalue.Number(1), "c": jvalue.Array{jvalue.String("x")}}, false},
	}
	for _, tc := range tests {
		if got := jvalue.Equal(tc.a, tc.b); got != tc.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if got := jvalue.Equal(tc.b, tc.a); got != tc.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestToValue(t *testing.T) {
	got := jvalue.ToValue(map[string]any{
		"list": []any{1, int64(2), 2.5, "s", true, nil},
		"obj":  map[string]any{},
		"v":    jvalue.String("already"),
	})
	want := jvalue.Object{
		"list": jvalue.Array{
			jvalue.Number(1), jvalue.Number(2), jvalue.Number(2.5),
			jvalue.String("s"), jvalue.Bool(true), jvalue.Null{},
		},
		"obj": jvalue.Object{},
		"v":   jvalue.String("already"),
	}
	if diff := cmp.Diff(jvalue.Value(want), got); diff != "" {
		t.Errorf("ToValue (-want, +got):\n%s", diff)
	}

	t.Run("Panics", func(t *testing.T) {
		mtest.MustPanic(t, func() { jvalue.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { jvalue.ToValue(func() {}) })
		mtest.MustPanic(t, func() { jvalue.ToValue(make(chan struct{})) })
	})
}

func TestString(t *testing.T) {
	tests := []struct {
		input jvalue.Value
		want  string
	}{
		{jvalue.Null{}, "JNull"},
		{jvalue.Bool(true), "JBool true"},
		{jvalue.Number(1.5), "JNumber 1.5"},
		{jvalue.String("ab\tde"), `JString "ab\tde"`},
		{jvalue.Array{jvalue.Null{}}, "JArray(len=1)"},
		{jvalue.Object{}, "JObject(len=0)"},
	}
	for _, tc := range tests {
		if got := tc.input.(interface{ String() string }).String(); got != tc.want {
			t.Errorf("String: got %q, want %q", got, tc.want)
		}
	}
}
