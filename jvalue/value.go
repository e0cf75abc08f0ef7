// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jvalue defines an immutable tree of JSON values.
package jvalue

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/jcomb/internal/escape"

	"go4.org/mem"
)

// A Value is an arbitrary JSON value. The concrete type is one of Null, Bool,
// Number, String, Array, or Object.
type Value interface {
	// JSON renders the value as compact JSON text.
	JSON() string

	isValue()
}

// Null represents the null constant.
type Null struct{}

// A Bool is a Boolean constant, true or false.
type Bool bool

// A Number is a JSON number.
type Number float64

// A String is a string value, with escapes already decoded.
type String string

// An Array is an ordered sequence of values.
type Array []Value

// An Object is a collection of values indexed by unique string keys.
// The order of keys is not significant.
type Object map[string]Value

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

func (Null) JSON() string { return "null" }

func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// JSON renders n in the shortest form that round-trips. JSON has no
// representation for infinities or NaN, which are rendered as null.
func (n Number) JSON() string {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "null"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (s String) JSON() string { return string(escape.Quote(mem.S(string(s)))) }

func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(a[0].JSON())
	for _, elt := range a[1:] {
		sb.WriteByte(',')
		sb.WriteString(elt.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// JSON renders o with its keys in lexicographic order.
func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, key := range o.Keys() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.Write(escape.Quote(mem.S(key)))
		sb.WriteByte(':')
		sb.WriteString(o[key].JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Keys returns the keys of o in lexicographic order.
func (o Object) Keys() []string { return slices.Sorted(maps.Keys(o)) }

func (Null) String() string     { return "JNull" }
func (b Bool) String() string   { return fmt.Sprintf("JBool %v", bool(b)) }
func (n Number) String() string { return "JNumber " + n.JSON() }
func (s String) String() string { return fmt.Sprintf("JString %q", string(s)) }
func (a Array) String() string  { return fmt.Sprintf("JArray(len=%d)", len(a)) }
func (o Object) String() string { return fmt.Sprintf("JObject(len=%d)", len(o)) }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// ToValue converts a Go value into a Value. It accepts nil, bool, string,
// int, int64, float64, []any, map[string]any, and values that already
// implement Value. It panics for any other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case float64:
		return Number(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		out := make(Object, len(t))
		for key, elt := range t {
			out[key] = ToValue(elt)
		}
		return out
	default:
		panic(fmt.Sprintf("jvalue: unsupported type %T", v))
	}
}
