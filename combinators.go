// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"fmt"
	"strings"

	"github.com/creachadair/mds/value"
)

// A Pair holds the results of two parsers run in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string { return fmt.Sprintf("(%v, %v)", p.First, p.Second) }

// Maybe is an optional value, as produced by Opt.
type Maybe[T any] = value.Maybe[T]

// AndThen returns a parser that runs p1 and then p2 on the input remaining
// after p1, and returns both results.
//
// If p1 fails, its failure is reported. If p2 fails, the combination fails
// even though p1 matched: sequencing commits to a successful left-hand match
// and does not backtrack. Failures are reported with the combined label.
//
// When p2 fails, a failure discarded by p1 (for example, the attempt that
// ended a repetition) is reported instead if it reached further into the
// input than the failure of p2.
func AndThen[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Pair[A, B]] {
	label := fmt.Sprintf("%s andThen %s", p1.label, p2.label)
	return New(label, func(in Input) Result[Pair[A, B]] {
		r1 := p1.Run(in)
		if r1.err != nil {
			return Failure[Pair[A, B]](r1.err.withLabel(label))
		}
		r2 := p2.Run(r1.rest)
		if r2.err != nil {
			return Failure[Pair[A, B]](further(r1.hint, r2.err).withLabel(label))
		}
		out := Success(Pair[A, B]{First: r1.value, Second: r2.value}, r2.rest)
		out.hint = further(r1.hint, r2.hint)
		return out
	})
}

// OrElse returns a parser that runs p1, and if p1 fails runs p2 on the
// original input. The result of p2, success or failure, is returned.
func OrElse[T any](p1, p2 Parser[T]) Parser[T] {
	label := fmt.Sprintf("%s orElse %s", p1.label, p2.label)
	return New(label, func(in Input) Result[T] {
		if r1 := p1.Run(in); r1.err == nil {
			return r1
		}
		return p2.Run(in)
	})
}

// Choice returns a parser that tries each of ps in order on the same input,
// and returns the first successful result.
//
// If all the parsers fail, Choice reports the failure of the alternative
// whose attempt examined the furthest input, preferring the later alternative
// when two reach equally far. When no alternative makes progress this is the
// failure of the last parser, the same as a chain of OrElse.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		return Fail[T]("choice", "no alternatives")
	}
	labels := make([]string, len(ps))
	for i, p := range ps {
		labels[i] = p.label
	}
	label := strings.Join(labels, " orElse ")
	return New(label, func(in Input) Result[T] {
		var best *ParseError
		for _, p := range ps {
			r := p.Run(in)
			if r.err == nil {
				return r
			} else if best == nil || r.err.reach >= best.reach {
				best = r.err
			}
		}
		return Failure[T](best)
	})
}

// Map returns a parser that applies f to the value of a successful match of p.
// Failures of p are reported unchanged.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return New(p.label, func(in Input) Result[U] {
		r := p.Run(in)
		if r.err != nil {
			return fail[U](r)
		}
		return succeed(r, f(r.value))
	})
}

// Replace returns a parser that matches p and returns v in place of its value.
func Replace[T, U any](p Parser[T], v U) Parser[U] {
	return Map(p, func(T) U { return v })
}

// Return returns a parser that always succeeds with v, consuming nothing.
func Return[T any](v T) Parser[T] {
	return New("return", func(in Input) Result[T] { return Success(v, in) })
}

// Bind returns a parser that matches p, passes its value to f, and runs the
// parser f returns on the remaining input.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return New(p.label, func(in Input) Result[U] {
		r := p.Run(in)
		if r.err != nil {
			return fail[U](r)
		}
		r2 := f(r.value).Run(r.rest)
		if r2.err != nil {
			return Failure[U](further(r.hint, r2.err))
		}
		r2.hint = further(r.hint, r2.hint)
		return r2
	})
}

// Apply returns a parser that matches fp then xp, and returns the result of
// calling the function produced by fp with the value produced by xp.
func Apply[T, U any](fp Parser[func(T) U], xp Parser[T]) Parser[U] {
	return Map(AndThen(fp, xp), func(v Pair[func(T) U, T]) U { return v.First(v.Second) })
}

// Lift2 returns a parser that matches pa then pb, and combines their values
// with f.
func Lift2[A, B, C any](f func(A, B) C, pa Parser[A], pb Parser[B]) Parser[C] {
	curry := func(a A) func(B) C { return func(b B) C { return f(a, b) } }
	return Apply(Map(pa, curry), pb)
}

// Sequence returns a parser that matches each of ps in order and returns
// their values. It fails if any of them fails.
func Sequence[T any](ps ...Parser[T]) Parser[[]T] {
	if len(ps) == 0 {
		return Return[[]T](nil)
	}
	head := Map(ps[0], func(v T) []T { return []T{v} })
	for _, p := range ps[1:] {
		head = Lift2(func(vs []T, v T) []T { return append(vs[:len(vs):len(vs)], v) }, head, p)
	}
	return head
}

// Many returns a parser that matches p zero or more times and returns the
// values of the matches. It always succeeds. The input examined by the final
// failed attempt of p is not consumed.
//
// Repetition also stops if p succeeds without consuming any input.
func Many[T any](p Parser[T]) Parser[[]T] {
	return New("many "+p.label, func(in Input) Result[[]T] {
		vs, rest, hint := many(p, in)
		out := Success(vs, rest)
		out.hint = hint
		return out
	})
}

// Many1 returns a parser that matches p one or more times. If the first
// attempt fails, Many1 reports that failure.
func Many1[T any](p Parser[T]) Parser[[]T] {
	label := "many1 " + p.label
	return New(label, func(in Input) Result[[]T] {
		r := p.Run(in)
		if r.err != nil {
			return Failure[[]T](r.err.withLabel(label))
		}
		vs, rest, hint := many(p, r.rest)
		out := Success(append([]T{r.value}, vs...), rest)
		out.hint = further(r.hint, hint)
		return out
	})
}

// many matches p repeatedly starting at in, and returns the values matched,
// the remaining input, and the furthest failure discarded along the way,
// including the one that stopped the repetition.
func many[T any](p Parser[T], in Input) ([]T, Input, *ParseError) {
	var vs []T
	var hint *ParseError
	for {
		r := p.Run(in)
		if r.err != nil {
			return vs, in, further(hint, r.err)
		} else if r.rest.pos.Offset == in.pos.Offset {
			return vs, in, hint
		}
		vs = append(vs, r.value)
		hint = further(hint, r.hint)
		in = r.rest
	}
}

// Opt returns a parser that matches p if possible. If p fails, Opt succeeds
// with an absent value and consumes nothing, but remembers the failure of p
// in case a following parser fails without getting as far.
func Opt[T any](p Parser[T]) Parser[Maybe[T]] {
	return New("opt "+p.label, func(in Input) Result[Maybe[T]] {
		r := p.Run(in)
		if r.err != nil {
			out := Success(value.Absent[T](), in)
			out.hint = r.err
			return out
		}
		return succeed(r, value.Just(r.value))
	})
}

// Left returns a parser that matches p1 then p2 and keeps only the value of p1.
func Left[A, B any](p1 Parser[A], p2 Parser[B]) Parser[A] {
	return Map(AndThen(p1, p2), func(v Pair[A, B]) A { return v.First })
}

// Right returns a parser that matches p1 then p2 and keeps only the value of
// p2.
func Right[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return Map(AndThen(p1, p2), func(v Pair[A, B]) B { return v.Second })
}

// Between returns a parser that matches left, p, and right in sequence and
// returns only the value of p.
func Between[L, T, R any](left Parser[L], p Parser[T], right Parser[R]) Parser[T] {
	return Left(Right(left, p), right)
}

// SepBy1 returns a parser that matches one or more occurrences of p separated
// by sep, and returns the values of p.
//
// A separator that is not followed by a match of p is not consumed.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Lift2(func(v T, vs []T) []T {
		return append([]T{v}, vs...)
	}, p, Many(Right(sep, p)))
}

// SepBy returns a parser that matches zero or more occurrences of p separated
// by sep, and returns the values of p.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Map(Opt(SepBy1(p, sep)), func(m Maybe[[]T]) []T {
		vs, _ := m.GetOK()
		return vs
	})
}

// FollowedBy returns a parser that succeeds without consuming input if p
// matches at its input, and otherwise reports the failure of p.
func FollowedBy[T any](p Parser[T]) Parser[struct{}] {
	return New(p.label, func(in Input) Result[struct{}] {
		if r := p.Run(in); r.err != nil {
			return fail[struct{}](r)
		}
		return Success(struct{}{}, in)
	})
}
