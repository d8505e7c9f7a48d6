/*
Package maybe provides an option type for values which may be absent.

A Maybe[T] either holds a value of type T or holds nothing. It replaces
the “pointer as optional” convention and makes the absent case explicit
in the type. The API follows the Maybe type of ML-descendant languages:
constructors Just and Nothing, helpers WithDefault and Map, and monadic
chaining with AndThen.

Clients distinguish the two cases with a match-switch:

    var v int
    switch m := x.Match(); m {
    case m.Just(&v):
        … // v holds the wrapped value
    case m.Nothing():
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe wraps a value of type T which may or may not be present.
//
// The zero Maybe is not usable; create instances with Just or Nothing.
type Maybe[T any] interface {
	// Match returns a Matcher for case analysis on x.
	Match() Matcher[T]
	// WithDefault returns the wrapped value, or def if nothing is wrapped.
	WithDefault(def T) T
	// Map applies f to the wrapped value, if present.
	// For functions changing the value's type, use package-level Map.
	Map(f func(T) T) Maybe[T]
}

type option[T any] struct {
	value T
	ok    bool
}

// Just wraps x in a Maybe.
func Just[T any](x T) Maybe[T] {
	return option[T]{value: x, ok: true}
}

// Nothing returns the absent Maybe for element type T.
func Nothing[T any]() Maybe[T] {
	return option[T]{}
}

func (o option[T]) Match() Matcher[T] {
	return matcher[T]{o: o}
}

func (o option[T]) WithDefault(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

func (o option[T]) Map(f func(T) T) Maybe[T] {
	if o.ok {
		return Just(f(o.value))
	}
	return o
}

// Map applies f to the value wrapped in x, if present, and wraps the
// result. Map of Nothing is Nothing.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// AndThen chains computations which may fail: it applies f to the value
// wrapped in x, if present. AndThen of Nothing is Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher performs case analysis on a Maybe. The case-selectors are made
// to be used as cases of a switch statement (see the package example).
// Matching compares interface values, thus T has to be a comparable type.
type Matcher[T any] interface {
	// Just matches a present value, storing it into *v.
	Just(v *T) Matcher[T]
	// Nothing matches the absent case.
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	o option[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.o.ok {
		*v = mm.o.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.o.ok {
		return mm
	}
	return nil
}
