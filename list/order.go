package list

import (
	"golang.org/x/exp/constraints"

	"github.com/npillmayer/persistent/hash"
)

// Equal reports whether a and b hold equal elements in the same order.
// Equality is structural: two lists built independently from the same
// elements are equal, whether or not they share cells.
func Equal[T comparable](a, b List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with element equality decided by eq, for element
// types which are not comparable or not to be compared with ==.
func EqualFunc[T any](a, b List[T], eq func(T, T) bool) bool {
	ia, ib := a.Iter(), b.Iter()
	for ia.HasElem() && ib.HasElem() {
		if !eq(ia.Elem(), ib.Elem()) {
			return false
		}
		ia.Next()
		ib.Next()
	}
	return !ia.HasElem() && !ib.HasElem()
}

// Compare compares a and b lexicographically, element by element from
// the head: the first unequal element pair decides. If one list runs out
// before differing, the shorter list orders first; thus Nil orders
// before every non-empty list. Compare returns
//
//     -1   if a orders before b
//      0   if the lists are equal
//     +1   if a orders after b
//
func Compare[T constraints.Ordered](a, b List[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return +1
		}
		return 0
	})
}

// CompareFunc is Compare with element comparison decided by cmp, which
// returns a negative number, zero or a positive number. This is the entry
// point for element types without the less-than operator, and for element
// types with a partial order only: a cmp encoding partiality (e.g. NaN
// handling for floats) carries over to the list comparison.
func CompareFunc[T any](a, b List[T], cmp func(T, T) int) int {
	ia, ib := a.Iter(), b.Iter()
	for ia.HasElem() && ib.HasElem() {
		if c := cmp(ia.Elem(), ib.Elem()); c != 0 {
			return c
		}
		ia.Next()
		ib.Next()
	}
	switch {
	case ia.HasElem():
		return +1
	case ib.HasElem():
		return -1
	}
	return 0
}

// Hash folds hashElem over the elements of a, in list order, with the
// combining hash of package hash. Lists which are Equal hash equally
// (given a deterministic hashElem); the fold is order-sensitive, so
// permuting elements changes the hash with high probability. Hash of
// Nil is hash.Init.
//
// Element hashes typically come from package hash:
//
//     h := list.Hash(l, hash.Int)
//
func Hash[T any](a List[T], hashElem func(T) uint32) uint32 {
	acc := hash.Init
	for it := a.Iter(); it.HasElem(); it.Next() {
		acc = hash.Combine(acc, hashElem(it.Elem()))
	}
	return acc
}
