package list

// Iter is an iterator over the elements of a list, from head to tail.
// It can be used like this:
//
//     for it := l.Iter(); it.HasElem(); it.Next() {
//         elem := it.Elem()
//         … // do something with elem
//     }
//
// An Iter is a plain handle onto the remaining chain: copying it forks
// the traversal, and iterating never modifies the underlying list.
type Iter[T any] struct {
	rest List[T]
}

// Iter returns a fresh iterator positioned at the head of l. Every call
// returns an independent iterator; l itself carries no iteration state.
func (l List[T]) Iter() Iter[T] {
	return Iter[T]{rest: l}
}

// HasElem reports whether the iterator is positioned on an element.
func (it Iter[T]) HasElem() bool {
	return !it.rest.IsEmpty()
}

// Elem returns the element at the current position. Like Head, Elem
// panics when the iterator is exhausted.
func (it Iter[T]) Elem() T {
	return it.rest.Head()
}

// Next advances the iterator by one element. Like Tail, Next panics
// when the iterator is already exhausted.
func (it *Iter[T]) Next() {
	it.rest = it.rest.Tail()
}

// --- Conversion ------------------------------------------------------------

// FromSlice returns the list of the elements of s, in order: the head of
// the result is s[0]. The slice is prepended back to front, so the
// result's iteration order reproduces s. FromSlice of an empty or nil
// slice is Nil.
func FromSlice[T any](s []T) List[T] {
	l := Nil[T]()
	for i := len(s) - 1; i >= 0; i-- {
		l = Cons(s[i], l)
	}
	return l
}

// FromIter collects the elements produced by an iterator into a list
// which iterates in the same order. The elements are materialized first,
// as a cons list has to be built back to front. FromIter advances a copy
// of it; the caller's iterator keeps its position.
func FromIter[T any](it Iter[T]) List[T] {
	var elems []T
	for ; it.HasElem(); it.Next() {
		elems = append(elems, it.Elem())
	}
	tracer().Debugf("collected %d elements from iterator", len(elems))
	return FromSlice(elems)
}

// ToSlice returns the elements of l as a slice, head first. ToSlice of
// the empty list is nil.
func (l List[T]) ToSlice() []T {
	var s []T
	for it := l.Iter(); it.HasElem(); it.Next() {
		s = append(s, it.Elem())
	}
	return s
}
