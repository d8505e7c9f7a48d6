package list

// Rev returns the list of l's elements in reverse order. The result is a
// completely fresh spine: reversing changes every suffix, so no cell can
// be shared with l. Rev walks l once, prepending as it goes, and leaves
// l untouched. Reversing Nil is Nil.
func (l List[T]) Rev() List[T] {
	rev := Nil[T]()
	n := 0
	for it := l.Iter(); it.HasElem(); it.Next() {
		rev = Cons(it.Elem(), rev)
		n++
	}
	tracer().Debugf("reversed %d elements onto a fresh spine", n)
	return rev
}

// Concat returns the concatenation of l and other. The elements of l are
// re-prepended onto other, i.e. the result shares other's chain in full
// and copies l's spine. Cost is O(len(l)), independent of other.
func (l List[T]) Concat(other List[T]) List[T] {
	front := l.ToSlice()
	tracer().Debugf("concat re-prepends %d front elements", len(front))
	res := other
	for i := len(front) - 1; i >= 0; i-- {
		res = Cons(front[i], res)
	}
	return res
}

// Filter returns the list of l's elements for which keep is true, in
// their original order.
func (l List[T]) Filter(keep func(T) bool) List[T] {
	var kept []T
	for it := l.Iter(); it.HasElem(); it.Next() {
		if keep(it.Elem()) {
			kept = append(kept, it.Elem())
		}
	}
	return FromSlice(kept)
}

// Map returns the list of f applied to each element of l, preserving
// order. For functions changing the element's type, use package-level
// Map.
func (l List[T]) Map(f func(T) T) List[T] {
	return Map(f, l)
}

// Map returns the list of f applied to each element of l, preserving
// order. Map of Nil is Nil.
func Map[A, B any](f func(A) B, l List[A]) List[B] {
	var mapped []B
	for it := l.Iter(); it.HasElem(); it.Next() {
		mapped = append(mapped, f(it.Elem()))
	}
	return FromSlice(mapped)
}

// FoldL folds f over l from the head side:
//
//     FoldL(f, z, [x1 x2 … xn])   ⇒   f(…f(f(z, x1), x2)…, xn)
//
func FoldL[A, B any](f func(B, A) B, zero B, l List[A]) B {
	acc := zero
	for it := l.Iter(); it.HasElem(); it.Next() {
		acc = f(acc, it.Elem())
	}
	return acc
}

// FoldR folds f over l from the tail side:
//
//     FoldR(f, z, [x1 x2 … xn])   ⇒   f(x1, f(x2, …f(xn, z)…))
//
// The elements are materialized and walked backwards instead of
// recursing, so FoldR is safe for arbitrarily long lists.
func FoldR[A, B any](f func(A, B) B, zero B, l List[A]) B {
	elems := l.ToSlice()
	acc := zero
	for i := len(elems) - 1; i >= 0; i-- {
		acc = f(elems[i], acc)
	}
	return acc
}
