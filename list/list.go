package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/persistent/maybe"
)

// List is a handle onto an immutable singly-linked list with elements of
// type T. The zero value is the empty list, ready to use.
//
// Copying a List copies the handle, never the elements; both copies refer
// to the same chain of cells. Since cells are immutable, sharing is
// invisible to clients.
//
// Comparing List values with == tests handle identity, not content.
// Content comparison goes through Equal, Compare and Hash.
type List[T any] struct {
	cell *cell[T]
}

// cell is a single cons cell. A List with a nil cell pointer is the Nil
// case; every other list is a Cons. Cells are write-once: no code path
// modifies head or tail after construction.
type cell[T any] struct {
	head T
	tail List[T]
}

// --- Construction ----------------------------------------------------------

// Nil returns the empty list. It does not allocate and is equivalent to
// the zero value List[T]{}.
func Nil[T any]() List[T] {
	return List[T]{}
}

// Cons returns the list with head x and tail tail. Cons is O(1): tail is
// shared with the new list, not copied, and stays valid on its own.
//
// Lists are built back to front:
//
//     l := list.Cons(3, list.Cons(2, list.Cons(1, list.Nil[int]())))   // 3 :: 2 :: 1 :: Nil
//
func Cons[T any](x T, tail List[T]) List[T] {
	return List[T]{cell: &cell[T]{head: x, tail: tail}}
}

// Of returns the list of the given elements, first argument first:
//
//     list.Of(3, 2, 1)   // 3 :: 2 :: 1 :: Nil
//
func Of[T any](elems ...T) List[T] {
	return FromSlice(elems)
}

// --- Accessors -------------------------------------------------------------

// IsEmpty reports whether l is the empty list.
func (l List[T]) IsEmpty() bool {
	return l.cell == nil
}

// Head returns the first element of l. Taking the head of an empty list
// is a client error and will panic; clients unsure about l being empty
// will call HeadOpt instead.
func (l List[T]) Head() T {
	assertThat(!l.IsEmpty(), "attempt to take the head of an empty list")
	return l.cell.head
}

// Tail returns l without its first element. The tail is shared with l,
// not copied. Taking the tail of an empty list is a client error and
// will panic; clients unsure about l being empty will call TailOpt
// instead.
func (l List[T]) Tail() List[T] {
	assertThat(!l.IsEmpty(), "attempt to take the tail of an empty list")
	return l.cell.tail
}

// HeadOpt returns the first element of l, or Nothing for the empty list.
func (l List[T]) HeadOpt() maybe.Maybe[T] {
	if l.IsEmpty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.cell.head)
}

// TailOpt returns l without its first element, or Nothing for the empty
// list.
func (l List[T]) TailOpt() maybe.Maybe[List[T]] {
	if l.IsEmpty() {
		return maybe.Nothing[List[T]]()
	}
	return maybe.Just(l.cell.tail)
}

// Len returns the number of elements of l. Lists do not cache their
// length; Len walks the whole chain and costs O(n).
func (l List[T]) Len() int {
	n := 0
	for it := l.Iter(); it.HasElem(); it.Next() {
		n++
	}
	return n
}

// --- Printing --------------------------------------------------------------

// String renders l in cons notation, head first, with elements formatted
// by %v:
//
//     list.Of(3, 2, 1).String()   ⇒   "3 :: 2 :: 1 :: Nil"
//
func (l List[T]) String() string {
	b := strings.Builder{}
	for it := l.Iter(); it.HasElem(); it.Next() {
		b.WriteString(fmt.Sprintf("%v", it.Elem()))
		b.WriteString(" :: ")
	}
	b.WriteString("Nil")
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
