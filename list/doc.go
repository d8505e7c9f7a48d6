/*
Package list implements an immutable singly-linked list, the cons list
of functional programming languages.

A cons list grows at the front: Cons(x, l) returns a new list with head x
and tail l, in constant time and without touching l. The tail is not
copied but shared, so every list derived from l keeps referencing l's
cells. Cells are never modified after construction, which makes shared
lists safe to read concurrently.

List values are handles onto a chain of cells. Copying a handle copies a
single machine word and never the elements; the zero value of List is the
empty list. “Modifying” operations (Cons, Rev, Filter, …) return new
handles and leave their inputs untouched.

Lists print in cons notation, head first:

    list.Of(3, 2, 1)   ⇒   "3 :: 2 :: 1 :: Nil"

Status

Complete. Element equality, ordering and hashing are provided as
package-level functions, as Go methods cannot be generic over the
element type.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.list'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.list")
}
