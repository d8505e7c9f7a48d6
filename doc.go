/*
Package persistent is the root of a module of immutable persistent data
structures. Persistent data structures can be copied and “modified”
efficiently, leaving the original unchanged. Functional programming
languages like Lisp have long relied on using them.

Copies of a persistent structure share memory with the original wherever
possible: derived versions hold references to unchanged parts instead of
duplicating them. This structural sharing makes copies cheap in terms of
space- and time-complexity, and it makes sharing between concurrent
readers safe without locks.

The root package contains no code. Clients will use the sub-packages:

▪︎ list is a singly-linked cons list with O(1) prepend and shared tails

▪︎ maybe is an option type for values which may be absent

▪︎ hash provides order-sensitive combining hashes for container elements

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
