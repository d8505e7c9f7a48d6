/*
Package hash provides order-sensitive combining hash functions, intended
for hashing the elements of persistent containers.

The functions implement the djb2 scheme: an accumulator is seeded with
Init and element hashes are folded in with Combine, one by one. Folding
is not commutative, so sequences which hold the same elements in a
different order hash differently, while equal sequences always hash
equally.

Clients hashing elements of their own types will combine the field
hashes with Of:

    func hashPoint(p Point) uint32 {
        return hash.Of(hash.Int(p.X), hash.Int(p.Y))
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hash

// Init is the seed for combining hashes (the djb2 magic constant).
const Init uint32 = 5381

// Combine folds an element hash h into accumulator acc.
func Combine(acc, h uint32) uint32 {
	return mul33(acc) + h
}

// Of combines the given hashes into one, starting from Init.
// Of() without arguments returns Init.
func Of(hs ...uint32) uint32 {
	acc := Init
	for _, h := range hs {
		acc = Combine(acc, h)
	}
	return acc
}

// --- Element hashes --------------------------------------------------------

// String hashes a string, byte by byte.
func String(s string) uint32 {
	h := Init
	for i := 0; i < len(s); i++ {
		h = Combine(h, uint32(s[i]))
	}
	return h
}

// Uint32 hashes a uint32 to itself.
func Uint32(u uint32) uint32 {
	return u
}

// Uint64 hashes a uint64 by combining its two halves.
func Uint64(u uint64) uint32 {
	return Combine(uint32(u>>32), uint32(u&0xffffffff))
}

// Int hashes a machine-sized int.
func Int(i int) uint32 {
	return Uint64(uint64(i))
}

// Bool hashes true and false to distinct constants.
func Bool(b bool) uint32 {
	if b {
		return 1231
	}
	return 1237
}

func mul33(u uint32) uint32 {
	return u<<5 + u
}
