// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package identity supplies the two services an identity-keyed table
// needs: a 32-bit hash derived from a value's identity and an
// identity-equality predicate. Both are shaped to plug straight into
// [github.com/aristanetworks/identdict.New].
package identity

import "unsafe"

// Hash32 hashes p's identity: the same pointer always yields the same
// value, and structurally equal objects at different addresses yield
// different ones. The address bits are mixed so that allocation
// patterns (shared high bits, zeroed alignment bits) still spread the
// results. This relies on the 'gc' runtime never moving heap objects;
// p must point to heap-allocated data, not into a goroutine stack,
// since stacks move when they grow.
func Hash32[T any](p *T) uint32 {
	a := uintptr(unsafe.Pointer(p))
	h := uint32(a) ^ uint32(uint64(a)>>32)
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// Equal reports whether a and b are the same object.
func Equal[T any](a, b *T) bool {
	return a == b
}

// Hashable32 is implemented by values that carry their own identity
// hash, for keys whose identity isn't captured by a Go pointer.
type Hashable32 interface {
	Hash32() uint32
	Identical(other any) bool
}

// HashableHash and HashableEqual adapt Hashable32 values for use as
// identdict keys.
func HashableHash(k Hashable32) uint32 {
	return k.Hash32()
}

// HashableEqual reports whether a and b are identical per a's
// Identical method.
func HashableEqual(a, b Hashable32) bool {
	return a.Identical(b)
}
