// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package identset provides an identity-keyed set. It is a thin layer
// over [github.com/aristanetworks/identdict.Dict] holding empty
// values; membership semantics, probing and growth all come from the
// underlying table. Like the table, a Set has no remove operation and
// is not safe for concurrent use.
package identset

import "github.com/aristanetworks/identdict"

// Set records identity-distinct members.
type Set[K any] struct {
	d *identdict.Dict[K, struct{}]
}

// New returns a Set sized to hold size members without growing. hash
// and equal define member identity, as for identdict.New.
func New[K any](size uint, hash func(K) uint32, equal func(K, K) bool) *Set[K] {
	return &Set[K]{d: identdict.New[K, struct{}](size, hash, equal)}
}

// Add records k as a member. Adding an existing member is a no-op.
func (s *Set[K]) Add(k K) {
	s.d.Put(k, struct{}{})
}

// Contains reports whether k is a member.
func (s *Set[K]) Contains(k K) bool {
	_, ok := s.d.Get(k)
	return ok
}

// Len returns the number of members.
func (s *Set[K]) Len() int {
	return s.d.Len()
}

// Iter calls f for each member until f returns false. f must not
// call Add on s.
func (s *Set[K]) Iter(f func(K) bool) {
	s.d.Iter(func(k K, _ struct{}) bool {
		return f(k)
	})
}

// Stats returns the underlying table's counters.
func (s *Set[K]) Stats() identdict.Stats {
	return s.d.Stats()
}
