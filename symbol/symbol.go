// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package symbol interns strings into symbols with identity
// semantics: Intern returns the same *Sym for the same spelling, so
// symbol comparison is pointer comparison and a symbol can key an
// identity table directly. This is the usual host-language treatment
// of identifiers, layered above the core table rather than built into
// it.
package symbol

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// A Sym is an interned string. Its hash is computed once at intern
// time and is stable for the symbol's lifetime.
type Sym struct {
	name string
	hash uint32
}

func (s *Sym) String() string {
	return s.name
}

// Hash32 returns s's precomputed identity hash.
func (s *Sym) Hash32() uint32 {
	return s.hash
}

// Identical reports whether other is the same interned symbol.
func (s *Sym) Identical(other any) bool {
	o, ok := other.(*Sym)
	return ok && o == s
}

// Hash and Identical adapt symbols for use as identdict keys.
func Hash(s *Sym) uint32 {
	return s.hash
}

// Identical reports whether a and b are the same interned symbol.
func Identical(a, b *Sym) bool {
	return a == b
}

// A Table interns symbols. The zero value is ready to use. Safe for
// concurrent use; interning takes a read lock on the fast path.
type Table struct {
	mu   sync.RWMutex
	syms map[string]*Sym
}

// Intern returns the symbol for name, creating it on first use.
func (t *Table) Intern(name string) *Sym {
	t.mu.RLock()
	s := t.syms[name]
	t.mu.RUnlock()
	if s != nil {
		return s
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// Recheck: another goroutine may have interned name while we
	// weren't holding the lock.
	if s := t.syms[name]; s != nil {
		return s
	}
	if t.syms == nil {
		t.syms = make(map[string]*Sym)
	}
	h := xxhash.Sum64String(name)
	s = &Sym{name: name, hash: uint32(h) ^ uint32(h>>32)}
	t.syms[name] = s
	return s
}

// Len returns the number of interned symbols.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.syms)
}

var defaultTable Table

// Intern interns name in the process-wide table.
func Intern(name string) *Sym {
	return defaultTable.Intern(name)
}
