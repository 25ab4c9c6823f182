// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package symbol_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/aristanetworks/identdict"
	"github.com/aristanetworks/identdict/symbol"
)

func TestInternIdempotent(t *testing.T) {
	var tbl symbol.Table
	a := tbl.Intern("foo")
	b := tbl.Intern("foo")
	if a != b {
		t.Fatal("interning the same spelling returned different symbols")
	}
	if a.String() != "foo" {
		t.Errorf("name is %q", a.String())
	}
	if tbl.Len() != 1 {
		t.Errorf("len is %d", tbl.Len())
	}
}

func TestInternDistinct(t *testing.T) {
	var tbl symbol.Table
	a := tbl.Intern("foo")
	b := tbl.Intern("bar")
	if a == b {
		t.Fatal("different spellings interned to the same symbol")
	}
	if symbol.Identical(a, b) {
		t.Error("Identical true for different symbols")
	}
	if !a.Identical(a) {
		t.Error("Identical false for the same symbol")
	}
}

func TestHashStable(t *testing.T) {
	var tbl symbol.Table
	s := tbl.Intern("stable")
	h := s.Hash32()
	if tbl.Intern("stable").Hash32() != h {
		t.Error("hash changed across interns")
	}
	if symbol.Hash(s) != h {
		t.Error("Hash adapter disagrees with Hash32")
	}
}

func TestInternConcurrent(t *testing.T) {
	var tbl symbol.Table
	var wg sync.WaitGroup
	syms := make([]*symbol.Sym, 16)
	for i := range syms {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				s := tbl.Intern("shared")
				if syms[i] == nil {
					syms[i] = s
				} else if syms[i] != s {
					t.Error("intern returned a different symbol")
					return
				}
			}
		}(i)
	}
	wg.Wait()
	for _, s := range syms[1:] {
		if s != syms[0] {
			t.Fatal("goroutines saw different symbols for one spelling")
		}
	}
	if tbl.Len() != 1 {
		t.Errorf("len is %d", tbl.Len())
	}
}

func TestSymbolKeys(t *testing.T) {
	var tbl symbol.Table
	d := identdict.New[*symbol.Sym, int](0, symbol.Hash, symbol.Identical)
	const n = 500
	for i := 0; i < n; i++ {
		d.Put(tbl.Intern(fmt.Sprintf("sym%d", i)), i)
	}
	if d.Len() != n {
		t.Fatalf("len is %d, expected %d", d.Len(), n)
	}
	for i := 0; i < n; i++ {
		if v, ok := d.Get(tbl.Intern(fmt.Sprintf("sym%d", i))); !ok || v != i {
			t.Errorf("sym%d: got (%d, %t)", i, v, ok)
		}
	}
	// Same spelling in a different table is a different identity.
	var other symbol.Table
	if _, ok := d.Get(other.Intern("sym0")); ok {
		t.Error("foreign symbol found in dict")
	}
}

func TestDefaultTable(t *testing.T) {
	if symbol.Intern("default") != symbol.Intern("default") {
		t.Error("process-wide table not idempotent")
	}
}
