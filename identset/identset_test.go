// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package identset_test

import (
	"fmt"
	"testing"

	"github.com/aristanetworks/identdict/identity"
	"github.com/aristanetworks/identdict/identset"
	"github.com/aristanetworks/identdict/symbol"
)

type item struct {
	n int
}

func TestAddContains(t *testing.T) {
	s := identset.New[*item](0, identity.Hash32[item], identity.Equal[item])
	a := &item{n: 1}
	b := &item{n: 1}
	s.Add(a)
	if !s.Contains(a) {
		t.Error("member not found")
	}
	if s.Contains(b) {
		t.Error("structurally equal non-member found")
	}
	s.Add(a)
	if s.Len() != 1 {
		t.Errorf("re-adding a member changed len to %d", s.Len())
	}
	s.Add(b)
	if s.Len() != 2 {
		t.Errorf("len is %d, expected 2", s.Len())
	}
}

func TestSymbolMembers(t *testing.T) {
	var tbl symbol.Table
	s := identset.New[*symbol.Sym](0, symbol.Hash, symbol.Identical)
	const n = 300
	for i := 0; i < n; i++ {
		s.Add(tbl.Intern(fmt.Sprintf("member%d", i)))
	}
	if s.Len() != n {
		t.Fatalf("len is %d, expected %d", s.Len(), n)
	}
	for i := 0; i < n; i++ {
		if !s.Contains(tbl.Intern(fmt.Sprintf("member%d", i))) {
			t.Errorf("member%d missing", i)
		}
	}
	if s.Contains(tbl.Intern("absent")) {
		t.Error("absent member reported present")
	}
	if s.Stats().Slots < s.Len()*3 {
		t.Errorf("capacity rule violated: %+v", s.Stats())
	}
}

func TestIter(t *testing.T) {
	s := identset.New[*item](0, identity.Hash32[item], identity.Equal[item])
	members := map[*item]bool{}
	for i := 0; i < 50; i++ {
		it := &item{n: i}
		members[it] = false
		s.Add(it)
	}
	s.Iter(func(k *item) bool {
		members[k] = true
		return true
	})
	for k, seen := range members {
		if !seen {
			t.Errorf("member %d not visited", k.n)
		}
	}
}
