// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package identity_test

import (
	"testing"

	"github.com/aristanetworks/identdict"
	"github.com/aristanetworks/identdict/identity"
)

type node struct {
	label string
}

func TestHash32Deterministic(t *testing.T) {
	n := &node{label: "a"}
	h := identity.Hash32(n)
	for i := 0; i < 10; i++ {
		if got := identity.Hash32(n); got != h {
			t.Fatalf("hash changed from %#x to %#x", h, got)
		}
	}
}

func TestHash32Spreads(t *testing.T) {
	seen := make(map[uint32]bool)
	nodes := make([]*node, 1000)
	for i := range nodes {
		nodes[i] = &node{label: "same"}
		seen[identity.Hash32(nodes[i])] = true
	}
	// Distinct allocations should rarely collide once mixed.
	if len(seen) < 990 {
		t.Errorf("only %d distinct hashes for 1000 objects", len(seen))
	}
}

func TestEqual(t *testing.T) {
	a := &node{label: "x"}
	b := &node{label: "x"}
	if !identity.Equal(a, a) {
		t.Error("object not equal to itself")
	}
	if identity.Equal(a, b) {
		t.Error("structurally equal objects reported identical")
	}
}

func TestDictIntegration(t *testing.T) {
	d := identdict.New[*node, int](0, identity.Hash32[node], identity.Equal[node])
	nodes := make([]*node, 200)
	for i := range nodes {
		nodes[i] = &node{label: "n"}
		d.Put(nodes[i], i)
	}
	if d.Len() != len(nodes) {
		t.Fatalf("len is %d, expected %d", d.Len(), len(nodes))
	}
	for i, n := range nodes {
		if v, ok := d.Get(n); !ok || v != i {
			t.Errorf("node %d: got (%d, %t)", i, v, ok)
		}
	}
}

type selfHashed struct {
	id uint32
}

func (s *selfHashed) Hash32() uint32 { return s.id }

func (s *selfHashed) Identical(other any) bool {
	o, ok := other.(*selfHashed)
	return ok && o == s
}

func TestHashableAdapters(t *testing.T) {
	d := identdict.New[identity.Hashable32, string](0,
		identity.HashableHash, identity.HashableEqual)
	a := &selfHashed{id: 1}
	b := &selfHashed{id: 1} // same hash, different identity
	d.Put(a, "a")
	d.Put(b, "b")
	if d.Len() != 2 {
		t.Fatalf("len is %d, expected 2", d.Len())
	}
	if v, _ := d.Get(a); v != "a" {
		t.Errorf("a is %q", v)
	}
	if v, _ := d.Get(b); v != "b" {
		t.Errorf("b is %q", v)
	}
}
