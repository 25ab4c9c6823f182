// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package identdict provides Dict, a hash table keyed by object
// identity rather than structural equality. Entries are kept in one
// flat array of key/value pairs and located by linear probing, so
// successive probe steps touch adjacent memory. The table grows
// whenever its occupancy would exceed a third of its slots, which
// keeps probe runs short and guarantees every scan ends at an empty
// pair.
//
// Callers supply the two identity services: a hash function returning
// a 32-bit value that is stable for a given key's identity, and an
// equality function that is true only when both arguments refer to
// the same entity. The following are the caller's responsibility:
//   - equal(a, b) => hash(a) == hash(b)
//   - hash(a) must not change while a is stored in the Dict
//
// A Dict is not safe for concurrent use. Put must be serialized with
// all other calls; a resize replaces the backing array wholesale and
// a concurrent reader could observe a torn table.
package identdict

// minSlots is the smallest storage allocation, in slots. Two slots
// make up one key/value pair. Kept even so the pair accounting below
// never sees a half pair.
const minSlots = 4

type pair[K, V any] struct {
	key      K
	value    V
	occupied bool
}

// Dict is an identity-keyed hash table. The zero value is not usable;
// call New.
type Dict[K any, V any] struct {
	pairs   []pair[K, V]
	count   int
	hash    func(K) uint32
	equal   func(K, K) bool
	barrier func(container, ref any)

	resizes uint64
	probes  uint64
}

// Option configures a Dict at construction time.
type Option[K any, V any] func(*Dict[K, V])

// WithWriteBarrier installs fn to be called once for every key or
// value reference written into the Dict's storage, including the
// copies made while rehashing. Hosts that track reference writes
// themselves use this to keep their bookkeeping sound; under Go's own
// collector it is unnecessary.
func WithWriteBarrier[K any, V any](fn func(container, ref any)) Option[K, V] {
	return func(d *Dict[K, V]) {
		d.barrier = fn
	}
}

// New returns a Dict sized to hold size pairs without growing. hash
// and equal define key identity for this table and must be non-nil.
func New[K any, V any](size uint, hash func(K) uint32,
	equal func(K, K) bool, opts ...Option[K, V]) *Dict[K, V] {
	d := &Dict[K, V]{hash: hash, equal: equal}
	for _, o := range opts {
		o(d)
	}
	if size != 0 {
		d.pairs = make([]pair[K, V], evenSlots(int(size)*3)/2)
	}
	return d
}

// evenSlots rounds n up to the allocation granularity: at least
// minSlots, always even.
func evenSlots(n int) int {
	if n < minSlots {
		return minSlots
	}
	if n%2 != 0 {
		n++
	}
	return n
}

// Len returns the number of entries in d.
func (d *Dict[K, V]) Len() int {
	return d.count
}

// Cap returns the capacity of d's storage in slots. Each entry
// occupies two slots, so d holds at most Cap()/2 entries, and the
// growth rule keeps Cap() >= 3*Len() after every Put.
func (d *Dict[K, V]) Cap() int {
	return 2 * len(d.pairs)
}

// probe scans k's probe path: from the pair the hash selects, forward
// one pair at a time, wrapping to the start of the array at the end.
// It returns the index of the pair holding a key identity-equal to k
// (found true), or of the first empty pair on the path (found false).
// ok is false only if every pair was examined without resolving,
// a state the growth rule makes unreachable; the explicit bound is
// there so even a damaged table cannot send the scan spinning.
func (d *Dict[K, V]) probe(k K) (idx, steps int, found, ok bool) {
	n := len(d.pairs)
	if n == 0 {
		return 0, 0, false, false
	}
	i := int(d.hash(k) % uint32(n))
	for steps = 1; steps <= n; steps++ {
		p := &d.pairs[i]
		if !p.occupied {
			return i, steps, false, true
		}
		if d.equal(p.key, k) {
			return i, steps, true, true
		}
		i++
		if i == n {
			i = 0
		}
	}
	return 0, steps, false, false
}

// Get returns the value associated with k. Absence is not an error:
// the second result is false and the first is V's zero value.
func (d *Dict[K, V]) Get(k K) (V, bool) {
	idx, _, found, ok := d.probe(k)
	if !ok || !found {
		var zero V
		return zero, false
	}
	return d.pairs[idx].value, true
}

// Put associates k with v, overwriting any entry whose key is
// identity-equal to k. After a new entry is added the growth check
// runs before Put returns; a single insert is never left unchecked,
// or the probe termination guarantee would be lost.
func (d *Dict[K, V]) Put(k K, v V) {
	if len(d.pairs) == 0 {
		d.grow(minSlots)
	}
	for {
		idx, steps, found, ok := d.probe(k)
		d.probes += uint64(steps)
		if !ok {
			// Every pair occupied and no match. Unreachable while the
			// growth rule holds; grow and rescan rather than fail.
			d.grow((d.count + 1) * 3)
			continue
		}
		p := &d.pairs[idx]
		p.value = v
		d.notify(v)
		if !found {
			p.key = k
			p.occupied = true
			d.notify(k)
			d.count++
			if d.Cap() < d.count*3 {
				d.grow(d.count * 3)
			}
		}
		return
	}
}

// Iter calls f for each entry in storage order until f returns false.
// f must not call Put on d.
func (d *Dict[K, V]) Iter(f func(k K, v V) bool) {
	for i := range d.pairs {
		p := &d.pairs[i]
		if !p.occupied {
			continue
		}
		if !f(p.key, p.value) {
			return
		}
	}
}

// grow replaces d's storage with a fresh array of at least slots
// slots and rehashes every live pair into it. The old array stays
// intact until the new one holds every entry, so an allocation
// failure cannot leave d torn.
func (d *Dict[K, V]) grow(slots int) {
	if min := d.count * 3; slots < min {
		slots = min
	}
	slots = evenSlots(slots)
	fresh := make([]pair[K, V], slots/2)
	for i := range d.pairs {
		p := &d.pairs[i]
		if !p.occupied {
			continue
		}
		d.place(fresh, p.key, p.value)
	}
	d.pairs = fresh
	d.resizes++
}

// place copies an entry into the first empty pair on its probe path
// in pairs. pairs always has more pairs than d has entries, so the
// scan terminates. Keys in d are unique; no equality checks needed.
func (d *Dict[K, V]) place(pairs []pair[K, V], k K, v V) {
	n := len(pairs)
	i := int(d.hash(k) % uint32(n))
	for pairs[i].occupied {
		d.probes++
		i++
		if i == n {
			i = 0
		}
	}
	pairs[i] = pair[K, V]{key: k, value: v, occupied: true}
	d.notify(v)
	d.notify(k)
}

func (d *Dict[K, V]) notify(ref any) {
	if d.barrier != nil {
		d.barrier(d, ref)
	}
}

// Stats is a snapshot of a Dict's internal counters.
type Stats struct {
	// Entries is the number of live entries, Slots the storage
	// capacity in slots.
	Entries int
	Slots   int
	// Resizes counts storage reallocations over the Dict's lifetime.
	Resizes uint64
	// ProbeSteps counts pairs examined while placing entries, across
	// Put and rehash. A ratio well above one step per Put means the
	// hash function is clustering.
	ProbeSteps uint64
}

// Stats returns a snapshot of d's counters.
func (d *Dict[K, V]) Stats() Stats {
	return Stats{
		Entries:    d.count,
		Slots:      d.Cap(),
		Resizes:    d.resizes,
		ProbeSteps: d.probes,
	}
}
