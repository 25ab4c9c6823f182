// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/aristanetworks/identdict"
	"github.com/aristanetworks/identdict/identity"
	"github.com/aristanetworks/identdict/monitor"
	"github.com/aristanetworks/identdict/symbol"
	"golang.org/x/exp/rand"
)

// result reports one finished workload.
type result struct {
	name      string
	insertDur time.Duration
	lookupDur time.Duration
	hits      int
	stats     identdict.Stats
}

func (r result) String() string {
	return fmt.Sprintf(
		"%s: insert %v, lookup %v, hits %d, entries %d, slots %d, resizes %d, probe steps %d",
		r.name, r.insertDur, r.lookupDur, r.hits,
		r.stats.Entries, r.stats.Slots, r.stats.Resizes, r.stats.ProbeSteps)
}

// object is the pointer-identity benchmark key.
type object struct {
	id int
}

// runWorkload drives one table with w's operation stream. The table
// is confined to this goroutine; the monitor snapshots it through mu.
func runWorkload(w Workload, coll *monitor.Collector) result {
	switch w.Keys {
	case keysSymbol:
		var tbl symbol.Table
		keys := make([]*symbol.Sym, w.Keyspace)
		for i := range keys {
			keys[i] = tbl.Intern(fmt.Sprintf("%s-%d", w.Name, i))
		}
		d := identdict.New[*symbol.Sym, uint64](w.Presize, symbol.Hash, symbol.Identical)
		return run(w, keys, d, coll)
	default:
		keys := make([]*object, w.Keyspace)
		for i := range keys {
			keys[i] = &object{id: i}
		}
		d := identdict.New[*object, uint64](w.Presize,
			identity.Hash32[object], identity.Equal[object])
		return run(w, keys, d, coll)
	}
}

func run[K any](w Workload, keys []K, d *identdict.Dict[K, uint64],
	coll *monitor.Collector) result {
	var mu sync.Mutex
	if coll != nil {
		coll.Register(w.Name, monitor.Guarded(&mu, d))
	}
	rng := rand.New(rand.NewSource(w.Seed))

	start := time.Now()
	for i := 0; i < w.Inserts; i++ {
		mu.Lock()
		d.Put(keys[rng.Intn(len(keys))], uint64(i))
		mu.Unlock()
	}
	insertDur := time.Since(start)

	var hits int
	start = time.Now()
	for i := 0; i < w.Lookups; i++ {
		mu.Lock()
		if _, ok := d.Get(keys[rng.Intn(len(keys))]); ok {
			hits++
		}
		mu.Unlock()
	}
	lookupDur := time.Since(start)

	mu.Lock()
	stats := d.Stats()
	mu.Unlock()
	return result{
		name:      w.Name,
		insertDur: insertDur,
		lookupDur: lookupDur,
		hits:      hits,
		stats:     stats,
	}
}
