// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package monitor

import (
	"expvar"
	"sync"

	"github.com/aristanetworks/identdict"
	"github.com/prometheus/client_golang/prometheus"
)

// A StatsSource yields a point-in-time snapshot of a table's
// counters. *identdict.Dict and *identset.Set satisfy it directly,
// but a Dict is not safe to snapshot while another goroutine mutates
// it; see Guarded.
type StatsSource interface {
	Stats() identdict.Stats
}

type guarded struct {
	mu  sync.Locker
	src StatsSource
}

func (g guarded) Stats() identdict.Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.src.Stats()
}

// Guarded wraps src so every snapshot is taken under mu. Use it when
// the table's owner mutates it under the same lock; the collector
// scrapes from an HTTP goroutine.
func Guarded(mu sync.Locker, src StatsSource) StatsSource {
	return guarded{mu: mu, src: src}
}

// Collector exports the counters of registered tables as prometheus
// metrics, labelled by table name.
type Collector struct {
	mu     sync.Mutex
	tables map[string]StatsSource

	entries    *prometheus.Desc
	slots      *prometheus.Desc
	resizes    *prometheus.Desc
	probeSteps *prometheus.Desc
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	labels := []string{"table"}
	return &Collector{
		tables: make(map[string]StatsSource),
		entries: prometheus.NewDesc("identdict_entries",
			"Live entries in the table", labels, nil),
		slots: prometheus.NewDesc("identdict_slots",
			"Storage capacity in slots (two slots per entry)", labels, nil),
		resizes: prometheus.NewDesc("identdict_resizes_total",
			"Storage reallocations since table creation", labels, nil),
		probeSteps: prometheus.NewDesc("identdict_probe_steps_total",
			"Pairs examined while placing entries", labels, nil),
	}
}

// Register adds src's counters to the collector's output under name.
// Re-registering a name replaces the previous source.
func (c *Collector) Register(name string, src StatsSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables[name] = src
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.slots
	ch <- c.resizes
	ch <- c.probeSteps
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, src := range c.tables {
		s := src.Stats()
		ch <- prometheus.MustNewConstMetric(c.entries,
			prometheus.GaugeValue, float64(s.Entries), name)
		ch <- prometheus.MustNewConstMetric(c.slots,
			prometheus.GaugeValue, float64(s.Slots), name)
		ch <- prometheus.MustNewConstMetric(c.resizes,
			prometheus.CounterValue, float64(s.Resizes), name)
		ch <- prometheus.MustNewConstMetric(c.probeSteps,
			prometheus.CounterValue, float64(s.ProbeSteps), name)
	}
}

// PublishExpvar exposes src's counters under name in the process
// expvar namespace, next to the ones the debug server already serves.
func PublishExpvar(name string, src StatsSource) {
	expvar.Publish(name, expvar.Func(func() any {
		s := src.Stats()
		return map[string]uint64{
			"entries":     uint64(s.Entries),
			"slots":       uint64(s.Slots),
			"resizes":     s.Resizes,
			"probe_steps": s.ProbeSteps,
		}
	}))
}
