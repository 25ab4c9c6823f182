// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package main

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// Config is the representation of idbench's YAML config file.
type Config struct {
	// Workloads to run, each confined to its own goroutine and its
	// own table.
	Workloads []Workload
}

// Workload describes one stream of operations against one table.
type Workload struct {
	Name string

	// Keys selects the key kind: "object" (pointer identity) or
	// "symbol" (interned strings).
	Keys string

	// Keyspace is the number of distinct keys drawn from. Defaults
	// to Inserts.
	Keyspace int

	// Inserts and Lookups are operation counts. Keys are drawn from
	// the keyspace at random, so inserts overwrite once the keyspace
	// is exhausted.
	Inserts int
	Lookups int

	// Presize is the pair-count hint passed to the table. Zero means
	// start empty and grow.
	Presize uint

	// Seed for the key stream. Zero picks 1, so runs are
	// reproducible by default.
	Seed uint64
}

const (
	keysObject = "object"
	keysSymbol = "symbol"
)

func parseConfig(cfg []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(cfg, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}
	if len(config.Workloads) == 0 {
		return nil, fmt.Errorf("config has no workloads")
	}
	seen := make(map[string]bool)
	for i := range config.Workloads {
		w := &config.Workloads[i]
		if w.Name == "" {
			w.Name = fmt.Sprintf("workload%d", i)
		}
		if seen[w.Name] {
			return nil, fmt.Errorf("duplicate workload name %q", w.Name)
		}
		seen[w.Name] = true
		switch w.Keys {
		case "":
			w.Keys = keysObject
		case keysObject, keysSymbol:
		default:
			return nil, fmt.Errorf("workload %q: unknown key kind %q", w.Name, w.Keys)
		}
		if w.Inserts <= 0 {
			return nil, fmt.Errorf("workload %q: inserts must be positive", w.Name)
		}
		if w.Lookups < 0 {
			return nil, fmt.Errorf("workload %q: lookups must not be negative", w.Name)
		}
		if w.Keyspace == 0 {
			w.Keyspace = w.Inserts
		}
		if w.Keyspace < 0 {
			return nil, fmt.Errorf("workload %q: keyspace must not be negative", w.Name)
		}
		if w.Seed == 0 {
			w.Seed = 1
		}
	}
	return config, nil
}
