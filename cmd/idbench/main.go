// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// The idbench command exercises identity tables with configurable
// workloads and reports throughput and table counters. Workloads run
// concurrently but each table is confined to the goroutine driving
// it. With -monitoraddr the counters are also served live over HTTP
// as prometheus metrics, next to the usual debug endpoints.
package main

import (
	"flag"
	"os"

	"github.com/aristanetworks/glog"
	"github.com/aristanetworks/identdict/monitor"
	"golang.org/x/sync/errgroup"
)

// defaultConfig is used when no -config flag is given.
var defaultConfig = []byte(`
workloads:
  - name: objects
    keys: object
    inserts: 1000000
    lookups: 1000000
  - name: symbols
    keys: symbol
    keyspace: 100000
    inserts: 1000000
    lookups: 1000000
`)

func main() {
	configFlag := flag.String("config", "", "Path to the workload config file")
	monitorAddr := flag.String("monitoraddr", "",
		"Address to serve metrics on, e.g. :8080 (disabled if empty)")
	flag.Parse()

	cfgData := defaultConfig
	if *configFlag != "" {
		var err error
		cfgData, err = os.ReadFile(*configFlag)
		if err != nil {
			glog.Fatalf("Can't read config file %q: %v", *configFlag, err)
		}
	}
	config, err := parseConfig(cfgData)
	if err != nil {
		glog.Fatal(err)
	}

	var coll *monitor.Collector
	if *monitorAddr != "" {
		coll = monitor.NewCollector()
		go monitor.NewMonitorServer(*monitorAddr, coll).Run()
	}

	results := make([]result, len(config.Workloads))
	var group errgroup.Group
	for i, w := range config.Workloads {
		i, w := i, w
		group.Go(func() error {
			glog.V(1).Infof("starting workload %q", w.Name)
			results[i] = runWorkload(w, coll)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		glog.Fatal(err)
	}

	for _, r := range results {
		glog.Infof("%s", r)
	}
	glog.Flush()
}
