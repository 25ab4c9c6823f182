// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package monitor

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/aristanetworks/glog"
)

// setLogVerbosity handles POST /debug/loglevel?glog=N, adjusting glog
// verbosity on a running process.
func setLogVerbosity(w http.ResponseWriter, r *http.Request) {
	fail := func(msg string, code int) {
		msg = fmt.Sprintf("loglevel error: %v (code %v)", msg, code)
		glog.Error(msg)
		http.Error(w, msg, code)
	}
	if r.Method != http.MethodPost {
		fail("only supports POST method", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		fail("could not parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	v := r.Form.Get("glog")
	if v == "" {
		fail("bad request: no change", http.StatusBadRequest)
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fail(fmt.Sprintf("invalid verbosity %q", v), http.StatusBadRequest)
		return
	}
	glog.SetVGlobal(v)
	glog.Infof("monitor: set glog verbosity to %d", n)
	fmt.Fprint(w, "OK\n")
}
