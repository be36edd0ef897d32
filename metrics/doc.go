// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus counters for the poll.

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	mux.Handle("GET /metrics", m.Handler())

# Counters

	bayroumeter_users_registered_total
	bayroumeter_votes_cast_total{choice}
	bayroumeter_rejections_total{operation,kind}
*/
package metrics
