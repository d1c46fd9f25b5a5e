// Copyright (C) 2025 ravindu-rev
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later


// Package metrics exposes Prometheus collectors for DID resolutions and the
// JSON-RPC traffic they generate.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// resolutionsTotal counts finished resolutions by outcome
	resolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ethr_resolutions_total",
			Help: "Total number of did:ethr resolutions by status",
		},
		[]string{"status"},
	)

	// rpcCallsTotal counts JSON-RPC round trips by method
	rpcCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ethr_rpc_calls_total",
			Help: "Total number of JSON-RPC calls issued during resolution",
		},
		[]string{"method"},
	)

	// resolutionDuration observes wall-clock resolution time
	resolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ethr_resolution_duration_seconds",
			Help:    "Duration of did:ethr resolutions",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// RecordResolution records a finished resolution and its duration.
func RecordResolution(err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	resolutionsTotal.WithLabelValues(status).Inc()
	resolutionDuration.Observe(duration.Seconds())
}

// RecordRPCCall records a single JSON-RPC round trip.
func RecordRPCCall(method string) {
	rpcCallsTotal.WithLabelValues(method).Inc()
}
