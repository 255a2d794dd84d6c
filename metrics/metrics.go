// Copyright 2018 The CubeFS Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package metrics exports Prometheus counters and histograms for the
// four cache operations, filling the role the teacher codebase's
// util/exporter package plays when imported by datanode/partition.go.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eccache"

var (
	// OpLatency buckets the wall-clock time spent inside one Cache
	// operation, labeled by op (write/read/remove/clear).
	OpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "op_latency_seconds",
		Help:      "Latency of extent cache operations in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})

	// OpTotal counts operations by op and outcome
	// (ok/invalid_argument/version_conflict/error); a too-small read
	// buffer is counted as invalid_argument.
	OpTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "op_total",
		Help:      "Count of extent cache operations by outcome.",
	}, []string{"op", "outcome"})

	// ObjectCount reports the current number of objects the Cache holds
	// an ExtentMap for. It is a plain Gauge; server.New sets it.
	ObjectCount = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "object_count",
		Help:      "Number of objects currently resident in the cache.",
	})
)

// Observe records one operation's latency and outcome.
func Observe(op, outcome string, start time.Time) {
	OpLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
	OpTotal.WithLabelValues(op, outcome).Inc()
}
