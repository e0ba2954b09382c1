// Package bench measures sorting algorithms on table attributes and summarizes
// the results as per-size speedups.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package bench

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "recsort"

	labelAlgo = "algo"
	labelAttr = "attribute"
)

// Metrics is a private registry: one histogram of median sort durations and
// a counter of measurements, both labeled by algorithm and attribute.
type Metrics struct {
	reg     *prometheus.Registry
	seconds *prometheus.HistogramVec
	count   *prometheus.CounterVec
	skipped prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{reg: prometheus.NewRegistry()}
	m.seconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sort_seconds",
		Help:      "median time to sort the first n keys of an attribute",
		Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
	}, []string{labelAlgo, labelAttr})
	m.count = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sort_measurements_total",
		Help:      "number of completed measurements",
	}, []string{labelAlgo, labelAttr})
	m.skipped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sort_skipped_total",
		Help:      "measurements skipped due to the exchange sort size cap",
	})
	m.reg.MustRegister(m.seconds, m.count, m.skipped)
	return m
}

func (m *Metrics) observe(res *Result) {
	labels := prometheus.Labels{labelAlgo: res.Algo, labelAttr: res.Attribute}
	m.seconds.With(labels).Observe(res.Seconds)
	m.count.With(labels).Inc()
}

func (m *Metrics) skip() { m.skipped.Inc() }

// WriteTextfile writes all metrics in the Prometheus text format (node exporter
// "textfile" collector).
func (m *Metrics) WriteTextfile(fpath string) error {
	return prometheus.WriteToTextfile(fpath, m.reg)
}
