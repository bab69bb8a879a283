// SPDX-License-Identifier: MIT
// Package: graphgen/partition
//
// metrics.go - Prometheus view over Cache counters.

package partition

import "github.com/prometheus/client_golang/prometheus"

// Collector exports the counters of one Cache to Prometheus.
// Register it with prometheus.MustRegister or a custom registry.
type Collector struct {
	cache *Cache

	hits    *prometheus.Desc
	misses  *prometheus.Desc
	entries *prometheus.Desc
}

// NewCollector returns a Collector for c; constLabels distinguish several
// caches in one registry and may be nil.
func NewCollector(c *Cache, constLabels prometheus.Labels) *Collector {
	return &Collector{
		cache: c,
		hits: prometheus.NewDesc("graphgen_partition_cache_hits_total",
			"Restricted partition lookups served from the cache.", nil, constLabels),
		misses: prometheus.NewDesc("graphgen_partition_cache_misses_total",
			"Restricted partition lookups that ran the enumeration.", nil, constLabels),
		entries: prometheus.NewDesc("graphgen_partition_cache_entries",
			"Parameter sets currently stored in the cache.", nil, constLabels),
	}
}

// Describe implements prometheus.Collector.
func (col *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- col.hits
	ch <- col.misses
	ch <- col.entries
}

// Collect implements prometheus.Collector.
func (col *Collector) Collect(ch chan<- prometheus.Metric) {
	s := col.cache.Stats()
	ch <- prometheus.MustNewConstMetric(col.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(col.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(col.entries, prometheus.GaugeValue, float64(s.Entries))
}
