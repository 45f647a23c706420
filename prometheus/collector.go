// Package prometheus exports bitarray buffer metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, _ := bitprom.NewCollector(reg, "graph")
//	b, _ := bitarray.New(n, bitarray.WithMetricsCollector(mc))
package prometheus

import (
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/bitarray"
)

var _ bitarray.MetricsCollector = (*Collector)(nil)

// Collector implements bitarray.MetricsCollector with Prometheus metrics:
//
//	<ns>_bitarray_allocations_total{result="ok|error"}
//	<ns>_bitarray_allocated_words_total
//	<ns>_bitarray_releases_total
//	<ns>_bitarray_live_words
type Collector struct {
	allocs     *prom.CounterVec
	allocWords prom.Counter
	releases   prom.Counter
	liveWords  prom.Gauge
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prom.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		allocs: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "bitarray",
			Name:      "allocations_total",
			Help:      "Buffer allocation attempts by result.",
		}, []string{"result"}),
		allocWords: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "bitarray",
			Name:      "allocated_words_total",
			Help:      "Words allocated by successful allocations.",
		}),
		releases: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "bitarray",
			Name:      "releases_total",
			Help:      "Owned buffers released.",
		}),
		liveWords: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Subsystem: "bitarray",
			Name:      "live_words",
			Help:      "Words currently held by owned buffers.",
		}),
	}

	for _, m := range []prom.Collector{c.allocs, c.allocWords, c.releases, c.liveWords} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordAlloc implements bitarray.MetricsCollector.
func (c *Collector) RecordAlloc(words int, err error) {
	if err != nil {
		c.allocs.WithLabelValues("error").Inc()
		return
	}
	c.allocs.WithLabelValues("ok").Inc()
	c.allocWords.Add(float64(words))
	c.liveWords.Add(float64(words))
}

// RecordRelease implements bitarray.MetricsCollector.
func (c *Collector) RecordRelease(words int) {
	c.releases.Inc()
	c.liveWords.Sub(float64(words))
}
