package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	driverMemory = "memory"
	driverRedis  = "redis"
)

var (
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Total number of order cache hits.",
	}, []string{"driver"})

	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Total number of order cache misses, including expired entries.",
	}, []string{"driver"})

	cacheEvictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "cache",
		Name:      "evictions_total",
		Help:      "Total number of entries evicted because the cache was full.",
	}, []string{"driver"})

	cacheErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "cache",
		Name:      "errors_total",
		Help:      "Total number of cache backend errors.",
	}, []string{"driver", "op"})
)
