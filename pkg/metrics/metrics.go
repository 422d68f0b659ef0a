package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"cache", "op"}, // op: hit|miss|evicted|expired|coalesced
	)
	CacheSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
		[]string{"cache"},
	)
)

var (
	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Requests to the product catalog by outcome",
		},
		[]string{"op", "outcome"}, // outcome: ok|not_found|timeout|error
	)
	UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of requests to the product catalog",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
	SimilarProductsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "similar_products_dropped_total",
			Help: "Similar products omitted from a response because their detail could not be fetched",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре; повторные вызовы ничего не делают.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CacheOps, CacheSize,
			UpstreamRequests, UpstreamDuration, SimilarProductsDropped,
		)
	})
}
