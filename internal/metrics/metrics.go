package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DispatchLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dispatch_latency_ms",
		Help:    "Time (ms) to route one inbound message through the intent dispatcher",
		Buckets: prometheus.ExponentialBuckets(10, 2, 8),
	})

	DeliveryLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "delivery_latency_ms",
		Help:    "Time (ms) to post one outbound payload to the WhatsApp API",
		Buckets: prometheus.ExponentialBuckets(100, 2, 8),
	})

	BeautyServiceLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "beauty_service_latency_ms",
		Help:    "Time (ms) for one recommendation or try-on edge call",
		Buckets: prometheus.ExponentialBuckets(100, 2, 8),
	})

	EventsReceived = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "webhook_events_received_total",
		Help: "Webhook POST events enqueued for processing",
	})

	EventsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "webhook_events_failed_total",
		Help: "Events whose processing ended in an error",
	})

	EventsDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "webhook_events_dropped_total",
		Help: "Events discarded because the worker queue was full",
	})

	HandlerSelected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "intent_handler_selected_total",
		Help: "How often each intent handler won the dispatch",
	}, []string{"intent"})

	PayloadsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "payloads_sent_total",
		Help: "Outbound payloads delivered successfully",
	})

	PayloadsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "payloads_failed_total",
		Help: "Outbound payloads that failed delivery",
	})
)

func init() {
	prometheus.MustRegister(
		DispatchLatency,
		DeliveryLatency,
		BeautyServiceLatency,
		EventsReceived,
		EventsFailed,
		EventsDropped,
		HandlerSelected,
		PayloadsSent,
		PayloadsFailed,
	)
}
