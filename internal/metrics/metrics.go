// Package metrics owns the Prometheus registry and the service's counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var (
	// EventsPublished counts events accepted by the API and sent to SQS.
	EventsPublished = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "sales_insights",
		Name:      "events_published_total",
		Help:      "Events accepted by the API and published to the queue.",
	})

	// EventsWritten counts events the consumer wrote to ClickHouse.
	EventsWritten = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "sales_insights",
		Name:      "events_written_total",
		Help:      "Events written to the event store by the consumer.",
	})

	// MalformedMessages counts queue messages dropped by ingestion validation.
	MalformedMessages = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "sales_insights",
		Name:      "malformed_messages_total",
		Help:      "Queue messages dropped because they failed ingestion validation.",
	})

	// Refreshes counts full analysis passes over the event snapshot.
	Refreshes = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "sales_insights",
		Name:      "refreshes_total",
		Help:      "Completed insight refresh passes.",
	})
)

// Registry returns the service-owned Prometheus registry for promhttp.
func Registry() *prometheus.Registry {
	return registry
}
