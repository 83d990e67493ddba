// Package metrics defines the Prometheus instruments for the indexer
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Drop reasons recorded on IndexerMetrics.DroppedEvents.
const (
	DropReasonUnclusteredParent = "unclustered_parent"
	DropReasonNoCluster         = "no_cluster"
	DropReasonMissingCounter    = "missing_counter"
)

// IndexerMetrics counts message outcomes in the cluster maintainer. Dropped
// events are the acknowledged gaps of the pipeline (out-of-order category
// delivery, products whose properties have no counter); counting them makes
// the gaps visible instead of silent.
type IndexerMetrics struct {
	AppliedMessages   *prometheus.CounterVec
	DuplicateMessages prometheus.Counter
	DroppedEvents     *prometheus.CounterVec
}

// NewIndexerMetrics registers the indexer instruments on the given registerer.
func NewIndexerMetrics(reg prometheus.Registerer) *IndexerMetrics {
	factory := promauto.With(reg)

	return &IndexerMetrics{
		AppliedMessages: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "indexer_applied_messages_total",
			Help: "Integration messages applied to the cluster store, by message type.",
		}, []string{"type"}),
		DuplicateMessages: factory.NewCounter(prometheus.CounterOpts{
			Name: "indexer_duplicate_messages_total",
			Help: "Redelivered messages skipped by the idempotency log.",
		}),
		DroppedEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "indexer_dropped_events_total",
			Help: "Messages or counter updates dropped without effect, by reason.",
		}, []string{"reason"}),
	}
}
