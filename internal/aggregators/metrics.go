package aggregators

import (
	"asset-log-explorer/internal/shared/metrics"
)

// metricRecordsAggregatedTotal counts records folded into the tables, labelled by asset kind
// (image, file, query, unclassified).
var metricRecordsAggregatedTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubAggregation,
		Name:      "records_aggregated_total",
	},
	[]string{metrics.FieldKind},
)
