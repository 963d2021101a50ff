package ingestors

import (
	"asset-log-explorer/internal/shared/metrics"
)

const (
	outcomeOK            = "ok"
	outcomeBlank         = "blank"
	outcomeMalformedJSON = "malformed_json"
	outcomeMissingURL    = "missing_url"
	outcomeTooLong       = "too_long"
)

var (
	// metricLinesTotal counts scanned NDJSON lines by outcome.
	metricLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_total",
		},
		[]string{metrics.FieldOutcome},
	)

	// metricRunsTotal counts ingestion runs by error code (empty on success).
	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricSnapshotRows is the row count of each table of the last completed run.
	metricSnapshotRows = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "snapshot_rows",
		},
		[]string{metrics.FieldTable},
	)

	// metricLineBytes observes the length of scanned lines.
	metricLineBytes = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "line_bytes",
			Buckets:   metrics.ExponentialBuckets(64, 4, 8),
		},
		[]string{metrics.FieldOutcome},
	)
)
