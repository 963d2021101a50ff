package browsers

import (
	"asset-log-explorer/internal/shared/metrics"
)

// metricOpenURLTotal counts open-url attempts by error code (empty on success).
var metricOpenURLTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubUI,
		Name:      "open_url_total",
	},
	[]string{metrics.FieldErrorCode},
)
