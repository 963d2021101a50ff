package models

// Snapshot is the immutable result of one ingestion run. Rows are in deterministic key order;
// presentation order is applied on copies by the sorters package.
//
// Example JSON:
//
//	{
//	  "runId": "01J9ZK3V8W6YF4T4Q2N3M5P7RS",
//	  "source": "requests.ndjson",
//	  "summary": {"linesRead": 3, "blankLines": 0, "malformedJson": 1, "missingUrl": 0, "requests": 2, "totalBandwidth": 7100},
//	  "assets": [{"id": "p1/ds/a1", "kind": "image", "extension": "jpg", "requestCount": 2, "totalBandwidth": 7100}],
//	  "extensions": [{"kind": "image", "extension": "jpg", "requestCount": 1, "totalBandwidth": 5100, "distinctAssetCount": 1}],
//	  "clients": [{"family": "Chrome", "requestCount": 2, "totalBandwidth": 7100}]
//	}
type Snapshot struct {
	RunID      string               `json:"runId" yaml:"runId"`
	Source     string               `json:"source" yaml:"source"`
	Summary    Summary              `json:"summary" yaml:"summary"`
	Assets     []AssetAggregate     `json:"assets" yaml:"assets"`
	Extensions []ExtensionAggregate `json:"extensions" yaml:"extensions"`
	Clients    []ClientAggregate    `json:"clients" yaml:"clients"`
}

// AggregateTables holds the folded tables in deterministic key order.
type AggregateTables struct {
	Assets     []AssetAggregate
	Extensions []ExtensionAggregate
	Clients    []ClientAggregate
}
