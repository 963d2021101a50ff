package models

// AssetAggregate is one row of the by-asset table.
type AssetAggregate struct {
	Key            AssetKey  `json:"-" yaml:"-"`
	ID             string    `json:"id" yaml:"id"`
	Kind           AssetKind `json:"kind" yaml:"kind"`
	Extension      string    `json:"extension" yaml:"extension"` // fixed by the first contributing record
	RequestCount   uint64    `json:"requestCount" yaml:"requestCount"`
	TotalBandwidth uint64    `json:"totalBandwidth" yaml:"totalBandwidth"`
	RequestBytes   uint64    `json:"requestBytes" yaml:"requestBytes"`
	SampleURL      string    `json:"sampleUrl,omitempty" yaml:"sampleUrl,omitempty"`
}

// AverageSize is TotalBandwidth / RequestCount. Live rows always have RequestCount >= 1.
func (a AssetAggregate) AverageSize() float64 {
	return averageSize(a.TotalBandwidth, a.RequestCount)
}

// ExtensionKey identifies one by-type row. Extension is lowercased; empty means "no extension".
type ExtensionKey struct {
	Kind      AssetKind
	Extension string
}

const noExtensionLabel = "(none)"

// Label is the display form of the extension, e.g. ".jpg" or "(none)".
func (k ExtensionKey) Label() string {
	if k.Extension == "" {
		return noExtensionLabel
	}
	return "." + k.Extension
}

// String is the composite key form used for tie-breaking.
func (k ExtensionKey) String() string {
	return string(k.Kind) + ":" + k.Extension
}

// ExtensionAggregate is one row of the by-type table.
type ExtensionAggregate struct {
	Key                ExtensionKey `json:"-" yaml:"-"`
	Kind               AssetKind    `json:"kind" yaml:"kind"`
	Extension          string       `json:"extension" yaml:"extension"`
	RequestCount       uint64       `json:"requestCount" yaml:"requestCount"`
	TotalBandwidth     uint64       `json:"totalBandwidth" yaml:"totalBandwidth"`
	RequestBytes       uint64       `json:"requestBytes" yaml:"requestBytes"`
	DistinctAssetCount uint64       `json:"distinctAssetCount" yaml:"distinctAssetCount"`
	SampleURL          string       `json:"sampleUrl,omitempty" yaml:"sampleUrl,omitempty"`
}

func (e ExtensionAggregate) AverageSize() float64 {
	return averageSize(e.TotalBandwidth, e.RequestCount)
}

// ClientAggregate is one row of the by-client table, keyed by user agent family.
type ClientAggregate struct {
	Family         string `json:"family" yaml:"family"`
	RequestCount   uint64 `json:"requestCount" yaml:"requestCount"`
	TotalBandwidth uint64 `json:"totalBandwidth" yaml:"totalBandwidth"`
}

func (c ClientAggregate) AverageSize() float64 {
	return averageSize(c.TotalBandwidth, c.RequestCount)
}

func averageSize(bandwidth, requests uint64) float64 {
	if requests == 0 {
		return 0
	}
	return float64(bandwidth) / float64(requests)
}
