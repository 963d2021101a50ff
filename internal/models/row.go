package models

// Row is one display row of the interactive table, built from either aggregate table.
type Row struct {
	Kind      AssetKind
	Label     string
	Extension string // display form, e.g. ".jpg" or "(none)"
	Requests  uint64
	AvgSize   float64
	Bandwidth uint64
	URL       string // sample URL, possibly path-only; empty when the row cannot be opened
	Group     bool   // per-kind subtotal row of the by-type table
}

// NewAssetRow converts a by-asset aggregate into a display row.
func NewAssetRow(a AssetAggregate) Row {
	row := Row{
		Kind:      a.Kind,
		Label:     a.ID,
		Requests:  a.RequestCount,
		AvgSize:   a.AverageSize(),
		Bandwidth: a.TotalBandwidth,
		URL:       a.SampleURL,
	}
	if a.Kind == KindImage || a.Kind == KindFile {
		row.Extension = ExtensionKey{Kind: a.Kind, Extension: a.Extension}.Label()
	}
	return row
}

// NewExtensionRow converts a by-type aggregate into a display row.
func NewExtensionRow(e ExtensionAggregate) Row {
	return Row{
		Kind:      e.Kind,
		Extension: e.Key.Label(),
		Requests:  e.RequestCount,
		AvgSize:   e.AverageSize(),
		Bandwidth: e.TotalBandwidth,
		URL:       e.SampleURL,
	}
}
