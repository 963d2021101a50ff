package aggregators

import (
	"sort"
	"strings"

	"asset-log-explorer/internal/classifiers"
	"asset-log-explorer/internal/models"

	"github.com/mileusna/useragent"
)

const unknownClient = "(unknown)"

// Aggregator folds request records into the by-asset, by-type and by-client tables in a single
// left-to-right pass. Only the running tables are held; records are not retained.
//
// Every record lands in exactly one row of each table, unclassified records included (they share one
// dedicated bucket), so the request count of every table equals the number of records added.
//
//go:generate mockgen -source=aggregator.go -destination=./mocks/aggregator_mock.go -package=mocks
type Aggregator interface {
	// Add folds one record into the running tables.
	Add(record models.RequestRecord)
	// Tables returns copies of the running tables in deterministic key order.
	Tables() models.AggregateTables
}

type extensionState struct {
	row    *models.ExtensionAggregate
	assets map[models.AssetKey]struct{}
}

type aggregator struct {
	classifier classifiers.PathClassifier

	assets     map[models.AssetKey]*models.AssetAggregate
	extensions map[models.ExtensionKey]*extensionState
	clients    map[string]*models.ClientAggregate
}

func NewAggregator(classifier classifiers.PathClassifier) Aggregator {
	return &aggregator{
		classifier: classifier,
		assets:     make(map[models.AssetKey]*models.AssetAggregate),
		extensions: make(map[models.ExtensionKey]*extensionState),
		clients:    make(map[string]*models.ClientAggregate),
	}
}

// Fold runs a fresh aggregator over records.
func Fold(classifier classifiers.PathClassifier, records []models.RequestRecord) models.AggregateTables {
	agg := NewAggregator(classifier)
	for _, record := range records {
		agg.Add(record)
	}
	return agg.Tables()
}

func (a *aggregator) Add(record models.RequestRecord) {
	ref := a.classifier.Classify(record.URL)
	assetKey := ref.Key()
	bandwidth := record.Bandwidth()

	// By asset: the extension is fixed by the first record
	asset, exists := a.assets[assetKey]
	if !exists {
		asset = &models.AssetAggregate{
			Key:       assetKey,
			ID:        assetKey.String(),
			Kind:      ref.Kind,
			Extension: ref.Extension,
			SampleURL: a.sampleURL(ref, record),
		}
		a.assets[assetKey] = asset
	}
	asset.RequestCount++
	asset.TotalBandwidth += bandwidth
	asset.RequestBytes += record.RequestSize

	// By type: bucketed by this record's own extension
	extKey := models.ExtensionKey{Kind: ref.Kind, Extension: strings.ToLower(ref.Extension)}
	ext, exists := a.extensions[extKey]
	if !exists {
		ext = &extensionState{
			row: &models.ExtensionAggregate{
				Key:       extKey,
				Kind:      extKey.Kind,
				Extension: extKey.Extension,
				SampleURL: a.sampleURL(ref, record),
			},
			assets: make(map[models.AssetKey]struct{}),
		}
		a.extensions[extKey] = ext
	}
	if _, seen := ext.assets[assetKey]; !seen {
		ext.assets[assetKey] = struct{}{}
		ext.row.DistinctAssetCount++
	}
	ext.row.RequestCount++
	ext.row.TotalBandwidth += bandwidth
	ext.row.RequestBytes += record.RequestSize

	// By client
	family := a.normalizeUserAgent(record.UserAgent)
	client, exists := a.clients[family]
	if !exists {
		client = &models.ClientAggregate{Family: family}
		a.clients[family] = client
	}
	client.RequestCount++
	client.TotalBandwidth += bandwidth

	metricRecordsAggregatedTotal.WithLabelValues(string(ref.Kind)).Inc()
}

func (a *aggregator) Tables() models.AggregateTables {
	tables := models.AggregateTables{
		Assets:     make([]models.AssetAggregate, 0, len(a.assets)),
		Extensions: make([]models.ExtensionAggregate, 0, len(a.extensions)),
		Clients:    make([]models.ClientAggregate, 0, len(a.clients)),
	}

	for _, asset := range a.assets {
		tables.Assets = append(tables.Assets, *asset)
	}
	sort.Slice(tables.Assets, func(i, j int) bool {
		return assetKeyLess(tables.Assets[i].Key, tables.Assets[j].Key)
	})

	for _, ext := range a.extensions {
		tables.Extensions = append(tables.Extensions, *ext.row)
	}
	sort.Slice(tables.Extensions, func(i, j int) bool {
		return extensionKeyLess(tables.Extensions[i].Key, tables.Extensions[j].Key)
	})

	for _, client := range a.clients {
		tables.Clients = append(tables.Clients, *client)
	}
	sort.Slice(tables.Clients, func(i, j int) bool {
		return tables.Clients[i].Family < tables.Clients[j].Family
	})

	return tables
}

// sampleURL is the URL offered for opening a row. The unclassified bucket mixes unrelated paths and
// has none.
func (a *aggregator) sampleURL(ref models.AssetRef, record models.RequestRecord) string {
	if ref.Kind == models.KindUnclassified {
		return ""
	}
	return record.URL
}

// normalizeUserAgent parses user agent to extract family, or returns original if parsing fails.
func (a *aggregator) normalizeUserAgent(ua string) string {
	if ua == "" {
		return unknownClient
	}

	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}

	// If parsing fails or family is empty, return original
	return ua
}

func assetKeyLess(a, b models.AssetKey) bool {
	if a.Kind.Rank() != b.Kind.Rank() {
		return a.Kind.Rank() < b.Kind.Rank()
	}
	return a.String() < b.String()
}

func extensionKeyLess(a, b models.ExtensionKey) bool {
	if a.Kind.Rank() != b.Kind.Rank() {
		return a.Kind.Rank() < b.Kind.Rank()
	}
	return a.Extension < b.Extension
}
