package aggregators

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"asset-log-explorer/internal/classifiers"
	"asset-log-explorer/internal/models"
	"asset-log-explorer/internal/parsers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_SameAssetDifferentExtensions(t *testing.T) {
	t.Parallel()

	tables := Fold(classifiers.NewPathClassifier(), []models.RequestRecord{
		{URL: "/images/p1/ds/a1-800x600.jpg", RequestSize: 100, ResponseSize: 5000},
		{URL: "/images/p1/ds/a1-400x300.png", ResponseSize: 2000},
	})

	require.Len(t, tables.Assets, 1)
	asset := tables.Assets[0]
	assert.Equal(t, "p1/ds/a1", asset.ID)
	assert.Equal(t, models.KindImage, asset.Kind)
	assert.Equal(t, "jpg", asset.Extension, "extension is fixed by the first record")
	assert.Equal(t, uint64(2), asset.RequestCount)
	assert.Equal(t, uint64(7100), asset.TotalBandwidth)
	assert.Equal(t, uint64(100), asset.RequestBytes)
	assert.InDelta(t, 3550.0, asset.AverageSize(), 1e-9)
	assert.Equal(t, "/images/p1/ds/a1-800x600.jpg", asset.SampleURL)

	expectedExtensions := []models.ExtensionAggregate{
		{
			Key:                models.ExtensionKey{Kind: models.KindImage, Extension: "jpg"},
			Kind:               models.KindImage,
			Extension:          "jpg",
			RequestCount:       1,
			TotalBandwidth:     5100,
			RequestBytes:       100,
			DistinctAssetCount: 1,
			SampleURL:          "/images/p1/ds/a1-800x600.jpg",
		},
		{
			Key:                models.ExtensionKey{Kind: models.KindImage, Extension: "png"},
			Kind:               models.KindImage,
			Extension:          "png",
			RequestCount:       1,
			TotalBandwidth:     2000,
			DistinctAssetCount: 1,
			SampleURL:          "/images/p1/ds/a1-400x300.png",
		},
	}
	assert.Equal(t, expectedExtensions, tables.Extensions)
}

func TestAggregator_DistinctAssetCount(t *testing.T) {
	t.Parallel()

	tables := Fold(classifiers.NewPathClassifier(), []models.RequestRecord{
		{URL: "/images/p1/ds/a1-10x10.jpg", ResponseSize: 10},
		{URL: "/images/p1/ds/a1-20x20.JPG", ResponseSize: 10},
		{URL: "/images/p1/ds/a2-10x10.jpg", ResponseSize: 10},
		{URL: "/files/p1/ds/f1.pdf", ResponseSize: 10},
		{URL: "/files/p1/ds/f2", ResponseSize: 10},
		{URL: "/files/p1/ds/f3", ResponseSize: 10},
	})

	byKey := make(map[models.ExtensionKey]models.ExtensionAggregate)
	for _, ext := range tables.Extensions {
		byKey[ext.Key] = ext
	}

	jpg := byKey[models.ExtensionKey{Kind: models.KindImage, Extension: "jpg"}]
	assert.Equal(t, uint64(3), jpg.RequestCount, "extension buckets are case-insensitive")
	assert.Equal(t, uint64(2), jpg.DistinctAssetCount)

	noExt := byKey[models.ExtensionKey{Kind: models.KindFile, Extension: ""}]
	assert.Equal(t, uint64(2), noExt.RequestCount)
	assert.Equal(t, uint64(2), noExt.DistinctAssetCount)
	assert.Equal(t, "(none)", noExt.Key.Label())

	pdf := byKey[models.ExtensionKey{Kind: models.KindFile, Extension: "pdf"}]
	assert.Equal(t, uint64(1), pdf.DistinctAssetCount)
}

func TestAggregator_QueryAndUnclassifiedBuckets(t *testing.T) {
	t.Parallel()

	tables := Fold(classifiers.NewPathClassifier(), []models.RequestRecord{
		{URL: "/v1/data/query/production?query=*", RequestSize: 50, ResponseSize: 500},
		{URL: "/v1/data/query/production?query=count(*)", RequestSize: 50, ResponseSize: 100},
		{URL: "/v1/data/query/staging", ResponseSize: 10},
		{URL: "/favicon.ico", ResponseSize: 1},
		{URL: "/v1/users/me", ResponseSize: 2},
	})

	require.Len(t, tables.Assets, 3)
	assert.Equal(t, "query:v1/production", tables.Assets[0].ID)
	assert.Equal(t, uint64(2), tables.Assets[0].RequestCount)
	assert.Equal(t, uint64(700), tables.Assets[0].TotalBandwidth)
	assert.Equal(t, "query:v1/staging", tables.Assets[1].ID)
	assert.Equal(t, "(unclassified)", tables.Assets[2].ID)
	assert.Equal(t, uint64(2), tables.Assets[2].RequestCount)
	assert.Equal(t, uint64(3), tables.Assets[2].TotalBandwidth)
	assert.Empty(t, tables.Assets[2].SampleURL, "unclassified bucket has no url to open")

	require.Len(t, tables.Extensions, 2)
	assert.Equal(t, models.KindQuery, tables.Extensions[0].Kind)
	assert.Equal(t, uint64(3), tables.Extensions[0].RequestCount)
	assert.Equal(t, uint64(2), tables.Extensions[0].DistinctAssetCount)
	assert.Equal(t, models.KindUnclassified, tables.Extensions[1].Kind)
	assert.Equal(t, uint64(2), tables.Extensions[1].RequestCount)
	assert.Equal(t, uint64(1), tables.Extensions[1].DistinctAssetCount)
}

func TestAggregator_ClientFamilies(t *testing.T) {
	t.Parallel()

	tables := Fold(classifiers.NewPathClassifier(), []models.RequestRecord{
		{URL: "/x", ResponseSize: 1, UserAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"},
		{URL: "/x", ResponseSize: 2, UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:123.0) Gecko/20100101 Firefox/123.0"},
		{URL: "/x", ResponseSize: 4, UserAgent: "SomeUnknownUserAgent/1.0"},
		{URL: "/x", ResponseSize: 8},
	})

	expected := []models.ClientAggregate{
		{Family: "(unknown)", RequestCount: 1, TotalBandwidth: 8},
		{Family: "Firefox", RequestCount: 2, TotalBandwidth: 3},
		{Family: "SomeUnknownUserAgent", RequestCount: 1, TotalBandwidth: 4},
	}
	assert.Equal(t, expected, tables.Clients)
}

func TestAggregator_TablesAreDeterministicAndDetached(t *testing.T) {
	t.Parallel()

	var records []models.RequestRecord
	for i := 0; i < 200; i++ {
		records = append(records, models.RequestRecord{
			URL:          fmt.Sprintf("/images/p%d/ds/a%d-10x10.%s", i%3, i%17, []string{"jpg", "png", "webp"}[i%3]),
			RequestSize:  uint64(i),
			ResponseSize: uint64(i * 10),
		})
	}

	first := Fold(classifiers.NewPathClassifier(), records)
	second := Fold(classifiers.NewPathClassifier(), records)
	assert.Equal(t, first, second)

	agg := NewAggregator(classifiers.NewPathClassifier())
	agg.Add(models.RequestRecord{URL: "/files/p/d/f.pdf", ResponseSize: 1})
	snapshot := agg.Tables()
	agg.Add(models.RequestRecord{URL: "/files/p/d/f.pdf", ResponseSize: 1})
	assert.Equal(t, uint64(1), snapshot.Assets[0].RequestCount, "returned tables are copies")
	assert.Equal(t, uint64(2), agg.Tables().Assets[0].RequestCount)
}

func TestAggregator_TotalsReconcileWithInputLines(t *testing.T) {
	t.Parallel()

	lines := []string{
		`{"body":{"url":"/images/p1/ds/a1-800x600.jpg","requestSize":100,"responseSize":5000}}`,
		`{"body":{"url":"/images/p1/ds/a1-400x300.png","responseSize":2000}}`,
		`{not json`,
		`{"body":{"url":"/files/p1/ds/f1.pdf","responseSize":"300"}}`,
		`{"body":{}}`,
		`{"body":{"url":"/v1/data/query/production"}}`,
		`{"body":{"url":"/robots.txt","responseSize":12}}`,
		`{"body":{"url":42}}`,
		`{"body":{"url":"/images/p2/ds/b1-1x1.gif","requestSize":"bad","responseSize":43}}`,
	}

	parser := parsers.NewRecordParser()
	agg := NewAggregator(classifiers.NewPathClassifier())
	skipped := 0
	for _, line := range lines {
		record, err := parser.ParseLine([]byte(line))
		if errors.Is(err, parsers.ErrMalformedJSON) || errors.Is(err, parsers.ErrMissingURL) {
			skipped++
			continue
		}
		require.NoError(t, err)
		agg.Add(record)
	}
	tables := agg.Tables()

	var assetRequests, extRequests, clientRequests, assetBandwidth, extBandwidth uint64
	for _, asset := range tables.Assets {
		assetRequests += asset.RequestCount
		assetBandwidth += asset.TotalBandwidth
		assert.InDelta(t, float64(asset.TotalBandwidth)/float64(asset.RequestCount), asset.AverageSize(), 1e-9)
	}
	for _, ext := range tables.Extensions {
		extRequests += ext.RequestCount
		extBandwidth += ext.TotalBandwidth
		assert.InDelta(t, float64(ext.TotalBandwidth)/float64(ext.RequestCount), ext.AverageSize(), 1e-9)
	}
	for _, client := range tables.Clients {
		clientRequests += client.RequestCount
	}

	assert.Equal(t, 3, skipped)
	assert.Equal(t, uint64(len(lines)-skipped), assetRequests)
	assert.Equal(t, assetRequests, extRequests)
	assert.Equal(t, assetRequests, clientRequests)
	assert.Equal(t, assetBandwidth, extBandwidth)
	assert.Equal(t, uint64(100+5000+2000+300+12+43), assetBandwidth)
}

func TestAggregator_ExtensionRowsMatchAssetContributions(t *testing.T) {
	t.Parallel()

	var records []models.RequestRecord
	for i := 0; i < 50; i++ {
		ext := []string{"jpg", "png", ""}[i%3]
		url := fmt.Sprintf("/files/p/d/f%d", i%7)
		if ext != "" {
			url += "." + ext
		}
		records = append(records, models.RequestRecord{URL: url, ResponseSize: 1})
	}
	tables := Fold(classifiers.NewPathClassifier(), records)

	// Assets fixed to a single extension contribute all of their requests to that extension's row
	perExtension := make(map[string]uint64)
	for _, record := range records {
		ext := ""
		if i := strings.LastIndex(record.URL, "."); i >= 0 {
			ext = record.URL[i+1:]
		}
		perExtension[ext]++
	}
	for _, ext := range tables.Extensions {
		assert.Equal(t, perExtension[ext.Extension], ext.RequestCount, ext.Extension)
	}
}
