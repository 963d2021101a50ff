package sorters

import (
	"cmp"
	"sort"
	"strings"

	"asset-log-explorer/internal/models"
)

// sortKeys are the comparable values of one row, computed once per sort.
type sortKeys struct {
	id        string
	extension string // lowercased
	requests  uint64
	avgSize   float64
	bandwidth uint64
	tie       string
	rank      int
}

type keyed[R any] struct {
	row  R
	keys sortKeys
}

// SortAssets returns a new slice of rows ordered by column and direction. The sort is stable and ties on
// the column fall back to the asset id. The direction applies to the whole ordering, so sorting the same
// rows in the opposite direction yields exactly the reversed sequence.
func SortAssets(rows []models.AssetAggregate, column models.SortColumn, direction models.SortDirection) []models.AssetAggregate {
	return sortRows(rows, column, direction, func(row models.AssetAggregate) sortKeys {
		return sortKeys{
			id:        row.ID,
			extension: strings.ToLower(row.Extension),
			requests:  row.RequestCount,
			avgSize:   row.AverageSize(),
			bandwidth: row.TotalBandwidth,
			tie:       row.ID,
			rank:      row.Kind.Rank(),
		}
	})
}

// SortExtensions orders by-type rows the same way as SortAssets. Ties fall back to the extension and then
// the kind. The id column orders by kind first.
func SortExtensions(rows []models.ExtensionAggregate, column models.SortColumn, direction models.SortDirection) []models.ExtensionAggregate {
	return sortRows(rows, column, direction, func(row models.ExtensionAggregate) sortKeys {
		return sortKeys{
			id:        row.Key.String(),
			extension: strings.ToLower(row.Extension),
			requests:  row.RequestCount,
			avgSize:   row.AverageSize(),
			bandwidth: row.TotalBandwidth,
			tie:       strings.ToLower(row.Extension),
			rank:      row.Kind.Rank(),
		}
	})
}

// SortClients orders by-client rows. The id and extension columns both order by family.
func SortClients(rows []models.ClientAggregate, column models.SortColumn, direction models.SortDirection) []models.ClientAggregate {
	return sortRows(rows, column, direction, func(row models.ClientAggregate) sortKeys {
		return sortKeys{
			id:        row.Family,
			extension: strings.ToLower(row.Family),
			requests:  row.RequestCount,
			avgSize:   row.AverageSize(),
			bandwidth: row.TotalBandwidth,
			tie:       row.Family,
		}
	})
}

func sortRows[R any](rows []R, column models.SortColumn, direction models.SortDirection, keysOf func(R) sortKeys) []R {
	items := make([]keyed[R], len(rows))
	for i, row := range rows {
		items[i] = keyed[R]{row: row, keys: keysOf(row)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		c := compareKeys(items[i].keys, items[j].keys, column)
		if direction == models.Descending {
			c = -c
		}
		return c < 0
	})

	sorted := make([]R, len(items))
	for i, item := range items {
		sorted[i] = item.row
	}
	return sorted
}

func compareKeys(a, b sortKeys, column models.SortColumn) int {
	var c int
	switch column {
	case models.SortByID:
		c = cmp.Compare(a.id, b.id)
	case models.SortByExtension:
		c = cmp.Compare(a.extension, b.extension)
	case models.SortByRequests:
		c = cmp.Compare(a.requests, b.requests)
	case models.SortByAvgSize:
		c = cmp.Compare(a.avgSize, b.avgSize)
	case models.SortByBandwidth:
		c = cmp.Compare(a.bandwidth, b.bandwidth)
	}
	if c != 0 {
		return c
	}

	if c = cmp.Compare(a.tie, b.tie); c != 0 {
		return c
	}
	return cmp.Compare(a.rank, b.rank)
}
