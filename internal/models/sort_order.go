package models

import "fmt"

// SortColumn is a sortable table column.
type SortColumn string

const (
	SortByID        SortColumn = "id"
	SortByExtension SortColumn = "ext"
	SortByRequests  SortColumn = "requests"
	SortByAvgSize   SortColumn = "avg"
	SortByBandwidth SortColumn = "bandwidth"
)

// SortColumns lists all columns in header order.
var SortColumns = []SortColumn{SortByID, SortByExtension, SortByRequests, SortByAvgSize, SortByBandwidth}

// ParseSortColumn validates a column name.
func ParseSortColumn(s string) (SortColumn, error) {
	for _, c := range SortColumns {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid sort column: %q", s)
}

// IsNumeric reports whether the column sorts by a number.
func (c SortColumn) IsNumeric() bool {
	return c == SortByRequests || c == SortByAvgSize || c == SortByBandwidth
}

// DefaultDirection is the direction a column starts with when first selected.
func (c SortColumn) DefaultDirection() SortDirection {
	if c.IsNumeric() {
		return Descending
	}
	return Ascending
}

// SortDirection is ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ParseSortDirection validates a direction name.
func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(s) {
	case Ascending, Descending:
		return SortDirection(s), nil
	}
	return "", fmt.Errorf("invalid sort direction: %q", s)
}

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// Arrow is the header indicator for the direction.
func (d SortDirection) Arrow() string {
	if d == Descending {
		return "↓"
	}
	return "↑"
}
