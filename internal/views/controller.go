package views

import (
	"errors"
	"fmt"
	"net/url"

	"asset-log-explorer/internal/models"
	"asset-log-explorer/internal/sorters"
)

// ErrNoURL is returned by SelectedURL when the selected row cannot be opened.
var ErrNoURL = errors.New("selected row has no url")

// Tab is one of the two table views.
type Tab int

const (
	TabAssets Tab = iota
	TabTypes
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabAssets, TabTypes}

func (t Tab) Title() string {
	if t == TabTypes {
		return "By Type"
	}
	return "By Asset"
}

// SortState is the active sort column and direction.
type SortState struct {
	Column    models.SortColumn
	Direction models.SortDirection
}

// DefaultSortState orders by bandwidth, largest first.
func DefaultSortState() SortState {
	return SortState{Column: models.SortByBandwidth, Direction: models.Descending}
}

// Toggle flips the direction when column is already active, otherwise selects column with its
// default direction.
func (s SortState) Toggle(column models.SortColumn) SortState {
	if s.Column == column {
		return SortState{Column: column, Direction: s.Direction.Flip()}
	}
	return SortState{Column: column, Direction: column.DefaultDirection()}
}

// Controller holds the interactive state over one immutable snapshot: active tab, sort state,
// selection and a dismissible notice. It never mutates the snapshot; every re-sort builds new rows.
type Controller interface {
	Tab() Tab
	SortState() SortState
	// Selected is the index of the selected row in Rows. It is 0 when there are no rows.
	Selected() int
	Notice() string
	Summary() models.Summary
	Source() string

	ToggleSort(column models.SortColumn)
	NextTab()
	PrevTab()
	ToggleTab()
	MoveDown()
	MoveUp()
	Home()
	End()

	// Rows returns the ordered rows of the active tab. Callers must not modify the slice.
	Rows() []models.Row
	// Totals returns the TOTAL row over all requests of the snapshot.
	Totals() models.Row
	// SelectedURL resolves the selected row's sample URL against the base URL.
	SelectedURL() (string, error)

	SetNotice(message string)
	// DismissNotice clears the notice and reports whether one was shown.
	DismissNotice() bool
}

type controller struct {
	snapshot *models.Snapshot
	baseURL  *url.URL

	tab      Tab
	sort     SortState
	selected int
	notice   string
	rows     []models.Row
}

// NewController creates a controller on the by-asset tab sorted by bandwidth descending.
// baseURL is joined to path-only sample URLs.
func NewController(snapshot *models.Snapshot, baseURL string) (Controller, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errInvalidBaseURL(baseURL, err)
	}
	if snapshot == nil {
		snapshot = &models.Snapshot{}
	}

	c := &controller{
		snapshot: snapshot,
		baseURL:  base,
		tab:      TabAssets,
		sort:     DefaultSortState(),
	}
	c.rebuild()
	return c, nil
}

func (c *controller) Tab() Tab { return c.tab }
func (c *controller) SortState() SortState { return c.sort }
func (c *controller) Selected() int { return c.selected }
func (c *controller) Notice() string { return c.notice }
func (c *controller) Summary() models.Summary { return c.snapshot.Summary }
func (c *controller) Source() string { return c.snapshot.Source }
func (c *controller) Rows() []models.Row { return c.rows }

func (c *controller) ToggleSort(column models.SortColumn) {
	c.sort = c.sort.Toggle(column)
	c.rebuild()
}

func (c *controller) NextTab() {
	if c.tab == TabAssets {
		c.ToggleTab()
	}
}

func (c *controller) PrevTab() {
	if c.tab == TabTypes {
		c.ToggleTab()
	}
}

func (c *controller) ToggleTab() {
	if c.tab == TabAssets {
		c.tab = TabTypes
	} else {
		c.tab = TabAssets
	}
	c.rebuild()
}

func (c *controller) MoveDown() {
	c.selected++
	c.clamp()
}

func (c *controller) MoveUp() {
	c.selected--
	c.clamp()
}

func (c *controller) Home() {
	c.selected = 0
}

func (c *controller) End() {
	c.selected = len(c.rows) - 1
	c.clamp()
}

func (c *controller) Totals() models.Row {
	summary := c.snapshot.Summary
	return models.Row{
		Label:     "TOTAL",
		Requests:  summary.Requests,
		AvgSize:   summary.AverageSize(),
		Bandwidth: summary.TotalBandwidth,
	}
}

func (c *controller) SelectedURL() (string, error) {
	if len(c.rows) == 0 {
		return "", ErrNoURL
	}
	raw := c.rows[c.selected].URL
	if raw == "" {
		return "", ErrNoURL
	}

	ref, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoURL, err)
	}
	if ref.Scheme != "" && ref.Host != "" {
		return raw, nil
	}
	return c.baseURL.ResolveReference(ref).String(), nil
}

func (c *controller) SetNotice(message string) {
	c.notice = message
}

func (c *controller) DismissNotice() bool {
	shown := c.notice != ""
	c.notice = ""
	return shown
}

func (c *controller) rebuild() {
	if c.tab == TabTypes {
		c.rows = buildTypeRows(c.snapshot.Extensions, c.sort)
	} else {
		c.rows = buildAssetRows(c.snapshot.Assets, c.sort)
	}
	c.clamp()
}

func (c *controller) clamp() {
	if c.selected >= len(c.rows) {
		c.selected = len(c.rows) - 1
	}
	if c.selected < 0 {
		c.selected = 0
	}
}

func buildAssetRows(assets []models.AssetAggregate, state SortState) []models.Row {
	sorted := sorters.SortAssets(assets, state.Column, state.Direction)
	rows := make([]models.Row, 0, len(sorted))
	for _, asset := range sorted {
		rows = append(rows, models.NewAssetRow(asset))
	}
	return rows
}

// buildTypeRows emits one subtotal row per kind, ordered by the sort state, each followed by that
// kind's extension rows in the same order. Queries and unclassified requests have a single bucket,
// so their subtotal row stands alone and carries the bucket's sample URL.
func buildTypeRows(extensions []models.ExtensionAggregate, state SortState) []models.Row {
	groups := make(map[models.AssetKind]*models.ExtensionAggregate)
	var groupOrder []models.AssetKind
	for _, ext := range extensions {
		group, ok := groups[ext.Kind]
		if !ok {
			group = &models.ExtensionAggregate{
				Key:       models.ExtensionKey{Kind: ext.Kind},
				Kind:      ext.Kind,
				SampleURL: ext.SampleURL,
			}
			groups[ext.Kind] = group
			groupOrder = append(groupOrder, ext.Kind)
		}
		group.RequestCount += ext.RequestCount
		group.TotalBandwidth += ext.TotalBandwidth
		group.RequestBytes += ext.RequestBytes
		group.DistinctAssetCount += ext.DistinctAssetCount
	}

	groupRows := make([]models.ExtensionAggregate, 0, len(groupOrder))
	for _, kind := range groupOrder {
		groupRows = append(groupRows, *groups[kind])
	}
	groupRows = sorters.SortExtensions(groupRows, state.Column, state.Direction)
	sorted := sorters.SortExtensions(extensions, state.Column, state.Direction)

	rows := make([]models.Row, 0, len(groupRows)+len(sorted))
	for _, group := range groupRows {
		row := models.NewExtensionRow(group)
		row.Label = group.Kind.Label()
		row.Extension = ""
		row.Group = true

		if group.Kind != models.KindImage && group.Kind != models.KindFile {
			rows = append(rows, row)
			continue
		}

		row.URL = ""
		rows = append(rows, row)
		for _, ext := range sorted {
			if ext.Kind == group.Kind {
				rows = append(rows, models.NewExtensionRow(ext))
			}
		}
	}
	return rows
}
