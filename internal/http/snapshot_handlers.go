package http

import (
	"net/http"
	"time"

	"asset-log-explorer/internal/models"
	"asset-log-explorer/internal/shared/ulid"
	"asset-log-explorer/internal/sorters"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// SummaryResponse is the body of GET /summary.
type SummaryResponse struct {
	RunID       string         `json:"runId"`
	IngestedAt  *time.Time     `json:"ingestedAt,omitempty"` // decoded from the run id
	Source      string         `json:"source"`
	Summary     models.Summary `json:"summary"`
	Skipped     uint64         `json:"skipped"`
	AverageSize float64        `json:"averageSize"`
	Assets      int            `json:"assets"`
	Extensions  int            `json:"extensions"`
	Clients     int            `json:"clients"`
}

// ListResponse is the body of the table endpoints. Total counts every row before the limit.
type ListResponse[R any] struct {
	Sort      models.SortColumn    `json:"sort"`
	Direction models.SortDirection `json:"direction"`
	Total     int                  `json:"total"`
	Rows      []R                  `json:"rows"`
}

type summaryHandler struct {
	snapshot *models.Snapshot
}

func NewSummaryHandler(snapshot *models.Snapshot) AppHttpHandler {
	return &summaryHandler{snapshot: snapshot}
}

// Handle processes GET /summary requests.
func (h *summaryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var ingestedAt *time.Time
	if ts, err := ulid.Time(h.snapshot.RunID); err == nil {
		ingestedAt = &ts
	}
	return writeJSON(w, http.StatusOK, SummaryResponse{
		RunID:       h.snapshot.RunID,
		IngestedAt:  ingestedAt,
		Source:      h.snapshot.Source,
		Summary:     h.snapshot.Summary,
		Skipped:     h.snapshot.Summary.Skipped(),
		AverageSize: h.snapshot.Summary.AverageSize(),
		Assets:      len(h.snapshot.Assets),
		Extensions:  len(h.snapshot.Extensions),
		Clients:     len(h.snapshot.Clients),
	})
}

// tableHandler serves one sorted table of the snapshot.
type tableHandler[R any] struct {
	rows []R
	sort func(rows []R, column models.SortColumn, direction models.SortDirection) []R
}

// NewAssetsHandler serves GET /assets.
func NewAssetsHandler(snapshot *models.Snapshot) AppHttpHandler {
	return &tableHandler[models.AssetAggregate]{rows: snapshot.Assets, sort: sorters.SortAssets}
}

// NewTypesHandler serves GET /types.
func NewTypesHandler(snapshot *models.Snapshot) AppHttpHandler {
	return &tableHandler[models.ExtensionAggregate]{rows: snapshot.Extensions, sort: sorters.SortExtensions}
}

// NewClientsHandler serves GET /clients.
func NewClientsHandler(snapshot *models.Snapshot) AppHttpHandler {
	return &tableHandler[models.ClientAggregate]{rows: snapshot.Clients, sort: sorters.SortClients}
}

func (h *tableHandler[R]) Handle(w http.ResponseWriter, r *http.Request) error {
	opts, err := parseListQuery(r)
	if err != nil {
		return err
	}

	rows := h.sort(h.rows, opts.Column, opts.Direction)
	if opts.Limit > 0 && len(rows) > opts.Limit {
		rows = rows[:opts.Limit]
	}
	return writeJSON(w, http.StatusOK, ListResponse[R]{
		Sort:      opts.Column,
		Direction: opts.Direction,
		Total:     len(h.rows),
		Rows:      rows,
	})
}
