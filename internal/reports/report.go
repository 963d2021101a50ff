package reports

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"asset-log-explorer/internal/models"
	"asset-log-explorer/internal/shared/ulid"
	"asset-log-explorer/internal/sorters"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Format is a report output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", errInvalidFormat(s)
}

// Options controls the row order and the number of rows per table. Limit <= 0 keeps every row.
type Options struct {
	Format    Format
	Column    models.SortColumn
	Direction models.SortDirection
	Limit     int
}

// DefaultOptions orders rows by bandwidth, largest first.
func DefaultOptions() Options {
	return Options{Format: FormatText, Column: models.SortByBandwidth, Direction: models.Descending}
}

// Report is the exported document. It carries the same numbers as the snapshot it was built from.
type Report struct {
	RunID      string                      `json:"runId" yaml:"runId"`
	Source     string                      `json:"source" yaml:"source"`
	Sort       string                      `json:"sort" yaml:"sort"`
	Summary    models.Summary              `json:"summary" yaml:"summary"`
	Assets     []models.AssetAggregate     `json:"assets" yaml:"assets"`
	Extensions []models.ExtensionAggregate `json:"extensions" yaml:"extensions"`
	Clients    []models.ClientAggregate    `json:"clients" yaml:"clients"`
}

// Build orders and limits the snapshot tables. The snapshot is not modified.
func Build(snapshot *models.Snapshot, opts Options) *Report {
	return &Report{
		RunID:      snapshot.RunID,
		Source:     snapshot.Source,
		Sort:       fmt.Sprintf("%s %s", opts.Column, opts.Direction),
		Summary:    snapshot.Summary,
		Assets:     limit(sorters.SortAssets(snapshot.Assets, opts.Column, opts.Direction), opts.Limit),
		Extensions: limit(sorters.SortExtensions(snapshot.Extensions, opts.Column, opts.Direction), opts.Limit),
		Clients:    limit(sorters.SortClients(snapshot.Clients, opts.Column, opts.Direction), opts.Limit),
	}
}

// Render writes the report for snapshot to w in opts.Format.
func Render(w io.Writer, snapshot *models.Snapshot, opts Options) error {
	report := Build(snapshot, opts)
	switch opts.Format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return errInternalRenderFailed(err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			return errInternalRenderFailed(err)
		}
		if err := encoder.Close(); err != nil {
			return errInternalRenderFailed(err)
		}
	case FormatText, "":
		if err := renderText(w, report); err != nil {
			return errInternalRenderFailed(err)
		}
	default:
		return errInvalidFormat(string(opts.Format))
	}
	return nil
}

func limit[R any](rows []R, n int) []R {
	if n > 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}

const (
	rowFormat    = "%-2s %-48s %-8s %10s %12s %14s\n"
	clientFormat = "%-32s %10s %12s %14s\n"
)

func renderText(w io.Writer, report *Report) error {
	tw := &textWriter{w: w}
	s := report.Summary

	tw.printf("Source:    %s\n", report.Source)
	if ts, err := ulid.Time(report.RunID); err == nil {
		tw.printf("Run:       %s (%s)\n", report.RunID, ts.Format(time.RFC3339))
	} else {
		tw.printf("Run:       %s\n", report.RunID)
	}
	tw.printf("Lines:     %s read, %s blank, %s skipped (%s malformed, %s without url)\n",
		count(s.LinesRead), count(s.BlankLines), count(s.Skipped()), count(s.MalformedJSON), count(s.MissingURL))
	tw.printf("Requests:  %s\n", count(s.Requests))
	tw.printf("Bandwidth: %s (avg %s)\n", humanize.IBytes(s.TotalBandwidth), avg(s.AverageSize()))
	tw.printf("Sorted by: %s\n", report.Sort)

	tw.printf("\nBY ASSET\n")
	tw.printf(rowFormat, "T", "ID", "EXT", "REQUESTS", "SIZE (AVG)", "BANDWIDTH")
	for _, a := range report.Assets {
		row := models.NewAssetRow(a)
		tw.printf(rowFormat, row.Kind.Marker(), row.Label, row.Extension, count(row.Requests), avg(row.AvgSize), humanize.IBytes(row.Bandwidth))
	}

	tw.printf("\nBY TYPE\n")
	tw.printf(rowFormat, "T", "KIND", "EXT", "REQUESTS", "SIZE (AVG)", "BANDWIDTH")
	for _, e := range report.Extensions {
		row := models.NewExtensionRow(e)
		tw.printf(rowFormat, row.Kind.Marker(), e.Kind.Label(), row.Extension, count(row.Requests), avg(row.AvgSize), humanize.IBytes(row.Bandwidth))
	}

	tw.printf("\nBY CLIENT\n")
	tw.printf(clientFormat, "FAMILY", "REQUESTS", "SIZE (AVG)", "BANDWIDTH")
	for _, c := range report.Clients {
		tw.printf(clientFormat, c.Family, count(c.RequestCount), avg(c.AverageSize()), humanize.IBytes(c.TotalBandwidth))
	}
	return tw.err
}

// textWriter keeps the first write error so renderText can print unconditionally.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func count(v uint64) string {
	return humanize.Comma(int64(v))
}

func avg(v float64) string {
	return humanize.IBytes(uint64(math.Round(v)))
}
