package main

import (
	"fmt"

	"asset-log-explorer/internal/app"
	"asset-log-explorer/internal/models"
	"asset-log-explorer/internal/reports"

	"github.com/spf13/cobra"
)

type reportFlags struct {
	format    string
	out       string
	force     bool
	sort      string
	direction string
	limit     int
}

func newReportCmd(global *globalFlags) *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report <log.ndjson>",
		Short: "Print the aggregated tables as text, json or yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			application, err := newApp(cmd, global)
			if err != nil {
				return err
			}
			defer application.Close()

			ctx, stop := signalContext()
			defer stop()
			return application.Report(ctx, app.ReportRequest{
				Path:    args[0],
				OutPath: flags.out,
				Force:   flags.force,
				Options: opts,
			}, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.format, "format", "f", string(reports.FormatText), "Output format (text, json, yaml)")
	f.StringVarP(&flags.out, "out", "o", "", "Write the report to this file instead of stdout")
	f.BoolVar(&flags.force, "force", false, "Overwrite the --out file if it exists")
	f.StringVar(&flags.sort, "sort", string(models.SortByBandwidth), "Sort column (id, ext, requests, avg, bandwidth)")
	f.StringVar(&flags.direction, "dir", "", "Sort direction (asc, desc); defaults to the column's direction")
	f.IntVar(&flags.limit, "limit", 0, "Rows per table (0 for all)")
	return cmd
}

// options validates the flags into report options.
func (f *reportFlags) options() (reports.Options, error) {
	format, err := reports.ParseFormat(f.format)
	if err != nil {
		return reports.Options{}, err
	}
	column, err := models.ParseSortColumn(f.sort)
	if err != nil {
		return reports.Options{}, err
	}
	direction := column.DefaultDirection()
	if f.direction != "" {
		direction, err = models.ParseSortDirection(f.direction)
		if err != nil {
			return reports.Options{}, err
		}
	}
	if f.limit < 0 {
		return reports.Options{}, fmt.Errorf("invalid limit: %d", f.limit)
	}

	return reports.Options{
		Format:    format,
		Column:    column,
		Direction: direction,
		Limit:     f.limit,
	}, nil
}
