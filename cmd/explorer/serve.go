package main

import (
	"github.com/spf13/cobra"
)

func newServeCmd(global *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve <log.ndjson>",
		Short: "Serve the aggregated tables read-only over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp(cmd, global)
			if err != nil {
				return err
			}
			defer application.Close()

			ctx, stop := signalContext()
			defer stop()
			return application.Serve(ctx, args[0])
		},
	}
	cmd.Flags().Int("port", 8088, "HTTP port")
	return cmd
}
