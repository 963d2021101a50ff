package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"asset-log-explorer/internal/app"
	"asset-log-explorer/internal/shared/configs"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every command. Changed values override the config file and environment.
type globalFlags struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "explorer <log.ndjson>",
		Short: "Explore asset bandwidth in an NDJSON request log",
		Long: "explorer reads a newline-delimited JSON request log exported from the asset CDN, " +
			"aggregates requests and bandwidth per asset and per file type, and shows the result in an " +
			"interactive table. Press enter on a row to open the asset in the browser.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			defer application.Close()

			ctx, stop := signalContext()
			defer stop()
			return application.RunInteractive(ctx, args[0], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.SilenceUsage = true
	root.SilenceErrors = true

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Optional yaml config file")
	pf.String("log-level", "warn", "Log level (trace, debug, info, warn, error, fatal, panic, disabled)")
	pf.String("log-file", "", "Write logs to this file (logs are discarded while the table is shown otherwise)")
	pf.String("base-url", "https://cdn.sanity.io", "Base URL used to open path-only asset URLs")
	pf.String("browser-command", "", "Command used to open URLs (default: platform opener)")

	root.AddCommand(newReportCmd(flags))
	root.AddCommand(newServeCmd(flags))
	return root
}

// newApp loads the configuration, letting changed command-line flags win, and builds the App.
func newApp(cmd *cobra.Command, flags *globalFlags) (*app.App, error) {
	cfg, err := configs.LoadConfig(flags.configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}
	return app.New(cfg, cmd.ErrOrStderr())
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
