package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"asset-log-explorer/internal/aggregators"
	"asset-log-explorer/internal/browsers"
	"asset-log-explorer/internal/classifiers"
	internalhttp "asset-log-explorer/internal/http"
	"asset-log-explorer/internal/ingestors"
	"asset-log-explorer/internal/models"
	"asset-log-explorer/internal/parsers"
	"asset-log-explorer/internal/reports"
	"asset-log-explorer/internal/shared/configs"
	"asset-log-explorer/internal/shared/filestorages"
	"asset-log-explorer/internal/shared/loggers"
	"asset-log-explorer/internal/shared/svcerrors"
	"asset-log-explorer/internal/stores"
	"asset-log-explorer/internal/tui"
	"asset-log-explorer/internal/views"
)

const (
	appName         = "asset-log-explorer"
	shutdownTimeout = 10 * time.Second
)

// App holds all application dependencies. It is built once from the loaded config and shared by the
// interactive explorer and the report and serve commands.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	// uiLogger is used while the terminal UI owns the screen: the log file when configured,
	// otherwise a disabled logger.
	uiLogger loggers.Logger
	logFile  io.Closer

	ingestionService ingestors.IngestionService
	openReportStore  func(rootDir string) (stores.ReportStore, error)
	opener           browsers.Opener
}

// New creates and initializes a new App instance. Logs go to log.file when set, otherwise to stderr.
func New(config *configs.Config, stderr io.Writer) (*App, error) {
	logOut := stderr
	var logFile *os.File
	if config.Log.File != "" {
		f, err := os.OpenFile(config.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errInvalidLogFile(config.Log.File, err)
		}
		logFile = f
		logOut = f
	}

	appLogger, err := loggers.New(config.Log.Level, logOut)
	if err != nil {
		if logFile != nil {
			_ = logFile.Close()
		}
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	uiLogger := loggers.Nop()
	if logFile != nil {
		uiLogger = appLogger.With().Str(loggers.FieldComponent, "tui").Logger()
	}

	// Initialize ingestion
	classifier := classifiers.NewPathClassifier()
	newAggregator := func() aggregators.Aggregator {
		return aggregators.NewAggregator(classifier)
	}
	ingestionService := ingestors.NewIngestionService(
		parsers.NewRecordParser(),
		newAggregator,
		filestorages.NewFileStorage,
		config.Scanner.MaxLineBytes,
	)

	opener := browsers.NewOpener(config.Browser.Command, time.Duration(config.Browser.TimeoutSeconds)*time.Second)

	app := &App{
		config:           config,
		appLogger:        appLogger,
		uiLogger:         uiLogger,
		ingestionService: ingestionService,
		openReportStore:  openReportStore,
		opener:           opener,
	}
	if logFile != nil {
		app.logFile = logFile
	}
	return app, nil
}

// openReportStore opens a report store writing into rootDir.
func openReportStore(rootDir string) (stores.ReportStore, error) {
	storage, err := filestorages.NewFileStorage(rootDir)
	if err != nil {
		return nil, err
	}
	return stores.NewReportStore(storage), nil
}

// Close releases the log file, if any.
func (app *App) Close() error {
	if app.logFile == nil {
		return nil
	}
	return app.logFile.Close()
}

// RunInteractive ingests path and runs the full-screen explorer until the user quits.
func (app *App) RunInteractive(ctx context.Context, path string, in io.Reader, out io.Writer) error {
	ctx = app.uiLogger.WithContext(ctx)

	snapshot, err := app.ingestionService.IngestFile(ctx, path)
	if err != nil {
		return err
	}

	controller, err := views.NewController(snapshot, app.config.Assets.BaseURL)
	if err != nil {
		return err
	}

	app.uiLogger.Info().
		Str(loggers.FieldRunID, snapshot.RunID).
		Msg("starting explorer")
	return tui.Run(ctx, tui.NewModel(ctx, controller, app.opener), in, out)
}

// ReportRequest describes one report run. An empty OutPath renders to the caller's writer.
type ReportRequest struct {
	Path    string
	OutPath string
	Force   bool
	Options reports.Options
}

// Report ingests req.Path and renders the report to stdout, or stores it at req.OutPath.
func (app *App) Report(ctx context.Context, req ReportRequest, stdout io.Writer) error {
	ctx = app.appLogger.WithContext(ctx)

	snapshot, err := app.ingestionService.IngestFile(ctx, req.Path)
	if err != nil {
		return err
	}

	if req.OutPath == "" {
		return reports.Render(stdout, snapshot, req.Options)
	}
	return app.storeReport(ctx, snapshot, req)
}

func (app *App) storeReport(ctx context.Context, snapshot *models.Snapshot, req ReportRequest) error {
	rootDir, key, err := filestorages.SplitPath(req.OutPath)
	if err != nil {
		return errInvalidOutputPath(req.OutPath, err)
	}
	reportStore, err := app.openReportStore(rootDir)
	if err != nil {
		return errInvalidOutputPath(req.OutPath, err)
	}

	fileKey, err := reportStore.Put(ctx, key, snapshot, req.Options, req.Force)
	if err != nil {
		if errors.Is(err, stores.ErrReportAlreadyExist) {
			return errReportExists(req.OutPath, err)
		}
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			return svcErr
		}
		return errInternalWriteReport(err)
	}

	loggers.Ctx(ctx).Info().
		Str(loggers.FieldRunID, snapshot.RunID).
		Str("report", fileKey).
		Str("format", string(req.Options.Format)).
		Msg("report written")
	return nil
}

// Serve ingests path and serves the snapshot read-only until ctx is cancelled, then shuts down
// gracefully.
func (app *App) Serve(ctx context.Context, path string) error {
	ctx = app.appLogger.WithContext(ctx)

	snapshot, err := app.ingestionService.IngestFile(ctx, path)
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", app.config.Server.Port))
	if err != nil {
		return errInternalServer(err)
	}
	return app.serve(ctx, snapshot, listener)
}

func (app *App) serve(ctx context.Context, snapshot *models.Snapshot, listener net.Listener) error {
	httpLogger := app.appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	server := &http.Server{
		Handler:           internalhttp.NewRouter(snapshot, httpLogger),
		ReadHeaderTimeout: time.Duration(app.config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(app.config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(app.config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(app.config.Server.IdleTimeout) * time.Second,
	}

	app.appLogger.Info().
		Str(loggers.FieldRunID, snapshot.RunID).
		Str(loggers.FieldSource, snapshot.Source).
		Msgf("Serving snapshot on %s (log_level=%s)", listener.Addr(), app.config.Log.Level)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errInternalServer(err)
	case <-ctx.Done():
	}

	app.appLogger.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return errInternalServer(fmt.Errorf("server shutdown failed: %w", err))
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
