package ingestors

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"

	"asset-log-explorer/internal/aggregators"
	"asset-log-explorer/internal/models"
	"asset-log-explorer/internal/parsers"
	"asset-log-explorer/internal/shared/filestorages"
	"asset-log-explorer/internal/shared/loggers"
	"asset-log-explorer/internal/shared/metrics"
	"asset-log-explorer/internal/shared/svcerrors"
	"asset-log-explorer/internal/shared/ulid"
)

const (
	defaultMaxLineBytes = 10 * 1024 * 1024
	// ctxCheckInterval is how many lines are scanned between context checks.
	ctxCheckInterval = 4096
)

// StorageFactory opens a FileStorage rooted at a directory.
type StorageFactory func(rootDir string) (filestorages.FileStorage, error)

// AggregatorFactory creates a fresh aggregator for each run.
type AggregatorFactory func() aggregators.Aggregator

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestFile reads an NDJSON file and folds it into a snapshot. Missing or unreadable files fail
	// with LOG_1000 / LOG_1001; bad lines are counted, never fatal.
	IngestFile(ctx context.Context, path string) (*models.Snapshot, error)
	// Ingest folds an NDJSON stream. source is recorded in the snapshot.
	Ingest(ctx context.Context, source string, r io.Reader) (*models.Snapshot, error)
}

type ingestionService struct {
	recordParser  parsers.RecordParser
	newAggregator AggregatorFactory
	openStorage   StorageFactory
	maxLineBytes  int
}

func NewIngestionService(recordParser parsers.RecordParser, newAggregator AggregatorFactory, openStorage StorageFactory, maxLineBytes int) IngestionService {
	if maxLineBytes <= 0 {
		maxLineBytes = defaultMaxLineBytes
	}
	return &ingestionService{
		recordParser:  recordParser,
		newAggregator: newAggregator,
		openStorage:   openStorage,
		maxLineBytes:  maxLineBytes,
	}
}

func (s *ingestionService) IngestFile(ctx context.Context, path string) (*models.Snapshot, error) {
	rootDir, key, err := filestorages.SplitPath(path)
	if err != nil {
		return nil, s.fail(errInvalidPath(path, err))
	}

	storage, err := s.openStorage(rootDir)
	if err != nil {
		return nil, s.fail(errInvalidPath(path, err))
	}

	readCloser, err := storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, s.fail(errFileNotFound(path, err))
		}
		return nil, s.fail(errFileUnreadable(path, err))
	}
	defer readCloser.Close()

	return s.Ingest(ctx, path, readCloser)
}

func (s *ingestionService) Ingest(ctx context.Context, source string, r io.Reader) (*models.Snapshot, error) {
	runID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldRunID, runID).
		Str(loggers.FieldSource, source).
		Logger()
	logger.Debug().Msg("started ingesting request log")

	aggregator := s.newAggregator()
	var summary models.Summary

	reader := bufio.NewReader(r)
	for lineNumber := uint64(1); ; lineNumber++ {
		if lineNumber%ctxCheckInterval == 0 && ctx.Err() != nil {
			return nil, s.fail(errInternalIngestionCancelled(ctx.Err()))
		}

		line, tooLong, readErr := s.readLine(reader)
		if readErr != nil && readErr != io.EOF {
			return nil, s.fail(errFileUnreadable(source, readErr))
		}
		if len(line) == 0 && !tooLong && readErr == io.EOF {
			break
		}

		summary.LinesRead++
		if tooLong {
			summary.MalformedJSON++
			metricLinesTotal.WithLabelValues(outcomeTooLong).Inc()
			logger.Debug().Uint64(loggers.FieldLine, lineNumber).Msg("skipped line: longer than scanner.max_line_bytes")
		} else {
			outcome := s.foldLine(line, lineNumber, aggregator, &summary, &logger)
			metricLineBytes.WithLabelValues(outcome).Observe(float64(len(line)))
		}

		if readErr == io.EOF {
			break
		}
	}

	tables := aggregator.Tables()
	for _, asset := range tables.Assets {
		summary.Requests += asset.RequestCount
		summary.TotalBandwidth += asset.TotalBandwidth
	}

	logger.Info().
		Uint64("lines_read", summary.LinesRead).
		Uint64("lines_skipped", summary.Skipped()).
		Uint64("requests", summary.Requests).
		Int("assets", len(tables.Assets)).
		Msg("finished ingesting request log")
	metricRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricSnapshotRows.WithLabelValues("assets").Set(float64(len(tables.Assets)))
	metricSnapshotRows.WithLabelValues("extensions").Set(float64(len(tables.Extensions)))
	metricSnapshotRows.WithLabelValues("clients").Set(float64(len(tables.Clients)))

	return &models.Snapshot{
		RunID:      runID,
		Source:     source,
		Summary:    summary,
		Assets:     tables.Assets,
		Extensions: tables.Extensions,
		Clients:    tables.Clients,
	}, nil
}

// foldLine parses one line and either folds it or counts why it was skipped. It returns the outcome.
func (s *ingestionService) foldLine(line []byte, lineNumber uint64, aggregator aggregators.Aggregator, summary *models.Summary, logger *loggers.Logger) string {
	record, err := s.recordParser.ParseLine(line)
	outcome := outcomeOK
	switch {
	case err == nil:
		aggregator.Add(record)
	case errors.Is(err, parsers.ErrBlankLine):
		summary.BlankLines++
		outcome = outcomeBlank
	case errors.Is(err, parsers.ErrMissingURL):
		summary.MissingURL++
		outcome = outcomeMissingURL
		logger.Debug().Err(err).Uint64(loggers.FieldLine, lineNumber).Msg("skipped line")
	default:
		summary.MalformedJSON++
		outcome = outcomeMalformedJSON
		logger.Debug().Err(err).Uint64(loggers.FieldLine, lineNumber).Msg("skipped line")
	}
	metricLinesTotal.WithLabelValues(outcome).Inc()
	return outcome
}

// readLine returns the next line without its terminator. Lines longer than maxLineBytes are drained
// and reported as tooLong instead of being buffered.
func (s *ingestionService) readLine(reader *bufio.Reader) (line []byte, tooLong bool, err error) {
	var buf bytes.Buffer
	for {
		chunk, isPrefix, readErr := reader.ReadLine()
		if !tooLong {
			if buf.Len()+len(chunk) > s.maxLineBytes {
				tooLong = true
				buf.Reset()
			} else {
				buf.Write(chunk)
			}
		}
		if readErr != nil {
			return buf.Bytes(), tooLong, readErr
		}
		if !isPrefix {
			return buf.Bytes(), tooLong, nil
		}
	}
}

// fail records the run failure metric and passes the error through.
func (s *ingestionService) fail(svcErr *svcerrors.ServiceError) error {
	metricRunsTotal.WithLabelValues(svcErr.Code).Inc()
	return svcErr
}
