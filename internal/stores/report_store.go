package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"asset-log-explorer/internal/models"
	"asset-log-explorer/internal/reports"
	"asset-log-explorer/internal/shared/filestorages"
)

var (
	ErrReportAlreadyExist = errors.New("report already exists")
)

// ReportStore writes rendered reports through a FileStorage. The storage writes to a temp file and
// renames it into place, so a reader never sees a partially written report. With overwrite false the
// write is create-if-not-exists.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	Put(ctx context.Context, key string, snapshot *models.Snapshot, opts reports.Options, overwrite bool) (string, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
}

func NewReportStore(fileStorage filestorages.FileStorage) ReportStore {
	return &reportStore{fileStorage: fileStorage}
}

// Put renders the snapshot and stores it under key, returning the stored key.
func (s *reportStore) Put(ctx context.Context, key string, snapshot *models.Snapshot, opts reports.Options, overwrite bool) (string, error) {
	var buf bytes.Buffer
	if err := reports.Render(&buf, snapshot, opts); err != nil {
		return "", err
	}

	result, err := s.fileStorage.Put(ctx, key, &buf, filestorages.PutOptions{AllowOverwrite: overwrite})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", ErrReportAlreadyExist
		}
		return "", fmt.Errorf("failed to put report: %w", err)
	}
	return result.FileKey, nil
}
