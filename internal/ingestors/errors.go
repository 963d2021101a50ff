package ingestors

import (
	"fmt"

	"asset-log-explorer/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeFileNotFound   = "LOG_1000"
	codeFileUnreadable = "LOG_1001"
	codeInvalidPath    = "LOG_1002"

	codeInternalIngestionCancelled = "LOG_9000"
)

// errFileNotFound returns an error when the log file does not exist.
func errFileNotFound(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeFileNotFound, fmt.Sprintf("log file not found: %s", path), cause)
}

// errFileUnreadable returns an error when the log file exists but cannot be read.
func errFileUnreadable(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeFileUnreadable, fmt.Sprintf("log file unreadable: %s", path), cause)
}

// errInvalidPath returns an error for an empty or unresolvable log path.
func errInvalidPath(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidPath, fmt.Sprintf("invalid log file path: %q", path), cause)
}

// errInternalIngestionCancelled returns an error when the context ends before the scan completes.
func errInternalIngestionCancelled(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalIngestionCancelled, fmt.Errorf("ingestionCancelled: %w", cause))
}
