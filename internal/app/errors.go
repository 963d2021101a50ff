package app

import (
	"fmt"

	"asset-log-explorer/internal/shared/svcerrors"
)

// App errors
const (
	codeReportExists      = "APP_1000"
	codeInvalidOutputPath = "APP_1001"
	codeInvalidLogFile    = "APP_1002"

	codeInternalWriteReport = "APP_9000"
	codeInternalServer      = "APP_9001"
)

// errReportExists returns an error when --out points at an existing file and --force is not set.
func errReportExists(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeReportExists, fmt.Sprintf("report already exists: %s (use --force to overwrite)", path), cause)
}

// errInvalidOutputPath returns an error for an --out path that cannot be resolved.
func errInvalidOutputPath(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidOutputPath, fmt.Sprintf("invalid report path: %q", path), cause)
}

// errInvalidLogFile returns an error when log.file cannot be opened for appending.
func errInvalidLogFile(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidLogFile, fmt.Sprintf("cannot open log file: %s", path), cause)
}

// errInternalWriteReport returns an error when a rendered report cannot be stored.
func errInternalWriteReport(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalWriteReport, fmt.Errorf("writeReport: %w", cause))
}

// errInternalServer returns an error when the HTTP server stops unexpectedly.
func errInternalServer(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalServer, fmt.Errorf("serve: %w", cause))
}
