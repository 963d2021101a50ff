package reports

import (
	"fmt"

	"asset-log-explorer/internal/shared/svcerrors"
)

// Report errors
const (
	codeInvalidFormat = "REP_1000"

	codeInternalRenderFailed = "REP_9000"
)

// errInvalidFormat returns an error for an unsupported report format.
func errInvalidFormat(format string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidFormat, fmt.Sprintf("invalid report format: %q (want text, json or yaml)", format), nil)
}

// errInternalRenderFailed returns an error when encoding or writing the report fails.
func errInternalRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("renderFailed: %w", cause))
}
