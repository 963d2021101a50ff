package http

import (
	"fmt"

	"asset-log-explorer/internal/shared/svcerrors"
)

// Handler errors
const (
	codeInvalidQuery = "HTTP_1000"
)

// errInvalidQuery returns an error for query parameters that fail validation.
func errInvalidQuery(detail string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQuery, fmt.Sprintf("invalid query: %s", detail), cause)
}
