package views

import (
	"fmt"

	"asset-log-explorer/internal/shared/svcerrors"
)

// View errors
const (
	codeInvalidBaseURL = "UI_1001"
)

// errInvalidBaseURL returns an error when the configured asset base URL is not absolute.
func errInvalidBaseURL(baseURL string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidBaseURL, fmt.Sprintf("invalid asset base url: %q", baseURL), cause)
}
