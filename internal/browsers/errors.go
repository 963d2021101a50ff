package browsers

import (
	"fmt"
	"time"

	"asset-log-explorer/internal/shared/svcerrors"
)

// Opener errors
const (
	codeOpenURLFailed = "UI_1000"
)

// errOpenURLEmpty returns an error when there is no URL to open.
func errOpenURLEmpty() *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeOpenURLFailed, "failed to open url: url is empty", nil)
}

// errOpenerNotFound returns an error when the opener utility is not installed.
func errOpenerNotFound(command string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeOpenURLFailed, fmt.Sprintf("failed to open url: %s not found", command), cause)
}

// errOpenerTimeout returns an error when the opener does not exit in time.
func errOpenerTimeout(command string, timeout time.Duration, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeOpenURLFailed, fmt.Sprintf("failed to open url: %s did not exit within %s", command, timeout), cause)
}

// errOpenerFailed returns an error when the opener exits non-zero.
func errOpenerFailed(command, output string, cause error) *svcerrors.ServiceError {
	message := fmt.Sprintf("failed to open url: %s: %v", command, cause)
	if output != "" {
		message += ": " + output
	}
	return svcerrors.NewUnavailableError(codeOpenURLFailed, message, cause)
}
