package tui

import (
	"asset-log-explorer/internal/shared/svcerrors"
)

// Terminal errors
const (
	codeInternalTerminalFailed = "UI_9000"
)

// errInternalTerminalFailed returns an error when the terminal program cannot start or crashes.
func errInternalTerminalFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTerminalFailed, cause)
}
