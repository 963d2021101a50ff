package browsers

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"asset-log-explorer/internal/shared/loggers"
	"asset-log-explorer/internal/shared/metrics"
	"asset-log-explorer/internal/shared/svcerrors"
)

const defaultTimeout = 10 * time.Second

// execCommand is swapped in tests.
var execCommand = exec.CommandContext

// Opener hands a URL to the operating system's browser opener.
//
//go:generate mockgen -source=opener.go -destination=./mocks/opener_mock.go -package=mocks
type Opener interface {
	// Open blocks until the opener process exits or the timeout elapses. A missing opener utility,
	// a non-zero exit and a timeout all fail with UI_1000.
	Open(ctx context.Context, url string) error
}

type commandOpener struct {
	command []string
	timeout time.Duration
}

// NewOpener builds an opener. An empty command selects the platform default
// (open on macOS, cmd /C start on Windows, xdg-open elsewhere).
func NewOpener(command string, timeout time.Duration) Opener {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		argv = PlatformCommand(runtime.GOOS)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &commandOpener{command: argv, timeout: timeout}
}

// PlatformCommand returns the default opener argv for a GOOS value. The URL is appended as the last argument.
func PlatformCommand(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		// the empty argument is the window title consumed by start
		return []string{"cmd", "/C", "start", ""}
	default:
		return []string{"xdg-open"}
	}
}

func (o *commandOpener) Open(ctx context.Context, url string) error {
	if strings.TrimSpace(url) == "" {
		return o.fail(ctx, errOpenURLEmpty())
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	args := append(append([]string{}, o.command[1:]...), url)
	cmd := execCommand(ctx, o.command[0], args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		switch {
		case errors.Is(err, exec.ErrNotFound):
			return o.fail(ctx, errOpenerNotFound(o.command[0], err))
		case ctx.Err() != nil:
			return o.fail(ctx, errOpenerTimeout(o.command[0], o.timeout, ctx.Err()))
		default:
			return o.fail(ctx, errOpenerFailed(o.command[0], strings.TrimSpace(string(output)), err))
		}
	}

	loggers.Ctx(ctx).Debug().Str(loggers.FieldURL, url).Msg("opened url")
	metricOpenURLTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return nil
}

// fail logs and counts the failure and passes the error through.
func (o *commandOpener) fail(ctx context.Context, svcErr *svcerrors.ServiceError) error {
	loggers.Ctx(ctx).Warn().Err(svcErr.Cause).Str(loggers.FieldErrorCode, svcErr.Code).Msg(svcErr.Message)
	metricOpenURLTotal.WithLabelValues(svcErr.Code).Inc()
	return svcErr
}
