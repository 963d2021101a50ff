package browsers

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"asset-log-explorer/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		goos string
		want []string
	}{
		{name: "macOS", goos: "darwin", want: []string{"open"}},
		{name: "windows", goos: "windows", want: []string{"cmd", "/C", "start", ""}},
		{name: "linux", goos: "linux", want: []string{"xdg-open"}},
		{name: "other unix", goos: "freebsd", want: []string{"xdg-open"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PlatformCommand(tt.goos))
		})
	}
}

func TestNewOpener_CommandOverride(t *testing.T) {
	t.Parallel()

	opener := NewOpener("firefox --new-tab", 0).(*commandOpener)
	assert.Equal(t, []string{"firefox", "--new-tab"}, opener.command)
	assert.Equal(t, defaultTimeout, opener.timeout)
}

func TestOpen_Success(t *testing.T) {
	t.Parallel()

	opener := NewOpener("true", time.Second)
	err := opener.Open(context.Background(), "https://cdn.sanity.io/images/p/d/a-1x1.png")
	assert.NoError(t, err)
}

func requireOpenURLFailed(t *testing.T, err error) *svcerrors.ServiceError {
	t.Helper()
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError, got %v", err)
	assert.Equal(t, "UI_1000", svcErr.Code)
	return svcErr
}

func TestOpen_NonZeroExit(t *testing.T) {
	t.Parallel()

	opener := NewOpener("false", time.Second)
	err := opener.Open(context.Background(), "https://example.com")

	requireOpenURLFailed(t, err)
	var exitErr *exec.ExitError
	assert.ErrorAs(t, err, &exitErr)
}

func TestOpen_OpenerNotFound(t *testing.T) {
	t.Parallel()

	opener := NewOpener("definitely-not-an-opener-7f3a", time.Second)
	err := opener.Open(context.Background(), "https://example.com")

	svcErr := requireOpenURLFailed(t, err)
	assert.Contains(t, svcErr.Message, "not found")
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestOpen_Timeout(t *testing.T) {
	t.Parallel()

	opener := NewOpener("sleep 5", 50*time.Millisecond)
	start := time.Now()
	err := opener.Open(context.Background(), "1")

	svcErr := requireOpenURLFailed(t, err)
	assert.Contains(t, svcErr.Message, "did not exit within")
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestOpen_EmptyURL(t *testing.T) {
	t.Parallel()

	opener := NewOpener("true", time.Second)
	err := opener.Open(context.Background(), "  ")

	requireOpenURLFailed(t, err)
}

func TestOpen_AppendsURLAfterArguments(t *testing.T) {
	// not parallel: swaps execCommand
	var gotName string
	var gotArgs []string
	original := execCommand
	execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		gotName, gotArgs = name, args
		return exec.CommandContext(ctx, "true")
	}
	defer func() { execCommand = original }()

	opener := NewOpener("cmd /C start \"\"", time.Second)
	require.NoError(t, opener.Open(context.Background(), "https://example.com/a"))

	assert.Equal(t, "cmd", gotName)
	assert.Equal(t, []string{"/C", "start", `""`, "https://example.com/a"}, gotArgs)
}
