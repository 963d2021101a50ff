package loggers

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONAtLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New("info", &buf)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str(FieldRunID, "01J9ZK3V8W6YF4T4Q2N3M5P7RS").Msg("finished ingesting request log")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "01J9ZK3V8W6YF4T4Q2N3M5P7RS", entry[FieldRunID])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "caller")
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New("loud", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestCtx(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New("debug", &buf)
	require.NoError(t, err)

	ctx := logger.WithContext(context.Background())
	Ctx(ctx).Debug().Msg("from context")
	assert.Contains(t, buf.String(), "from context")

	// no logger in context: disabled, never nil
	assert.NotNil(t, Ctx(context.Background()))
}
