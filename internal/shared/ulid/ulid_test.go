package ulid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime_RoundTrip(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC().Truncate(time.Millisecond)
	id := NewULID()
	after := time.Now().UTC()

	ts, err := Time(id)
	require.NoError(t, err)
	assert.False(t, ts.Before(before))
	assert.False(t, ts.After(after))
	assert.Equal(t, time.UTC, ts.Location())
}

func TestTime_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
	}{
		{name: "empty", id: ""},
		{name: "too short", id: "01J9ZK3V8W"},
		{name: "invalid character", id: "01J9ZK3V8W6YF4T4Q2N3M5P7RU"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Time(tt.id)
			assert.Error(t, err)
		})
	}
}
