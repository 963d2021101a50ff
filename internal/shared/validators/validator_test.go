package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	Port int    `validate:"min=1,max=65535"`
	Mode string `validate:"oneof=fast slow"`
}

type testConfig struct {
	Name   string `validate:"required"`
	Server testServer
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config testConfig
		want   string
	}{
		{
			name:   "required",
			config: testConfig{Server: testServer{Port: 80, Mode: "fast"}},
			want:   "name (required)",
		},
		{
			name:   "nested max",
			config: testConfig{Name: "x", Server: testServer{Port: 70000, Mode: "fast"}},
			want:   "server.port (max=65535)",
		},
		{
			name:   "multiple",
			config: testConfig{Name: "x", Server: testServer{Port: 0, Mode: "medium"}},
			want:   "server.port (min=1), server.mode (oneof=fast slow)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := New().Struct(&tt.config)
			require.Error(t, err)
			assert.Equal(t, tt.want, Describe(err))
		})
	}
}

func TestDescribe_Valid(t *testing.T) {
	t.Parallel()

	err := New().Struct(&testConfig{Name: "x", Server: testServer{Port: 8088, Mode: "slow"}})
	assert.NoError(t, err)
}

func TestDescribe_OtherError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
