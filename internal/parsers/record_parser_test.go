package parsers

import (
	"errors"
	"testing"

	"asset-log-explorer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordParser_ParseLine_Valid(t *testing.T) {
	t.Parallel()

	parser := NewRecordParser()

	tests := []struct {
		name     string
		line     string
		expected models.RequestRecord
	}{
		{
			name: "all fields",
			line: `{"body":{"url":"/images/p1/ds/a1-800x600.jpg","requestSize":100,"responseSize":5000,"userAgent":"curl/8.0"}}`,
			expected: models.RequestRecord{
				URL:          "/images/p1/ds/a1-800x600.jpg",
				RequestSize:  100,
				ResponseSize: 5000,
				UserAgent:    "curl/8.0",
			},
		},
		{
			name:     "missing sizes default to zero",
			line:     `{"body":{"url":"/images/p1/ds/a1-400x300.png","responseSize":2000}}`,
			expected: models.RequestRecord{URL: "/images/p1/ds/a1-400x300.png", ResponseSize: 2000},
		},
		{
			name:     "numeric strings are accepted",
			line:     `{"body":{"url":"/files/p1/ds/f1.pdf","requestSize":"12","responseSize":" 34 "}}`,
			expected: models.RequestRecord{URL: "/files/p1/ds/f1.pdf", RequestSize: 12, ResponseSize: 34},
		},
		{
			name:     "wrong size types are treated as absent",
			line:     `{"body":{"url":"/x","requestSize":true,"responseSize":{"n":1}}}`,
			expected: models.RequestRecord{URL: "/x"},
		},
		{
			name:     "negative and fractional sizes are treated as absent",
			line:     `{"body":{"url":"/x","requestSize":-5,"responseSize":1.5}}`,
			expected: models.RequestRecord{URL: "/x"},
		},
		{
			name:     "unknown fields are ignored",
			line:     `{"timestamp":"2025-01-01T00:00:00Z","traceId":"t","body":{"url":"/x","method":"GET","status":200}}`,
			expected: models.RequestRecord{URL: "/x"},
		},
		{
			name:     "surrounding whitespace",
			line:     "  {\"body\":{\"url\":\"/x\",\"responseSize\":7}}\r",
			expected: models.RequestRecord{URL: "/x", ResponseSize: 7},
		},
		{
			name:     "sizes at the uint64 limit",
			line:     `{"body":{"url":"/x","responseSize":18446744073709551615}}`,
			expected: models.RequestRecord{URL: "/x", ResponseSize: 18446744073709551615},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			record, err := parser.ParseLine([]byte(tt.line))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, record)
		})
	}
}

func TestRecordParser_ParseLine_Errors(t *testing.T) {
	t.Parallel()

	parser := NewRecordParser()

	tests := []struct {
		name     string
		line     string
		expected error
	}{
		{name: "empty line", line: "", expected: ErrBlankLine},
		{name: "whitespace line", line: " \t ", expected: ErrBlankLine},
		{name: "invalid json", line: `{"body":`, expected: ErrMalformedJSON},
		{name: "not json", line: `hello`, expected: ErrMalformedJSON},
		{name: "trailing data", line: `{"body":{"url":"/x"}} {}`, expected: ErrMalformedJSON},
		{name: "array document", line: `[1,2]`, expected: ErrMissingURL},
		{name: "missing body", line: `{"url":"/x"}`, expected: ErrMissingURL},
		{name: "body is a string", line: `{"body":"/x"}`, expected: ErrMissingURL},
		{name: "missing url", line: `{"body":{"responseSize":10}}`, expected: ErrMissingURL},
		{name: "url wrong type", line: `{"body":{"url":42}}`, expected: ErrMissingURL},
		{name: "url empty", line: `{"body":{"url":""}}`, expected: ErrMissingURL},
		{name: "url null", line: `{"body":{"url":null}}`, expected: ErrMissingURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			record, err := parser.ParseLine([]byte(tt.line))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected), "expected %v, got %v", tt.expected, err)
			assert.Equal(t, models.RequestRecord{}, record)
		})
	}
}
