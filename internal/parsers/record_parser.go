package parsers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"asset-log-explorer/internal/models"
)

var (
	// ErrBlankLine marks a whitespace-only line. Callers skip it without counting an error.
	ErrBlankLine = errors.New("blank line")
	// ErrMalformedJSON marks a line that is not a single JSON document.
	ErrMalformedJSON = errors.New("malformed json")
	// ErrMissingURL marks a line without a non-empty string body.url.
	ErrMissingURL = errors.New("missing url")
)

const (
	fieldBody         = "body"
	fieldURL          = "url"
	fieldRequestSize  = "requestSize"
	fieldResponseSize = "responseSize"
	fieldUserAgent    = "userAgent"
)

//go:generate mockgen -source=record_parser.go -destination=./mocks/record_parser_mock.go -package=mocks
type RecordParser interface {
	// ParseLine parses one NDJSON line. Errors wrap ErrBlankLine, ErrMalformedJSON or ErrMissingURL.
	ParseLine(line []byte) (models.RequestRecord, error)
}

type recordParser struct{}

func NewRecordParser() RecordParser {
	return &recordParser{}
}

func (p *recordParser) ParseLine(line []byte) (models.RequestRecord, error) {
	if len(bytes.TrimSpace(line)) == 0 {
		return models.RequestRecord{}, ErrBlankLine
	}

	doc, err := p.decode(line)
	if err != nil {
		return models.RequestRecord{}, err
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return models.RequestRecord{}, fmt.Errorf("%w: line is not an object", ErrMissingURL)
	}

	// Parse body
	body, ok := obj[fieldBody].(map[string]any)
	if !ok {
		return models.RequestRecord{}, fmt.Errorf("%w: body must be an object", ErrMissingURL)
	}

	// Parse url
	url, ok := body[fieldURL].(string)
	if !ok || url == "" {
		return models.RequestRecord{}, fmt.Errorf("%w: body.url must be a non-empty string", ErrMissingURL)
	}

	record := models.RequestRecord{
		URL:          url,
		RequestSize:  p.parseSize(body[fieldRequestSize]),
		ResponseSize: p.parseSize(body[fieldResponseSize]),
	}

	// Parse userAgent
	if userAgent, ok := body[fieldUserAgent].(string); ok {
		record.UserAgent = strings.TrimSpace(userAgent)
	}

	return record, nil
}

// decode parses exactly one JSON document, keeping numbers as json.Number.
func (p *recordParser) decode(line []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(line))
	decoder.UseNumber()

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformedJSON)
	}
	return doc, nil
}

// parseSize accepts non-negative integers as JSON numbers or decimal strings. Anything else counts as 0
// so one bad size field does not discard the record.
func (p *recordParser) parseSize(value any) uint64 {
	var raw string
	switch v := value.(type) {
	case json.Number:
		raw = v.String()
	case string:
		raw = strings.TrimSpace(v)
	default:
		return 0
	}

	size, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return size
}
