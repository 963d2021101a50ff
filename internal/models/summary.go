package models

// Summary holds the line accounting of one ingestion run.
type Summary struct {
	LinesRead      uint64 `json:"linesRead" yaml:"linesRead"`
	BlankLines     uint64 `json:"blankLines" yaml:"blankLines"`
	MalformedJSON  uint64 `json:"malformedJson" yaml:"malformedJson"`
	MissingURL     uint64 `json:"missingUrl" yaml:"missingUrl"`
	Requests       uint64 `json:"requests" yaml:"requests"`
	TotalBandwidth uint64 `json:"totalBandwidth" yaml:"totalBandwidth"`
}

// Skipped is the number of lines dropped because of parse or missing-url errors.
func (s Summary) Skipped() uint64 {
	return s.MalformedJSON + s.MissingURL
}

// AverageSize is the overall bandwidth per request.
func (s Summary) AverageSize() float64 {
	return averageSize(s.TotalBandwidth, s.Requests)
}
