package models

// RequestRecord is one parsed log line. It is consumed by the aggregator right away and never retained.
type RequestRecord struct {
	URL          string // raw path + query, or an absolute URL
	RequestSize  uint64 // bytes sent by the client, 0 when absent
	ResponseSize uint64 // bytes returned, 0 when absent
	UserAgent    string // empty when absent
}

// Bandwidth is the sum of request and response sizes.
func (r RequestRecord) Bandwidth() uint64 {
	return r.RequestSize + r.ResponseSize
}
