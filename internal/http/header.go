package http

import (
	"encoding/json"
	"net/http"
	"strings"
)

const (
	headerRequestID   = "x-request-id"
	headerContentType = "content-type"

	contentTypeJSON = "application/json"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

// writeJSON writes body as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
