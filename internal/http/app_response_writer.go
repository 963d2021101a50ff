package http

import (
	"net/http"

	"asset-log-explorer/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records the status (via chi's WrapResponseWriter) and the ServiceError of a
// failed request, so the metrics and log middleware can label the request after the handler returns.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor)}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

// ErrorCode is the code of the recorded error, or empty for successful requests.
func (w *appResponseWriter) ErrorCode() string {
	if w.svcError == nil {
		return ""
	}
	return w.svcError.Code
}
