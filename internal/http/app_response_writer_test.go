package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"asset-log-explorer/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestAppResponseWriter_ErrorCode(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Empty(t, appWriter.ErrorCode())

	appWriter.SetServiceError(errInvalidQuery("sort (oneof=id ext requests avg bandwidth)", nil))
	assert.Equal(t, "HTTP_1000", appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewInternalError("REP_9000", nil))
	assert.Equal(t, "REP_9000", appWriter.ErrorCode())

	appWriter.SetServiceError(nil)
	assert.Empty(t, appWriter.ErrorCode())
}

func TestAppResponseWriter_RecordsStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	appWriter.WriteHeader(http.StatusNotModified)
	_, _ = appWriter.Write(nil)

	assert.Equal(t, http.StatusNotModified, appWriter.Status())
	assert.Equal(t, http.StatusNotModified, rr.Code)
}

func TestResponseStatus(t *testing.T) {
	t.Parallel()

	// plain writers and untouched app writers report 200
	status, code := responseStatus(httptest.NewRecorder())
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, code)

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	status, _ = responseStatus(appWriter)
	assert.Equal(t, http.StatusOK, status)

	appWriter.SetServiceError(errInvalidQuery("limit (integer)", nil))
	appWriter.WriteHeader(http.StatusBadRequest)
	status, code = responseStatus(appWriter)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "HTTP_1000", code)
}
