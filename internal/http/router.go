package http

import (
	"net/http"

	"asset-log-explorer/internal/models"
	"asset-log-explorer/internal/shared/loggers"
	"asset-log-explorer/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates the read-only router over one immutable snapshot.
func NewRouter(snapshot *models.Snapshot, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger.With().Str(loggers.FieldRunID, snapshot.RunID).Logger())

	// Snapshot routes
	router.Group(func(r chi.Router) {
		r.Use(mwSnapshotETag(snapshot.RunID))
		r.Get("/summary", errorHandlingAdapter(NewSummaryHandler(snapshot)))
		r.Get("/assets", errorHandlingAdapter(NewAssetsHandler(snapshot)))
		r.Get("/types", errorHandlingAdapter(NewTypesHandler(snapshot)))
		r.Get("/clients", errorHandlingAdapter(NewClientsHandler(snapshot)))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
