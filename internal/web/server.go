package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	api "github.com/darulriyan/aplikasi-dashboard/api/v1"
)

// NewServer creates the http.Handler with the routes of the OpenAPI
// document under /api/v1 plus GET /metrics.
func NewServer(handler *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())

	api.HandlerWithOptions(handler, api.StdHTTPServerOptions{
		BaseRouter:       mux,
		Middlewares:      []api.MiddlewareFunc{handler.requireSession},
		ErrorHandlerFunc: handler.paramError,
	})
	return withRequestID(withMetrics(handler.logger, mux))
}
