// Package gateway mounts ops.Dispatcher, the registry-driven S3 request
// pipeline, behind the same huma/v2 + chi/v5 HTTP surface and middleware
// chain internal/server built by hand for the teacher's old per-operation
// handlers: /health via Huma, /metrics via promhttp, and a catch-all that
// now resolves through the registry instead of a hand-written method/query
// switch.
package gateway

import (
	"context"
	"net/http"

	"github.com/bleepstore/s3kit/internal/ops"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the s3kit HTTP gateway: ops.Dispatcher wrapped in the
// request-id/metrics/transfer-encoding/meta-header middleware chain, plus
// the non-S3 health and metrics endpoints.
type Server struct {
	router     chi.Router
	api        huma.API
	dispatcher *ops.Dispatcher
	httpServer *http.Server
}

// HealthBody is the JSON body returned by the health check endpoint.
type HealthBody struct {
	Status string `json:"status" example:"ok" doc:"Health status"`
}

// HealthOutput is the Huma output struct for the health check endpoint.
type HealthOutput struct {
	Body HealthBody
}

// New builds a Server around an already-constructed Dispatcher.
func New(dispatcher *ops.Dispatcher) *Server {
	router := chi.NewMux()

	humaConfig := huma.DefaultConfig("s3kit S3 API", "1.0.0")
	humaConfig.DocsPath = "/docs"
	humaConfig.OpenAPIPath = "/openapi"
	api := humachi.New(router, humaConfig)

	s := &Server{router: router, api: api, dispatcher: dispatcher}
	s.registerRoutes()
	return s
}

// registerRoutes registers /health, /metrics, and the S3 catch-all, in
// that order: chi matches the specific routes first and only falls
// through to the catch-all for everything else.
func (s *Server) registerRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the s3kit gateway.",
		Tags:        []string{"System"},
	}, func(ctx context.Context, input *struct{}) (*HealthOutput, error) {
		return &HealthOutput{Body: HealthBody{Status: "ok"}}, nil
	})

	s.router.Head("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	})

	s.router.Handle("/metrics", promhttp.Handler())

	s.router.Handle("/*", s.dispatcher)
}

// ListenAndServe starts the HTTP server on addr. Middleware chain
// (outermost to innermost): metricsMiddleware -> commonHeaders ->
// transferEncodingCheck -> metadataHeaderMiddleware -> router.
func (s *Server) ListenAndServe(addr string) error {
	var handler http.Handler = s.router
	handler = metadataHeaderMiddleware(handler)
	handler = transferEncodingCheck(handler)
	handler = commonHeaders(handler)
	handler = metricsMiddleware(handler)

	s.httpServer = &http.Server{Addr: addr, Handler: handler}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server, waiting for in-flight
// requests to complete within ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
