package gofr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gofr.dev/filterable/pkg/gofr/container"
	gofrHTTP "gofr.dev/filterable/pkg/gofr/http"
	"gofr.dev/filterable/pkg/gofr/http/middleware"
	"gofr.dev/filterable/pkg/gofr/logging"
	"gofr.dev/filterable/pkg/gofr/metrics"
)

// server listens on port with handler until it is shut down.
type server struct {
	name    string
	port    int
	handler http.Handler
	srv     *http.Server
}

type httpServer struct {
	server
	router *gofrHTTP.Router
}

func newHTTPServer(c *container.Container, port int) *httpServer {
	r := gofrHTTP.NewRouter()

	r.UseMiddleware(
		middleware.Tracer,
		middleware.Logging(c.Logger),
		middleware.Metrics(c.Metrics()),
	)

	r.NotFoundHandler = handler{function: catchAllHandler, container: c}

	return &httpServer{
		server: server{name: "http", port: port, handler: r},
		router: r,
	}
}

// newMetricServer serves the /metrics endpoint of the metrics manager of c.
func newMetricServer(c *container.Container, port int) *server {
	return &server{name: "metrics", port: port, handler: metrics.GetHandler(c.Metrics())}
}

func (s *server) Run(logger logging.Logger) {
	if s.srv != nil {
		logger.Logf("%s server already running on port: %d", s.name, s.port)
		return
	}

	logger.Logf("Starting %s server on port: %d", s.name, s.port)

	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("error while listening to %s server, err: %v", s.name, err)
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}

	return ShutdownWithContext(ctx, s.srv.Shutdown, s.srv.Close)
}
