// Package gofr serves HTTP handlers whose requests can be narrowed by filter[]/value[] query
// parameters. An App wires the configs, the logger, the metrics and the datasources of a
// container.Container into every handler through its Context.
package gofr

import (
	"context"
	"net/http"
	"os"
	"strconv"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"gofr.dev/filterable/pkg/gofr/config"
	"gofr.dev/filterable/pkg/gofr/container"
	"gofr.dev/filterable/pkg/gofr/logging"
	"gofr.dev/filterable/pkg/gofr/metrics"
)

const (
	defaultHTTPPort   = 8000
	defaultMetricPort = 2121
)

// App is the main application of the framework.
type App struct {
	// Config can be used by applications to fetch custom configurations from environment or file.
	Config config.Config // If we directly embed, unnecessary confusion between app.Get and app.GET will happen.

	httpServer   *httpServer
	metricServer *server

	// container is unexported because applications reach it through Context
	container *container.Container

	templateDir string

	tracerProvider *sdktrace.TracerProvider
}

// New creates an HTTP Server Application reading its configs from ./configs.
func New() *App {
	var configLocation string
	if _, err := os.Stat("./configs"); err == nil {
		configLocation = "./configs"
	}

	return NewWithConfig(config.NewEnvFile(configLocation, logging.NewLogger(logging.INFO)))
}

// NewWithConfig creates an HTTP Server Application from cfg.
func NewWithConfig(cfg config.Config) *App {
	app := &App{Config: cfg}
	app.container = container.NewContainer(cfg)

	app.initTracer()

	app.httpServer = newHTTPServer(app.container, portFromConfig(cfg, "HTTP_PORT", defaultHTTPPort))
	app.metricServer = newMetricServer(app.container, portFromConfig(cfg, "METRICS_PORT", defaultMetricPort))

	app.templateDir = cfg.GetOrDefault("TEMPLATE_DIR", "./templates")

	app.add(http.MethodGet, "/.well-known/health", healthHandler)

	return app
}

func portFromConfig(cfg config.Config, key string, def int) int {
	port, err := strconv.Atoi(cfg.Get(key))
	if err != nil || port <= 0 {
		return def
	}

	return port
}

// GET adds a Handler for HTTP GET method for a route pattern.
func (a *App) GET(pattern string, handler Handler) {
	a.add(http.MethodGet, pattern, handler)
}

// POST adds a Handler for HTTP POST method for a route pattern.
func (a *App) POST(pattern string, handler Handler) {
	a.add(http.MethodPost, pattern, handler)
}

func (a *App) add(method, pattern string, h Handler) {
	a.httpServer.router.Add(method, pattern, handler{
		function:    h,
		container:   a.container,
		templateDir: a.templateDir,
	})
}

// ServeHTTP serves r with the routes of a, through the same middlewares as the HTTP server.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.httpServer.router.ServeHTTP(w, r)
}

func (a *App) Metrics() metrics.Manager {
	return a.container.Metrics()
}

func (a *App) Logger() logging.Logger {
	return a.container.Logger
}

// Container gives access to the datasources, for instance to build the stores of the handlers.
func (a *App) Container() *container.Container {
	return a.container
}

// Shutdown stops the servers and closes the datasources.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.httpServer.Shutdown(ctx)

	if shutdownErr := a.metricServer.Shutdown(ctx); shutdownErr != nil && err == nil {
		err = shutdownErr
	}

	if closeErr := a.container.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if tracerErr := a.shutdownTracer(ctx); tracerErr != nil && err == nil {
		err = tracerErr
	}

	return err
}
