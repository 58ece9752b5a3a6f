package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Router is responsible for routing HTTP request.
type Router struct {
	mux.Router
	RegisteredRoutes *[]string
}

type Middleware func(handler http.Handler) http.Handler

// NewRouter creates a new Router instance.
func NewRouter() *Router {
	muxRouter := mux.NewRouter().StrictSlash(false)
	routes := make([]string, 0)

	return &Router{
		Router:           *muxRouter,
		RegisteredRoutes: &routes,
	}
}

// Add routes method requests on pattern to handler, which runs in a span named after the route.
func (rou *Router) Add(method, pattern string, handler http.Handler) {
	route := method + " " + pattern

	rou.Router.NewRoute().Methods(method).Path(pattern).Handler(otelhttp.NewHandler(handler, route))

	*rou.RegisteredRoutes = append(*rou.RegisteredRoutes, route)
}

// UseMiddleware registers middlewares to the router.
func (rou *Router) UseMiddleware(mws ...Middleware) {
	middlewares := make([]mux.MiddlewareFunc, 0, len(mws))
	for _, m := range mws {
		middlewares = append(middlewares, mux.MiddlewareFunc(m))
	}

	rou.Use(middlewares...)
}
