package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

type metrics interface {
	NewHistogram(name, desc string, buckets ...float64)
	RecordHistogram(ctx context.Context, name string, value float64, labels ...string)
}

// RegisterMetrics registers the histogram recorded by Metrics.
func RegisterMetrics(m metrics) {
	httpBuckets := []float64{.001, .003, .005, .01, .02, .03, .05, .1, .2, .3, .5, .75, 1, 2, 3, 5, 10, 30}
	m.NewHistogram("app_http_response", "Response time of HTTP requests in seconds.", httpBuckets...)
}

// Metrics records the response time of every request in the app_http_response histogram, labelled
// with the route template when the request matched a route.
func Metrics(metrics metrics) func(inner http.Handler) http.Handler {
	return func(inner http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			srw := &StatusResponseWriter{ResponseWriter: w}

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					path = tmpl
				}
			}

			if path != "/" {
				path = strings.TrimSuffix(path, "/")
			}

			// status is only known once the handler returns
			defer func(res *StatusResponseWriter, req *http.Request) {
				metrics.RecordHistogram(context.Background(), "app_http_response", time.Since(start).Seconds(),
					"path", path, "method", req.Method, "status", strconv.Itoa(res.status))
			}(srw, r)

			inner.ServeHTTP(srw, r)
		})
	}
}
