// Package middleware holds the http.Handler wrappers installed on every route of the router.
package middleware

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	gofrHTTP "gofr.dev/filterable/pkg/gofr/http"
)

// StatusResponseWriter remembers the status written by the handler, which http.ResponseWriter
// does not expose.
type StatusResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *StatusResponseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *StatusResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	return w.ResponseWriter.Write(b)
}

// RequestLog represents a log entry for HTTP requests.
type RequestLog struct {
	TraceID      string `json:"trace_id,omitempty"`
	SpanID       string `json:"span_id,omitempty"`
	StartTime    string `json:"start_time,omitempty"`
	ResponseTime int64  `json:"response_time,omitempty"`
	Method       string `json:"method,omitempty"`
	UserAgent    string `json:"user_agent,omitempty"`
	IP           string `json:"ip,omitempty"`
	URI          string `json:"uri,omitempty"`
	Response     int    `json:"response,omitempty"`
}

// PrettyPrint writes the URI unescaped, so that filter[0]=type reads as such instead of
// filter%5B0%5D=type.
func (rl *RequestLog) PrettyPrint(writer io.Writer) {
	fmt.Fprintf(writer, "\u001B[38;5;8m%s \u001B[38;5;%dm%-6d\u001B[0m %8d\u001B[38;5;8mµs\u001B[0m %s %s \n",
		rl.TraceID, colorForStatusCode(rl.Response), rl.Response, rl.ResponseTime, rl.Method, readableURI(rl.URI))
}

func readableURI(uri string) string {
	if unescaped, err := url.QueryUnescape(uri); err == nil {
		return unescaped
	}

	return uri
}

func colorForStatusCode(status int) int {
	const (
		blue   = 34
		red    = 202
		yellow = 220
	)

	switch {
	case status >= 200 && status < 300:
		return blue
	case status >= 400 && status < 500:
		return yellow
	case status >= 500 && status < 600:
		return red
	}

	return 0
}

type logger interface {
	Log(...any)
	Error(...any)
}

// Logging is a middleware which logs response status and time in microseconds along with other data.
// A panic of the handler is logged with its stack and answered with a 500.
func Logging(logger logger) func(inner http.Handler) http.Handler {
	return func(inner http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			srw := &StatusResponseWriter{ResponseWriter: w}

			spanContext := trace.SpanFromContext(r.Context()).SpanContext()

			defer func(res *StatusResponseWriter, req *http.Request) {
				l := &RequestLog{
					StartTime:    start.Format("2006-01-02T15:04:05.999999999-07:00"),
					ResponseTime: time.Since(start).Microseconds(),
					Method:       req.Method,
					UserAgent:    req.UserAgent(),
					IP:           getIPAddress(req),
					URI:          req.RequestURI,
					Response:     res.status,
				}

				if spanContext.IsValid() {
					l.TraceID = spanContext.TraceID().String()
					l.SpanID = spanContext.SpanID().String()
				}

				if res.status >= http.StatusInternalServerError {
					logger.Error(l)
				} else {
					logger.Log(l)
				}
			}(srw, r)

			defer func() {
				panicRecovery(recover(), srw, r, logger)
			}()

			inner.ServeHTTP(srw, r)
		})
	}
}

func getIPAddress(r *http.Request) string {
	ips := strings.Split(r.Header.Get("X-Forwarded-For"), ",")

	// the first entry of X-Forwarded-For is the client, proxies append themselves after it
	ipAddress := ips[0]

	if ipAddress == "" {
		ipAddress = r.RemoteAddr
	}

	return strings.TrimSpace(ipAddress)
}

type panicLog struct {
	Error      string `json:"error,omitempty"`
	StackTrace string `json:"stack_trace,omitempty"`
}

var errUnexpected = errors.New("Some unexpected error has occurred")

// panicRecovery logs re with the stack and answers r with a 500 in the JSON envelope of handlers.
func panicRecovery(re any, w http.ResponseWriter, r *http.Request, logger logger) {
	if re == nil {
		return
	}

	logger.Error(panicLog{
		Error:      fmt.Sprint(re),
		StackTrace: string(debug.Stack()),
	})

	gofrHTTP.NewResponder(w, r.Method).Respond(nil, errUnexpected)
}
