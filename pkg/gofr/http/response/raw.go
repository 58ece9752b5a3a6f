// Package response holds the values a handler can return to control how the responder writes them.
package response

import "net/http"

// Raw is written as JSON without the {"data": ...} envelope.
type Raw struct {
	Headers map[string]string
	Data    any
}

func (raw Raw) SetCustomHeaders(w http.ResponseWriter) {
	for key, value := range raw.Headers {
		w.Header().Set(key, value)
	}
}
