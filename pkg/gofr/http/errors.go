// Package http wraps net/http requests and responses for handlers that should not care about the
// transport.
package http

import (
	"fmt"
	"net/http"
)

// ErrorEntityNotFound is returned when no entity has Name equal to Value, for instance no product
// with the id of the path that also matches the filters of the request.
type ErrorEntityNotFound struct {
	Name  string
	Value string
}

func (e ErrorEntityNotFound) Error() string {
	return fmt.Sprintf("No entity found with %s: %s", e.Name, e.Value)
}

func (ErrorEntityNotFound) StatusCode() int {
	return http.StatusNotFound
}

// ErrorInvalidRoute answers requests that match no registered route.
type ErrorInvalidRoute struct{}

func (ErrorInvalidRoute) Error() string {
	return "route not registered"
}

func (ErrorInvalidRoute) StatusCode() int {
	return http.StatusNotFound
}
