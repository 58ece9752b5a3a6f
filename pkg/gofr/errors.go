package gofr

import (
	"net/http"
	"sort"
	"strings"
)

type errPanicRecovery struct{}

func (errPanicRecovery) Error() string {
	return http.StatusText(http.StatusInternalServerError)
}

func (errPanicRecovery) StatusCode() int {
	return http.StatusInternalServerError
}

type errDatasourceDown struct {
	details map[string]string
}

func (e errDatasourceDown) Error() string {
	down := make([]string, 0, len(e.details))

	for name, status := range e.details {
		if status != "UP" {
			down = append(down, name)
		}
	}

	sort.Strings(down)

	return "datasources down: " + strings.Join(down, ", ")
}

func (errDatasourceDown) StatusCode() int {
	return http.StatusServiceUnavailable
}
