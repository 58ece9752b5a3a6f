package gofr

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"gofr.dev/filterable/pkg/gofr/container"
	gofrHTTP "gofr.dev/filterable/pkg/gofr/http"
)

type Handler func(c *Context) (any, error)

type handler struct {
	function    Handler
	container   *container.Container
	templateDir string
}

func (h handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c := newContext(gofrHTTP.NewResponder(w, r.Method), gofrHTTP.NewRequest(r), h.container, h.templateDir)

	var (
		result any
		err    error
	)

	func() {
		defer func() {
			if re := recover(); re != nil {
				c.Error(panicLog{Error: fmt.Sprint(re), StackTrace: string(debug.Stack())})

				err = errPanicRecovery{}
			}
		}()

		result, err = h.function(c)
	}()

	c.responder.Respond(result, err)
}

func healthHandler(c *Context) (any, error) {
	health := c.Health(c)
	if health.Status != "UP" {
		return nil, errDatasourceDown{details: health.Details}
	}

	return health, nil
}

func catchAllHandler(*Context) (any, error) {
	return nil, gofrHTTP.ErrorInvalidRoute{}
}

type panicLog struct {
	Error      string `json:"error,omitempty"`
	StackTrace string `json:"stack_trace,omitempty"`
}
