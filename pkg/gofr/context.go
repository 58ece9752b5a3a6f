package gofr

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"gofr.dev/filterable/pkg/gofr/container"
	"gofr.dev/filterable/pkg/gofr/filter"
	gofrHTTP "gofr.dev/filterable/pkg/gofr/http"
	"gofr.dev/filterable/pkg/gofr/logging"
	"gofr.dev/filterable/pkg/gofr/template"
)

// Context is given to every Handler. It carries the request, its query and the datasources of the
// container, and extracts the filter conditions of the request on first use. Its Logger stamps
// entries with the trace id of the request.
type Context struct {
	context.Context

	*gofrHTTP.Request

	*container.Container

	logging.Logger

	responder   *gofrHTTP.Responder
	templateDir string

	component *filter.Component
	helper    *filter.Helper
}

func newContext(w *gofrHTTP.Responder, r *gofrHTTP.Request, c *container.Container, templateDir string) *Context {
	traceID := ""
	if sc := trace.SpanFromContext(r.Context()).SpanContext(); sc.IsValid() {
		traceID = sc.TraceID().String()
	}

	return &Context{
		Context:     r.Context(),
		Request:     r,
		Container:   c,
		Logger:      logging.WithTraceID(c.Logger, traceID),
		responder:   w,
		templateDir: templateDir,
	}
}

// Filter returns the filter component of the request, built with the policy of the container.
//
//	products, err := store.Find(ctx, ctx.Filter().Conditions())
func (c *Context) Filter() *filter.Component {
	if c.component == nil {
		c.component = filter.NewComponent(c.Request, c.FilterPolicy, c.Logger, filter.WithMetrics(c.Metrics()))
	}

	return c.component
}

// FilterHelper returns the link helper of the request. Its links point at the path of the request.
func (c *Context) FilterHelper() *filter.Helper {
	if c.helper == nil {
		c.helper = filter.NewHelper(c.Request, template.AnchorRenderer{Path: c.URI()}, c.Logger)
	}

	return c.helper
}

// Template returns an html page rendering file of the template directory with data. The page can
// call filterLink and isCurrentFilter.
func (c *Context) Template(file string, data any) *template.Template {
	return &template.Template{
		Directory: c.templateDir,
		File:      file,
		Data:      data,
		Funcs:     c.FilterHelper().FuncMap(),
		Type:      template.HTML,
	}
}
