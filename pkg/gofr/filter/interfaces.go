package filter

import (
	"context"
	"html/template"

	"gofr.dev/filterable/pkg/gofr/queryparam"
)

// QueryProvider gives access to the query parameters of the request being served.
type QueryProvider interface {
	QueryValues() queryparam.Values
}

// ConditionApplier narrows a datasource query of type Q with conditions, AND-ing one equality
// per field.
type ConditionApplier[Q any] interface {
	Apply(query Q, conditions Conditions) Q
}

// LinkRenderer turns a query into an anchor element.
type LinkRenderer interface {
	RenderLink(title string, query queryparam.Values, attrs map[string]string) (template.HTML, error)
}

// Logger is the part of logging.Logger used by this package.
type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Metrics is the part of metrics.Manager used by this package.
type Metrics interface {
	NewCounter(name, desc string)
	IncrementCounter(ctx context.Context, name string, labels ...string)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Errorf(string, ...any) {}
