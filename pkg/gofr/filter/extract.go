// Package filter builds datasource conditions from `?filter[]=field&value[]=val` query strings and
// renders links that toggle a single filter on or off while keeping the rest of the query intact.
//
// Controllers use a Component to read the conditions allowed by a Policy and hand them to a
// ConditionApplier of their datasource. Views use a Helper (or a bare LinkBuilder) to render
// filter links. Malformed query strings never produce an error for the end user; they simply
// mean that no filter is active.
package filter

import (
	"context"

	"gofr.dev/filterable/pkg/gofr/queryparam"
)

const (
	metricConditions = "app_filter_conditions_total"
	metricRejected   = "app_filter_rejected_total"

	// anyField labels the conditions counter under AllowAll, where field names come from clients.
	anyField = "*"
)

// Extract returns the conditions of params that pass policy.
//
// The result is empty unless both the filter and the value parameters are sequences. A field is
// taken only when the value sequence holds an entry under the same bracket index. When a field
// repeats, the later value wins.
func Extract(params queryparam.Values, policy Policy) Conditions {
	c, _ := extract(params, policy, nil)

	return c
}

func extract(params queryparam.Values, policy Policy, rejected func(field string)) (Conditions, error) {
	var conditions Conditions

	p, err := parsePairs(params)
	if err != nil {
		return conditions, err
	}

	for _, e := range p.fields.Entries() {
		if !policy.Allows(e.Value) {
			if rejected != nil {
				rejected(e.Value)
			}

			continue
		}

		value, ok := p.values.Lookup(e.Key)
		if !ok {
			continue
		}

		conditions.Set(e.Value, value)
	}

	return conditions, nil
}

// Component holds the conditions of a handler's request. It extracts the conditions of one request when
// it is created and never changes afterwards.
type Component struct {
	policy     Policy
	conditions Conditions
	metrics    Metrics
}

// Option configures a Component.
type Option func(*Component)

// WithMetrics counts applied and rejected fields. Register the counters once with RegisterMetrics.
func WithMetrics(m Metrics) Option {
	return func(c *Component) {
		c.metrics = m
	}
}

// RegisterMetrics registers the counters used by components created WithMetrics.
func RegisterMetrics(m Metrics) {
	m.NewCounter(metricConditions, "Number of filter conditions taken from request queries.")
	m.NewCounter(metricRejected, "Number of filter fields dropped by the filter policy.")
}

// NewComponent extracts the conditions of req under policy. logger may be nil.
func NewComponent(req QueryProvider, policy Policy, logger Logger, opts ...Option) *Component {
	if logger == nil {
		logger = nopLogger{}
	}

	c := &Component{policy: policy}

	for _, opt := range opts {
		opt(c)
	}

	conditions, err := extract(req.QueryValues(), policy, func(field string) {
		logger.Debugf("filter field %q is not allowed, ignoring it", field)
		c.increment(metricRejected)
	})

	logShapeError(logger, "ignoring filters", err)

	for _, f := range conditions.Fields() {
		if policy.AllowAll {
			f = anyField
		}

		c.increment(metricConditions, "field", f)
	}

	c.conditions = conditions

	return c
}

// Conditions returns a copy of the extracted conditions.
func (c *Component) Conditions() Conditions {
	return c.conditions.Clone()
}

// Policy returns the policy the conditions were extracted under.
func (c *Component) Policy() Policy {
	return c.policy
}

// increment counts on a metric of c. Label values must come from a bounded set: the rejected
// counter has no label, the conditions counter is labelled by allow-listed fields only.
func (c *Component) increment(name string, labels ...string) {
	if c.metrics == nil {
		return
	}

	c.metrics.IncrementCounter(context.Background(), name, labels...)
}

// Apply narrows query with the conditions of c.
//
//	products := filter.Apply(component, db.Model(&Product{}), orm.Applier{})
func Apply[Q any](c *Component, query Q, applier ConditionApplier[Q]) Q {
	return applier.Apply(query, c.Conditions())
}
