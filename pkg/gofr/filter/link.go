package filter

import (
	"gofr.dev/filterable/pkg/gofr/queryparam"
)

// LinkBuilder computes the queries of filter links for one request. It sees every active filter,
// whatever the policy of the controller, because it only rewrites the URL.
type LinkBuilder struct {
	params queryparam.Values
	active Conditions
}

// NewLinkBuilder captures params. Active filters are the filter and value parameters paired by
// position; when they cannot be paired no filter is active.
func NewLinkBuilder(params queryparam.Values) *LinkBuilder {
	b, _ := newLinkBuilder(params)

	return b
}

func newLinkBuilder(params queryparam.Values) (*LinkBuilder, error) {
	active, err := zipPairs(params)

	return &LinkBuilder{params: params.Clone(), active: active}, err
}

// ActiveFilters returns a copy of the filters active in the captured query.
func (b *LinkBuilder) ActiveFilters() Conditions {
	return b.active.Clone()
}

// IsCurrentFilter reports whether field is active with exactly value.
func (b *LinkBuilder) IsCurrentFilter(field, value string) bool {
	v, ok := b.active.Get(field)

	return ok && v == value
}

// BuildQuery returns the query of a link toggling field=value: the pair is removed when it is
// active, otherwise it is set (replacing another value of field, or appended as a new filter).
// Every other parameter of the captured query is kept as is, filter and value come last.
func (b *LinkBuilder) BuildQuery(field, value string) queryparam.Values {
	toggled := b.active.Clone()

	if b.IsCurrentFilter(field, value) {
		toggled.Delete(field)
	} else {
		toggled.Set(field, value)
	}

	query := b.params.Clone()
	query.Del(FilterKey)
	query.Del(ValueKey)

	query.Set(FilterKey, queryparam.List(toggled.Fields()...))
	query.Set(ValueKey, queryparam.List(toggled.Values()...))

	return query
}
