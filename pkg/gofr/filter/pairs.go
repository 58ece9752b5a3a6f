package filter

import (
	"errors"
	"fmt"

	"gofr.dev/filterable/pkg/gofr/queryparam"
)

const (
	// FilterKey is the query parameter holding the filtered field names.
	FilterKey = "filter"
	// ValueKey is the query parameter holding the filter values, aligned with FilterKey.
	ValueKey = "value"
)

const (
	reasonMissing     = "is missing"
	reasonNotSequence = "is not a sequence"
	reasonEmpty       = "is empty"
)

// ShapeError describes why the filter and value parameters of a query cannot be paired.
// It never reaches the end user: callers treat it as "no filters".
type ShapeError struct {
	Param  string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("filter: query parameter %q %s", e.Param, e.Reason)
}

// pairs holds the two parallel sequences of a valid filter query.
type pairs struct {
	fields queryparam.Value
	values queryparam.Value
}

// parsePairs requires both parameters to be present and to be sequences.
func parsePairs(params queryparam.Values) (pairs, error) {
	fields, err := sequence(params, FilterKey)
	if err != nil {
		return pairs{}, err
	}

	values, err := sequence(params, ValueKey)
	if err != nil {
		return pairs{}, err
	}

	return pairs{fields: fields, values: values}, nil
}

func sequence(params queryparam.Values, key string) (queryparam.Value, error) {
	v, ok := params.Lookup(key)
	if !ok {
		return queryparam.Value{}, &ShapeError{Param: key, Reason: reasonMissing}
	}

	if !v.IsSequence() {
		return queryparam.Value{}, &ShapeError{Param: key, Reason: reasonNotSequence}
	}

	return v, nil
}

// zipPairs pairs the two parameters by position, ignoring their bracket indices. A scalar counts as
// a one element sequence. Both sides must be non-empty and of the same length.
func zipPairs(params queryparam.Values) (Conditions, error) {
	var active Conditions

	fields, ok := params.Lookup(FilterKey)
	if !ok {
		return active, &ShapeError{Param: FilterKey, Reason: reasonMissing}
	}

	values, ok := params.Lookup(ValueKey)
	if !ok {
		return active, &ShapeError{Param: ValueKey, Reason: reasonMissing}
	}

	f, v := fields.Strings(), values.Strings()

	switch {
	case len(f) == 0:
		return active, &ShapeError{Param: FilterKey, Reason: reasonEmpty}
	case len(v) == 0:
		return active, &ShapeError{Param: ValueKey, Reason: reasonEmpty}
	case len(f) != len(v):
		return active, &ShapeError{Param: ValueKey,
			Reason: fmt.Sprintf("has %d entries, %s has %d", len(v), FilterKey, len(f))}
	}

	for i := range f {
		active.Set(f[i], v[i])
	}

	return active, nil
}

// logShapeError logs err at debug level. Queries without any filter parameter are not logged.
func logShapeError(logger Logger, msg string, err error) {
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) || shapeErr.Reason == reasonMissing {
		return
	}

	logger.Debugf("%s: %v", msg, err)
}
