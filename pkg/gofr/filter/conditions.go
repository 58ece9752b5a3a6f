package filter

import (
	"fmt"
	"strings"
)

// Conditions maps filter fields to filter values. Fields keep the order in which they were first
// set; setting an existing field replaces its value in place. The zero value is empty and usable.
type Conditions struct {
	fields []string
	values map[string]string
}

// Set stores value for field.
func (c *Conditions) Set(field, value string) {
	if c.values == nil {
		c.values = make(map[string]string)
	}

	if _, ok := c.values[field]; !ok {
		c.fields = append(c.fields, field)
	}

	c.values[field] = value
}

// Get returns the value of field and whether it is set.
func (c Conditions) Get(field string) (string, bool) {
	v, ok := c.values[field]

	return v, ok
}

// Delete removes field, keeping the order of the remaining fields.
func (c *Conditions) Delete(field string) {
	if _, ok := c.values[field]; !ok {
		return
	}

	delete(c.values, field)

	for i, f := range c.fields {
		if f == field {
			c.fields = append(c.fields[:i:i], c.fields[i+1:]...)

			break
		}
	}
}

// Fields returns the fields in order.
func (c Conditions) Fields() []string {
	fields := make([]string, len(c.fields))
	copy(fields, c.fields)

	return fields
}

// Values returns the values in field order.
func (c Conditions) Values() []string {
	values := make([]string, len(c.fields))
	for i, f := range c.fields {
		values[i] = c.values[f]
	}

	return values
}

// Len returns the number of fields with a condition.
func (c Conditions) Len() int {
	return len(c.fields)
}

// IsEmpty reports whether c holds no condition, in which case appliers return the query unchanged.
func (c Conditions) IsEmpty() bool {
	return len(c.fields) == 0
}

// Map returns the conditions as a plain map. Order is lost.
func (c Conditions) Map() map[string]string {
	m := make(map[string]string, len(c.values))
	for k, v := range c.values {
		m[k] = v
	}

	return m
}

// Clone returns an independent copy.
func (c Conditions) Clone() Conditions {
	clone := Conditions{fields: c.Fields()}

	if c.values != nil {
		clone.values = c.Map()
	}

	return clone
}

func (c Conditions) String() string {
	pairs := make([]string, len(c.fields))
	for i, f := range c.fields {
		pairs[i] = fmt.Sprintf("%s=%s", f, c.values[f])
	}

	return strings.Join(pairs, ", ")
}
