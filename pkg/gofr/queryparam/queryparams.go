// Package queryparam models the query string of a request the way browsers and PHP-style
// frameworks build it, where a key may carry a single value (`a=1`) or a sequence
// (`a[]=1&a[]=2`, `a[0]=1&a[3]=2`).
package queryparam

import (
	"strings"
)

// QueryParams interface for handling query parameters.
type QueryParams interface {
	Get(string) string      // Get returns a single value corresponding to provided key.
	GetAll(string) []string // GetAll returns multiple values corresponding to provided key.
}

// Values is an ordered set of query parameters. Keys keep the order of their first appearance.
// The zero value is an empty set ready to use.
type Values struct {
	keys []string
	vals map[string]Value
}

// Lookup returns the value stored under key and whether it exists.
func (v Values) Lookup(key string) (Value, bool) {
	val, ok := v.vals[key]

	return val, ok
}

// Get returns the scalar stored under key. For sequences the entries are joined with a comma,
// the same way gofr joins repeated query parameters.
func (v Values) Get(key string) string {
	val, ok := v.vals[key]
	if !ok {
		return ""
	}

	if s, ok := val.Scalar(); ok {
		return s
	}

	return strings.Join(val.Strings(), ",")
}

// GetAll returns every value stored under key, in order.
func (v Values) GetAll(key string) []string {
	val, ok := v.vals[key]
	if !ok {
		return nil
	}

	return val.Strings()
}

// Has reports whether key is present.
func (v Values) Has(key string) bool {
	_, ok := v.vals[key]

	return ok
}

// Set stores val under key. A new key is appended at the end, an existing one keeps its position.
func (v *Values) Set(key string, val Value) {
	if v.vals == nil {
		v.vals = make(map[string]Value)
	}

	if _, ok := v.vals[key]; !ok {
		v.keys = append(v.keys, key)
	}

	v.vals[key] = val
}

// Del removes key.
func (v *Values) Del(key string) {
	if _, ok := v.vals[key]; !ok {
		return
	}

	delete(v.vals, key)

	for i, k := range v.keys {
		if k == key {
			v.keys = append(v.keys[:i:i], v.keys[i+1:]...)

			break
		}
	}
}

// Keys returns the keys in order.
func (v Values) Keys() []string {
	keys := make([]string, len(v.keys))
	copy(keys, v.keys)

	return keys
}

// Len returns the number of keys.
func (v Values) Len() int {
	return len(v.keys)
}

// Clone returns a deep copy of v.
func (v Values) Clone() Values {
	c := Values{
		keys: v.Keys(),
		vals: make(map[string]Value, len(v.vals)),
	}

	for k, val := range v.vals {
		c.vals[k] = val.clone()
	}

	return c
}
