package queryparam

import "strconv"

// Kind tells whether a Value holds a scalar or a sequence.
type Kind uint8

const (
	KindScalar Kind = iota + 1
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Entry is one element of a sequence. Key is the bracket index as written in the query
// string ("0", "3", "name"), so gaps in numeric indices are kept.
type Entry struct {
	Key   string
	Value string
}

// Value is either a scalar or an ordered sequence of entries.
type Value struct {
	kind    Kind
	scalar  string
	entries []Entry
}

// String returns a scalar Value.
func String(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// List returns a sequence with keys 0..n-1.
func List(values ...string) Value {
	entries := make([]Entry, len(values))
	for i, v := range values {
		entries[i] = Entry{Key: strconv.Itoa(i), Value: v}
	}

	return Value{kind: KindSequence, entries: entries}
}

// Indexed returns a sequence holding entries as given. A repeated key keeps its first position
// and takes the last value.
func Indexed(entries ...Entry) Value {
	v := Value{kind: KindSequence, entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		v.put(e.Key, e.Value)
	}

	return v
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsSequence() bool {
	return v.kind == KindSequence
}

// Scalar returns the scalar and true, or "" and false for sequences.
func (v Value) Scalar() (string, bool) {
	if v.kind != KindScalar {
		return "", false
	}

	return v.scalar, true
}

// Entries returns a copy of the sequence entries. Scalars have none.
func (v Value) Entries() []Entry {
	if v.kind != KindSequence {
		return nil
	}

	entries := make([]Entry, len(v.entries))
	copy(entries, v.entries)

	return entries
}

// Strings returns the values of the sequence in order, or the scalar as a one element slice.
func (v Value) Strings() []string {
	switch v.kind {
	case KindScalar:
		return []string{v.scalar}
	case KindSequence:
		s := make([]string, len(v.entries))
		for i, e := range v.entries {
			s[i] = e.Value
		}

		return s
	default:
		return nil
	}
}

// Lookup returns the sequence value stored under the bracket key.
func (v Value) Lookup(key string) (string, bool) {
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value, true
		}
	}

	return "", false
}

// Len returns the number of entries of a sequence, 1 for a scalar and 0 for the zero Value.
func (v Value) Len() int {
	switch v.kind {
	case KindScalar:
		return 1
	case KindSequence:
		return len(v.entries)
	default:
		return 0
	}
}

func (v *Value) put(key, value string) {
	for i, e := range v.entries {
		if e.Key == key {
			v.entries[i].Value = value

			return
		}
	}

	v.entries = append(v.entries, Entry{Key: key, Value: value})
}

// push appends value at the next free integer index, mirroring `key[]=value`.
func (v *Value) push(value string) {
	next := 0

	for _, e := range v.entries {
		i, err := strconv.Atoi(e.Key)
		if err != nil || strconv.Itoa(i) != e.Key {
			continue
		}

		if i >= next {
			next = i + 1
		}
	}

	v.entries = append(v.entries, Entry{Key: strconv.Itoa(next), Value: value})
}

func (v Value) clone() Value {
	c := v
	if v.entries != nil {
		c.entries = v.Entries()
	}

	return c
}
