package queryparam

import (
	"net/url"
	"strings"
)

// Encode renders v as a query string. Sequence entries are written as `key[index]=value` with the
// brackets escaped, keys keep their order and empty sequences are left out.
func (v Values) Encode() string {
	var buf strings.Builder

	write := func(key, value string) {
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}

		buf.WriteString(url.QueryEscape(key))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(value))
	}

	for _, k := range v.keys {
		val := v.vals[k]

		switch val.kind {
		case KindScalar:
			write(k, val.scalar)
		case KindSequence:
			for _, e := range val.entries {
				write(k+"["+e.Key+"]", e.Value)
			}
		}
	}

	return buf.String()
}
